package domain

import "time"

// Enumerations
const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"

	MachineRunning     MachineStatus = "running"
	MachineIdle        MachineStatus = "idle"
	MachineMaintenance MachineStatus = "maintenance"
	MachineBreakdown   MachineStatus = "breakdown"
	MachineOffline     MachineStatus = "offline"

	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"

	ReplenishmentPending  ReplenishmentStatus = "pending"
	ReplenishmentApproved ReplenishmentStatus = "approved"
	ReplenishmentOrdered  ReplenishmentStatus = "ordered"
	ReplenishmentReceived ReplenishmentStatus = "received"
	ReplenishmentRejected ReplenishmentStatus = "rejected"

	DeviceOnline      DeviceStatus = "online"
	DeviceOffline     DeviceStatus = "offline"
	DeviceMaintenance DeviceStatus = "maintenance"

	KPIOnTrack  KPIStatus = "on_track"
	KPIAtRisk   KPIStatus = "at_risk"
	KPIOffTrack KPIStatus = "off_track"

	SeverityCritical BreachSeverity = "critical"
	SeverityMajor    BreachSeverity = "major"
	SeverityMinor    BreachSeverity = "minor"

	BreachResponse   BreachType = "response"
	BreachResolution BreachType = "resolution"

	CardActive    CardStatus = "active"
	CardInactive  CardStatus = "inactive"
	CardLost      CardStatus = "lost"
	CardExpired   CardStatus = "expired"
	CardSuspended CardStatus = "suspended"

	ApprovalSubmitted ApprovalAction = "submitted"
	ApprovalApproved  ApprovalAction = "approved"
	ApprovalRejected  ApprovalAction = "rejected"
	ApprovalReturned  ApprovalAction = "returned"
	ApprovalPending   ApprovalAction = "pending"
)

type UserRole string
type MachineStatus string
type Priority string
type ReplenishmentStatus string
type DeviceStatus string
type KPIStatus string
type BreachSeverity string
type BreachType string
type CardStatus string
type ApprovalAction string

type User struct {
	ID           int64
	Name         string
	Email        string
	Department   string
	Role         UserRole
	IsGoogle     bool
	PasswordHash *string
	CreatedAt    time.Time
}

// Machine is a production asset from the machine master.
type Machine struct {
	ID                string        `json:"id"`
	MachineCode       string        `json:"machineCode"`
	MachineName       string        `json:"machineName"`
	MachineType       string        `json:"machineType"`
	Manufacturer      string        `json:"manufacturer"`
	Model             string        `json:"model"`
	SerialNumber      string        `json:"serialNumber"`
	Department        string        `json:"department"`
	Location          string        `json:"location"`
	OperationalStatus MachineStatus `json:"operationalStatus"`
	Availability      float64       `json:"availability"`
	Performance       float64       `json:"performance"`
	Quality           float64       `json:"quality"`
	OEE               float64       `json:"oee"`
	CapacityPerHour   int           `json:"capacityPerHour"`
	InstallationDate  time.Time     `json:"installationDate"`
	NextMaintenance   *time.Time    `json:"nextMaintenance,omitempty"`
}

type SalesRep struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employeeCode"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Territory    string  `json:"territory"`
	Region       string  `json:"region"`
	Team         string  `json:"team"`
	Status       string  `json:"status"`
	Quota        float64 `json:"quota"`
	Achieved     float64 `json:"achieved"`
	Deals        int     `json:"deals"`
	WinRate      float64 `json:"winRate"`
}

type RuleCriterion struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// AssignmentRule routes leads, opportunities or tickets to reps.
type AssignmentRule struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	EntityType    string          `json:"entityType"`
	Strategy      string          `json:"strategy"`
	Priority      int             `json:"priority"`
	Enabled       bool            `json:"enabled"`
	Criteria      []RuleCriterion `json:"criteria"`
	AssignTo      []string        `json:"assignTo"`
	MatchCount    int             `json:"matchCount"`
	LastTriggered *time.Time      `json:"lastTriggered,omitempty"`
}

type ReplenishmentRequest struct {
	ID                string              `json:"id"`
	RequestNumber     string              `json:"requestNumber"`
	ItemCode          string              `json:"itemCode"`
	ItemName          string              `json:"itemName"`
	Warehouse         string              `json:"warehouse"`
	CurrentStock      int                 `json:"currentStock"`
	ReorderPoint      int                 `json:"reorderPoint"`
	MaxStock          int                 `json:"maxStock"`
	RequestedQuantity int                 `json:"requestedQuantity"`
	UnitCost          float64             `json:"unitCost"`
	Priority          Priority            `json:"priority"`
	Status            ReplenishmentStatus `json:"status"`
	RequestedBy       string              `json:"requestedBy"`
	Supplier          string              `json:"supplier"`
	RequestDate       time.Time           `json:"requestDate"`
	ExpectedDate      *time.Time          `json:"expectedDate,omitempty"`
}

type BiometricDevice struct {
	ID              string       `json:"id"`
	DeviceCode      string       `json:"deviceCode"`
	DeviceName      string       `json:"deviceName"`
	DeviceType      string       `json:"deviceType"`
	Location        string       `json:"location"`
	IPAddress       string       `json:"ipAddress"`
	Status          DeviceStatus `json:"status"`
	EnrolledUsers   int          `json:"enrolledUsers"`
	Capacity        int          `json:"capacity"`
	FirmwareVersion string       `json:"firmwareVersion"`
	LastSync        time.Time    `json:"lastSync"`
}

type KPI struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Department string    `json:"department"`
	Unit       string    `json:"unit"`
	Target     float64   `json:"target"`
	Actual     float64   `json:"actual"`
	Weight     float64   `json:"weight"`
	Frequency  string    `json:"frequency"`
	Owner      string    `json:"owner"`
	Status     KPIStatus `json:"status"`
}

type ShiftTemplate struct {
	ID                string  `json:"id"`
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	ShiftType         string  `json:"shiftType"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	BreakMinutes      int     `json:"breakMinutes"`
	WorkingHours      float64 `json:"workingHours"`
	GraceMinutes      int     `json:"graceMinutes"`
	Department        string  `json:"department"`
	Status            string  `json:"status"`
	AssignedEmployees int     `json:"assignedEmployees"`
}

// SLABreach records a ticket whose response or resolution exceeded its target.
type SLABreach struct {
	ID            string         `json:"id"`
	TicketNumber  string         `json:"ticketNumber"`
	Subject       string         `json:"subject"`
	Customer      string         `json:"customer"`
	Priority      Priority       `json:"priority"`
	Severity      BreachSeverity `json:"severity"`
	BreachType    BreachType     `json:"breachType"`
	TargetMinutes int            `json:"targetMinutes"`
	ActualMinutes int            `json:"actualMinutes"`
	AssignedTo    string         `json:"assignedTo"`
	Team          string         `json:"team"`
	Status        string         `json:"status"`
	BreachedAt    time.Time      `json:"breachedAt"`
}

type AccessCard struct {
	ID           string     `json:"id"`
	CardNumber   string     `json:"cardNumber"`
	EmployeeID   string     `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	Department   string     `json:"department"`
	CardType     string     `json:"cardType"`
	AccessLevel  string     `json:"accessLevel"`
	Status       CardStatus `json:"status"`
	Zones        []string   `json:"zones"`
	IssueDate    time.Time  `json:"issueDate"`
	ExpiryDate   time.Time  `json:"expiryDate"`
	LastUsed     *time.Time `json:"lastUsed,omitempty"`
}

// CustomerGroup may reference a parent group; the reference is not checked.
type CustomerGroup struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	ParentGroupID   string  `json:"parentGroupId,omitempty"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discountPercent"`
	CustomerCount   int     `json:"customerCount"`
	Status          string  `json:"status"`
}

type LeaveBalance struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employeeCode"`
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department"`
	LeaveType    string  `json:"leaveType"`
	Entitled     float64 `json:"entitled"`
	Used         float64 `json:"used"`
	Pending      float64 `json:"pending"`
	Year         int     `json:"year"`
}

// ReorderSuggestion is produced by the inventory service for items at or below ROP.
type ReorderSuggestion struct {
	ID                   string     `json:"id"`
	ItemCode             string     `json:"itemCode"`
	ItemName             string     `json:"itemName"`
	CurrentStock         int        `json:"currentStock"`
	ReorderPoint         int        `json:"reorderPoint"`
	SuggestedQuantity    int        `json:"suggestedQuantity"`
	Priority             Priority   `json:"priority"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"createdAt"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate,omitempty"`
}

type ApprovalEntry struct {
	DocID    string         `json:"docId"`
	DocType  string         `json:"docType"`
	Approver string         `json:"approver"`
	Action   ApprovalAction `json:"action"`
	Date     time.Time      `json:"date"`
	Comments string         `json:"comments"`
	Level    int            `json:"level"`
}
