package fixtures

import (
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/stats"
)

var mockBiometricDevices = []domain.BiometricDevice{
	{ID: "bd1", DeviceCode: "BIO-HQ-01", DeviceName: "HQ Main Entrance", DeviceType: "face", Location: "Headquarters - Lobby", IPAddress: "10.10.1.21",
		Status: domain.DeviceOnline, EnrolledUsers: 412, Capacity: 3000, FirmwareVersion: "6.2.1", LastSync: at("2024-01-17 11:58")},
	{ID: "bd2", DeviceCode: "BIO-HQ-02", DeviceName: "HQ Staff Exit", DeviceType: "fingerprint", Location: "Headquarters - Rear Gate", IPAddress: "10.10.1.22",
		Status: domain.DeviceOnline, EnrolledUsers: 398, Capacity: 1000, FirmwareVersion: "5.8.0", LastSync: at("2024-01-17 11:57")},
	{ID: "bd3", DeviceCode: "BIO-PLT-01", DeviceName: "Plant Gate A", DeviceType: "card", Location: "Plant 1 - Gate A", IPAddress: "10.20.4.11",
		Status: domain.DeviceOffline, EnrolledUsers: 655, Capacity: 5000, FirmwareVersion: "4.1.3", LastSync: at("2024-01-16 22:14")},
	{ID: "bd4", DeviceCode: "BIO-PLT-02", DeviceName: "Plant Canteen", DeviceType: "fingerprint", Location: "Plant 1 - Canteen", IPAddress: "10.20.4.12",
		Status: domain.DeviceMaintenance, EnrolledUsers: 601, Capacity: 1000, FirmwareVersion: "5.7.2", LastSync: at("2024-01-15 18:40")},
	{ID: "bd5", DeviceCode: "BIO-WH-01", DeviceName: "Warehouse Dock", DeviceType: "iris", Location: "Central Warehouse", IPAddress: "10.30.2.5",
		Status: domain.DeviceOnline, EnrolledUsers: 88, Capacity: 500, FirmwareVersion: "2.0.9", LastSync: at("2024-01-17 11:59")},
}

func BiometricDevices() []domain.BiometricDevice { return clone(mockBiometricDevices) }

type DeviceStats struct {
	Total         int `json:"total"`
	Online        int `json:"online"`
	Offline       int `json:"offline"`
	Maintenance   int `json:"maintenance"`
	EnrolledUsers int `json:"enrolledUsers"`
}

func GetDeviceStats() DeviceStats {
	s := DeviceStats{Total: len(mockBiometricDevices)}
	for _, d := range mockBiometricDevices {
		switch d.Status {
		case domain.DeviceOnline:
			s.Online++
		case domain.DeviceOffline:
			s.Offline++
		case domain.DeviceMaintenance:
			s.Maintenance++
		}
		s.EnrolledUsers += d.EnrolledUsers
	}
	return s
}

var mockKPIs = []domain.KPI{
	{ID: "k1", Code: "KPI-SAL-01", Name: "Monthly Revenue", Category: "sales", Department: "Sales", Unit: "USD", Target: 500000, Actual: 468000,
		Weight: 30, Frequency: "monthly", Owner: "Elena Petrova", Status: domain.KPIAtRisk},
	{ID: "k2", Code: "KPI-SAL-02", Name: "New Customers Acquired", Category: "sales", Department: "Sales", Unit: "count", Target: 40, Actual: 46,
		Weight: 20, Frequency: "monthly", Owner: "Daniel Okafor", Status: domain.KPIOnTrack},
	{ID: "k3", Code: "KPI-OPS-01", Name: "On-Time Delivery", Category: "operations", Department: "Logistics", Unit: "%", Target: 95, Actual: 91.5,
		Weight: 25, Frequency: "weekly", Owner: "Marcus Lee", Status: domain.KPIAtRisk},
	{ID: "k4", Code: "KPI-OPS-02", Name: "Plant OEE", Category: "operations", Department: "Production", Unit: "%", Target: 85, Actual: 79.6,
		Weight: 25, Frequency: "daily", Owner: "Anil Kumar", Status: domain.KPIOffTrack},
	{ID: "k5", Code: "KPI-QLT-01", Name: "First Pass Yield", Category: "quality", Department: "Quality", Unit: "%", Target: 98, Actual: 98.4,
		Weight: 20, Frequency: "weekly", Owner: "Sofia Alvarez", Status: domain.KPIOnTrack},
	{ID: "k6", Code: "KPI-HR-01", Name: "Employee Turnover", Category: "hr", Department: "Human Resources", Unit: "%", Target: 8, Actual: 11.2,
		Weight: 15, Frequency: "quarterly", Owner: "Priya Nair", Status: domain.KPIOffTrack},
	{ID: "k7", Code: "KPI-FIN-01", Name: "Days Sales Outstanding", Category: "finance", Department: "Finance", Unit: "days", Target: 45, Actual: 43,
		Weight: 20, Frequency: "monthly", Owner: "Grace Kim", Status: domain.KPIOnTrack},
}

func KPIs() []domain.KPI { return clone(mockKPIs) }

func GetKPIsByCategory(category string) []domain.KPI {
	var out []domain.KPI
	for _, k := range mockKPIs {
		if k.Category == category {
			out = append(out, k)
		}
	}
	return out
}

type KPIStats struct {
	Total          int     `json:"total"`
	OnTrack        int     `json:"onTrack"`
	AtRisk         int     `json:"atRisk"`
	OffTrack       int     `json:"offTrack"`
	AvgAchievement float64 `json:"avgAchievement"`
}

// GetKPIStats averages actual/target across every KPI, rounded to one decimal.
func GetKPIStats() KPIStats {
	s := KPIStats{Total: len(mockKPIs)}
	for _, k := range mockKPIs {
		switch k.Status {
		case domain.KPIOnTrack:
			s.OnTrack++
		case domain.KPIAtRisk:
			s.AtRisk++
		case domain.KPIOffTrack:
			s.OffTrack++
		}
	}
	s.AvgAchievement = stats.Round1(stats.Mean(mockKPIs, func(k domain.KPI) float64 {
		return stats.Percent(k.Actual, k.Target)
	}))
	return s
}

var mockShiftTemplates = []domain.ShiftTemplate{
	{ID: "sh1", Code: "SHF-MRN", Name: "Morning Shift", ShiftType: "morning", StartTime: "06:00", EndTime: "14:00", BreakMinutes: 30,
		WorkingHours: 7.5, GraceMinutes: 10, Department: "Production", Status: "active", AssignedEmployees: 86},
	{ID: "sh2", Code: "SHF-AFT", Name: "Afternoon Shift", ShiftType: "afternoon", StartTime: "14:00", EndTime: "22:00", BreakMinutes: 30,
		WorkingHours: 7.5, GraceMinutes: 10, Department: "Production", Status: "active", AssignedEmployees: 74},
	{ID: "sh3", Code: "SHF-NGT", Name: "Night Shift", ShiftType: "night", StartTime: "22:00", EndTime: "06:00", BreakMinutes: 45,
		WorkingHours: 7.25, GraceMinutes: 15, Department: "Production", Status: "active", AssignedEmployees: 41},
	{ID: "sh4", Code: "SHF-GEN", Name: "General Shift", ShiftType: "general", StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60,
		WorkingHours: 8, GraceMinutes: 15, Department: "Administration", Status: "active", AssignedEmployees: 132},
	{ID: "sh5", Code: "SHF-ROT", Name: "Rotational Maintenance", ShiftType: "rotational", StartTime: "07:00", EndTime: "19:00", BreakMinutes: 60,
		WorkingHours: 11, GraceMinutes: 5, Department: "Maintenance", Status: "inactive", AssignedEmployees: 0},
	{ID: "sh6", Code: "SHF-WHS", Name: "Warehouse Early", ShiftType: "morning", StartTime: "05:00", EndTime: "13:00", BreakMinutes: 30,
		WorkingHours: 7.5, GraceMinutes: 10, Department: "Warehouse", Status: "active", AssignedEmployees: 28},
}

func ShiftTemplates() []domain.ShiftTemplate { return clone(mockShiftTemplates) }

type ShiftStats struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	TotalAssigned   int     `json:"totalAssigned"`
	AvgWorkingHours float64 `json:"avgWorkingHours"`
}

func GetShiftStats() ShiftStats {
	s := ShiftStats{Total: len(mockShiftTemplates)}
	for _, sh := range mockShiftTemplates {
		if sh.Status == "active" {
			s.Active++
		}
		s.TotalAssigned += sh.AssignedEmployees
	}
	s.AvgWorkingHours = stats.Round1(stats.Mean(mockShiftTemplates, func(sh domain.ShiftTemplate) float64 { return sh.WorkingHours }))
	return s
}

var mockAccessCards = []domain.AccessCard{
	{ID: "ac1", CardNumber: "AC-100231", EmployeeID: "EMP-1001", EmployeeName: "Priya Nair", Department: "Human Resources", CardType: "permanent",
		AccessLevel: "elevated", Status: domain.CardActive, Zones: []string{"HQ", "HR Office", "Server Room"}, IssueDate: day("2022-03-01"), ExpiryDate: day("2025-03-01"), LastUsed: atPtr("2024-01-17 08:55")},
	{ID: "ac2", CardNumber: "AC-100232", EmployeeID: "EMP-1002", EmployeeName: "Marcus Lee", Department: "Logistics", CardType: "permanent",
		AccessLevel: "standard", Status: domain.CardActive, Zones: []string{"HQ", "Warehouse"}, IssueDate: day("2021-07-15"), ExpiryDate: day("2024-07-15"), LastUsed: atPtr("2024-01-17 07:42")},
	{ID: "ac3", CardNumber: "AC-100233", EmployeeID: "EMP-1003", EmployeeName: "Anil Kumar", Department: "Production", CardType: "permanent",
		AccessLevel: "all_access", Status: domain.CardActive, Zones: []string{"HQ", "Plant 1", "Warehouse", "Server Room"}, IssueDate: day("2020-01-10"), ExpiryDate: day("2025-01-10"), LastUsed: atPtr("2024-01-17 06:03")},
	{ID: "ac4", CardNumber: "AC-100234", EmployeeID: "EMP-1004", EmployeeName: "Sofia Alvarez", Department: "Quality", CardType: "permanent",
		AccessLevel: "standard", Status: domain.CardLost, Zones: []string{"HQ", "Plant 1"}, IssueDate: day("2022-09-05"), ExpiryDate: day("2025-09-05"), LastUsed: atPtr("2024-01-09 17:20")},
	{ID: "ac5", CardNumber: "TMP-000871", EmployeeID: "EMP-1010", EmployeeName: "Tomasz Nowak", Department: "Maintenance", CardType: "contractor",
		AccessLevel: "restricted", Status: domain.CardExpired, Zones: []string{"Plant 1"}, IssueDate: day("2023-10-01"), ExpiryDate: day("2023-12-31")},
	{ID: "ac6", CardNumber: "VIS-004512", EmployeeID: "VIS-4512", EmployeeName: "Visitor - Auditor", Department: "Finance", CardType: "visitor",
		AccessLevel: "basic", Status: domain.CardInactive, Zones: []string{"HQ"}, IssueDate: day("2024-01-15"), ExpiryDate: day("2024-01-19")},
	{ID: "ac7", CardNumber: "AC-100235", EmployeeID: "EMP-1005", EmployeeName: "Grace Kim", Department: "Sales", CardType: "permanent",
		AccessLevel: "basic", Status: domain.CardSuspended, Zones: []string{"HQ"}, IssueDate: day("2021-02-01"), ExpiryDate: day("2024-02-01"), LastUsed: atPtr("2023-12-22 16:10")},
}

func AccessCards() []domain.AccessCard {
	out := clone(mockAccessCards)
	for i := range out {
		out[i].Zones = clone(out[i].Zones)
	}
	return out
}

type AccessCardStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Lost     int `json:"lost"`
	Expired  int `json:"expired"`
}

func GetAccessCardStats() AccessCardStats {
	s := AccessCardStats{Total: len(mockAccessCards)}
	for _, c := range mockAccessCards {
		switch c.Status {
		case domain.CardActive:
			s.Active++
		case domain.CardLost:
			s.Lost++
		case domain.CardExpired:
			s.Expired++
		default:
			s.Inactive++
		}
	}
	return s
}

var mockLeaveBalances = []domain.LeaveBalance{
	{ID: "lb1", EmployeeCode: "EMP-1001", EmployeeName: "Priya Nair", Department: "Human Resources", LeaveType: "annual", Entitled: 24, Used: 18, Pending: 2, Year: 2024},
	{ID: "lb2", EmployeeCode: "EMP-1001", EmployeeName: "Priya Nair", Department: "Human Resources", LeaveType: "sick", Entitled: 12, Used: 3, Pending: 0, Year: 2024},
	{ID: "lb3", EmployeeCode: "EMP-1002", EmployeeName: "Marcus Lee", Department: "Logistics", LeaveType: "annual", Entitled: 20, Used: 20, Pending: 0, Year: 2024},
	{ID: "lb4", EmployeeCode: "EMP-1003", EmployeeName: "Anil Kumar", Department: "Production", LeaveType: "annual", Entitled: 24, Used: 6, Pending: 4, Year: 2024},
	{ID: "lb5", EmployeeCode: "EMP-1003", EmployeeName: "Anil Kumar", Department: "Production", LeaveType: "casual", Entitled: 6, Used: 5, Pending: 1, Year: 2024},
	{ID: "lb6", EmployeeCode: "EMP-1004", EmployeeName: "Sofia Alvarez", Department: "Quality", LeaveType: "annual", Entitled: 20, Used: 10, Pending: 0, Year: 2024},
	{ID: "lb7", EmployeeCode: "EMP-1005", EmployeeName: "Grace Kim", Department: "Sales", LeaveType: "sick", Entitled: 12, Used: 0, Pending: 0, Year: 2024},
}

func LeaveBalances() []domain.LeaveBalance { return clone(mockLeaveBalances) }

// GetLeaveUtilization returns used/entitled as a percentage for one balance.
func GetLeaveUtilization(b domain.LeaveBalance) float64 {
	return stats.Round1(stats.UtilizationRate(b.Used, b.Entitled))
}
