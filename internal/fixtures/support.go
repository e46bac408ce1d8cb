package fixtures

import (
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/stats"
)

var mockSLABreaches = []domain.SLABreach{
	{ID: "sb1", TicketNumber: "TKT-24011", Subject: "Production line PLC not responding", Customer: "Northwind Manufacturing", Priority: domain.PriorityCritical,
		Severity: domain.SeverityCritical, BreachType: domain.BreachResponse, TargetMinutes: 15, ActualMinutes: 48, AssignedTo: "Ravi Shankar", Team: "L2 Support",
		Status: "escalated", BreachedAt: at("2024-01-17 07:30")},
	{ID: "sb2", TicketNumber: "TKT-24017", Subject: "Invoice totals do not match PO", Customer: "Globex Retail", Priority: domain.PriorityHigh,
		Severity: domain.SeverityMajor, BreachType: domain.BreachResolution, TargetMinutes: 480, ActualMinutes: 725, AssignedTo: "Mei Chen", Team: "Billing",
		Status: "acknowledged", BreachedAt: at("2024-01-16 17:05")},
	{ID: "sb3", TicketNumber: "TKT-24020", Subject: "Cannot export payroll report", Customer: "Initech", Priority: domain.PriorityMedium,
		Severity: domain.SeverityMinor, BreachType: domain.BreachResponse, TargetMinutes: 60, ActualMinutes: 75, AssignedTo: "Omar Haddad", Team: "L1 Support",
		Status: "resolved", BreachedAt: at("2024-01-16 10:15")},
	{ID: "sb4", TicketNumber: "TKT-24023", Subject: "Warehouse scanner sync failing", Customer: "Northwind Manufacturing", Priority: domain.PriorityHigh,
		Severity: domain.SeverityMajor, BreachType: domain.BreachResolution, TargetMinutes: 240, ActualMinutes: 315, AssignedTo: "Ravi Shankar", Team: "L2 Support",
		Status: "open", BreachedAt: at("2024-01-17 09:40")},
	{ID: "sb5", TicketNumber: "TKT-24031", Subject: "User locked out after password reset", Customer: "Umbrella Logistics", Priority: domain.PriorityLow,
		Severity: domain.SeverityMinor, BreachType: domain.BreachResolution, TargetMinutes: 1440, ActualMinutes: 1610, AssignedTo: "Omar Haddad", Team: "L1 Support",
		Status: "resolved", BreachedAt: at("2024-01-15 12:00")},
	{ID: "sb6", TicketNumber: "TKT-24035", Subject: "MRP run stuck at 80%", Customer: "Acme Components", Priority: domain.PriorityCritical,
		Severity: domain.SeverityCritical, BreachType: domain.BreachResolution, TargetMinutes: 120, ActualMinutes: 260, AssignedTo: "Mei Chen", Team: "L2 Support",
		Status: "open", BreachedAt: at("2024-01-17 11:10")},
}

func SLABreaches() []domain.SLABreach { return clone(mockSLABreaches) }

func GetBreachesBySeverity(severity domain.BreachSeverity) []domain.SLABreach {
	var out []domain.SLABreach
	for _, b := range mockSLABreaches {
		if b.Severity == severity {
			out = append(out, b)
		}
	}
	return out
}

type BreachStats struct {
	Total          int     `json:"total"`
	Critical       int     `json:"critical"`
	Open           int     `json:"open"`
	AvgOverrunMins float64 `json:"avgOverrunMinutes"`
	MaxOverrunMins int     `json:"maxOverrunMinutes"`
}

// BreachStatsOf summarises how far each breach overshot its target.
func BreachStatsOf(items []domain.SLABreach) BreachStats {
	s := BreachStats{Total: len(items)}
	for _, b := range items {
		if b.Severity == domain.SeverityCritical {
			s.Critical++
		}
		if b.Status == "open" || b.Status == "escalated" {
			s.Open++
		}
		if over := stats.BreachMinutes(b.TargetMinutes, b.ActualMinutes); over > s.MaxOverrunMins {
			s.MaxOverrunMins = over
		}
	}
	s.AvgOverrunMins = stats.Round1(stats.Mean(items, func(b domain.SLABreach) float64 {
		return float64(stats.BreachMinutes(b.TargetMinutes, b.ActualMinutes))
	}))
	return s
}

func GetBreachStats() BreachStats { return BreachStatsOf(mockSLABreaches) }
