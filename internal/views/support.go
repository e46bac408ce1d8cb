package views

import (
	"erpviews-backend/internal/badge"
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/filter"
	"erpviews-backend/internal/fixtures"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/stats"
	"erpviews-backend/internal/table"
)

// SLA breach cards follow the filtered table.
func slaBreachesPage(src repository.Source[domain.SLABreach]) Page {
	type B = domain.SLABreach
	return &page[B]{
		meta: Meta{
			Key:          "sla-breaches",
			Title:        "SLA Breaches",
			Module:       "support",
			Route:        "/support/sla/breaches",
			SearchFields: []string{"ticketNumber", "subject", "customer", "assignedTo"},
			Filters:      []string{"severity", "breachType", "team", "status"},
			StatsScope:   stats.ScopeFiltered,
		},
		source: src,
		spec: filter.Spec[B]{
			SearchFields: []func(B) string{
				func(b B) string { return b.TicketNumber },
				func(b B) string { return b.Subject },
				func(b B) string { return b.Customer },
				func(b B) string { return b.AssignedTo },
			},
			Filters: map[string]func(B) string{
				"severity":   func(b B) string { return string(b.Severity) },
				"breachType": func(b B) string { return string(b.BreachType) },
				"team":       func(b B) string { return b.Team },
				"status":     func(b B) string { return b.Status },
			},
		},
		columns: []table.Column[B]{
			{ID: "ticketNumber", Header: "Ticket", Accessor: func(b B) any { return b.TicketNumber }, Sortable: true},
			{ID: "subject", Header: "Subject", Accessor: func(b B) any { return b.Subject }},
			{ID: "customer", Header: "Customer", Accessor: func(b B) any { return b.Customer }, Sortable: true},
			{ID: "priority", Header: "Priority", Accessor: func(b B) any { return b.Priority }, Sortable: true},
			{ID: "severity", Header: "Severity", Accessor: func(b B) any { return b.Severity }, Sortable: true},
			{ID: "breachType", Header: "Breach Type", Accessor: func(b B) any { return b.BreachType }, Sortable: true},
			{ID: "targetMinutes", Header: "Target", Accessor: func(b B) any { return b.TargetMinutes }, Render: minutes[B], Sortable: true},
			{ID: "actualMinutes", Header: "Actual", Accessor: func(b B) any { return b.ActualMinutes }, Render: minutes[B], Sortable: true},
			{ID: "overrun", Header: "Overrun", Accessor: func(b B) any { return stats.BreachMinutes(b.TargetMinutes, b.ActualMinutes) }, Render: minutes[B], Sortable: true},
			{ID: "assignedTo", Header: "Assignee", Accessor: func(b B) any { return b.AssignedTo }, Sortable: true},
			{ID: "team", Header: "Team", Accessor: func(b B) any { return b.Team }, Sortable: true},
			{ID: "status", Header: "Status", Accessor: func(b B) any { return b.Status }, Sortable: true},
			{ID: "breachedAt", Header: "Breached At", Accessor: func(b B) any { return b.BreachedAt }, Sortable: true},
		},
		defaultSort: &table.Sort{Column: "breachedAt", Direction: table.Desc},
		badges: map[string]badge.Kind{
			"priority": badge.Priority,
			"severity": badge.Severity,
			"status":   badge.TicketStatus,
		},
		cards: func(_, matched []B) []stats.Card {
			s := fixtures.BreachStatsOf(matched)
			return []stats.Card{
				count("total", "Total Breaches", s.Total, stats.ScopeFiltered),
				count("critical", "Critical", s.Critical, stats.ScopeFiltered),
				count("open", "Still Open", s.Open, stats.ScopeFiltered),
				card("avgOverrun", "Average Overrun", s.AvgOverrunMins, "min", stats.ScopeFiltered),
			}
		},
		emptyMessage:     "No SLA breaches",
		emptyDescription: "No ticket in this selection missed its target.",
	}
}
