package views

import (
	"strings"

	"erpviews-backend/internal/badge"
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/filter"
	"erpviews-backend/internal/fixtures"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/stats"
	"erpviews-backend/internal/table"
)

func salesRepsPage(src repository.Source[domain.SalesRep]) Page {
	type S = domain.SalesRep
	return &page[S]{
		meta: Meta{
			Key:          "sales-reps",
			Title:        "Sales Representatives",
			Module:       "crm",
			Route:        "/crm/sales-reps",
			SearchFields: []string{"name", "email", "employeeCode", "territory"},
			Filters:      []string{"region", "team", "status"},
			StatsScope:   stats.ScopeFiltered,
		},
		source: src,
		spec: filter.Spec[S]{
			SearchFields: []func(S) string{
				func(s S) string { return s.Name },
				func(s S) string { return s.Email },
				func(s S) string { return s.EmployeeCode },
				func(s S) string { return s.Territory },
			},
			Filters: map[string]func(S) string{
				"region": func(s S) string { return s.Region },
				"team":   func(s S) string { return s.Team },
				"status": func(s S) string { return s.Status },
			},
		},
		columns: []table.Column[S]{
			{ID: "employeeCode", Header: "Employee ID", Accessor: func(s S) any { return s.EmployeeCode }, Sortable: true},
			{ID: "name", Header: "Name", Accessor: func(s S) any { return s.Name }, Sortable: true},
			{ID: "email", Header: "Email", Accessor: func(s S) any { return s.Email }},
			{ID: "territory", Header: "Territory", Accessor: func(s S) any { return s.Territory }, Sortable: true},
			{ID: "region", Header: "Region", Accessor: func(s S) any { return s.Region }, Sortable: true},
			{ID: "team", Header: "Team", Accessor: func(s S) any { return s.Team }, Sortable: true},
			{ID: "quota", Header: "Quota", Accessor: func(s S) any { return s.Quota }, Render: money[S], Sortable: true},
			{ID: "achieved", Header: "Achieved", Accessor: func(s S) any { return s.Achieved }, Render: money[S], Sortable: true},
			{ID: "attainment", Header: "Attainment", Accessor: func(s S) any { return stats.Round1(stats.Percent(s.Achieved, s.Quota)) }, Render: pct[S], Sortable: true},
			{ID: "deals", Header: "Deals", Accessor: func(s S) any { return s.Deals }, Sortable: true},
			{ID: "winRate", Header: "Win Rate", Accessor: func(s S) any { return s.WinRate }, Render: pct[S], Sortable: true},
			{ID: "status", Header: "Status", Accessor: func(s S) any { return s.Status }, Sortable: true},
		},
		defaultSort: &table.Sort{Column: "name", Direction: table.Asc},
		badges:      map[string]badge.Kind{"status": badge.ActiveStatus},
		cards: func(_, matched []S) []stats.Card {
			quota := stats.Sum(matched, func(s S) float64 { return s.Quota })
			achieved := stats.Sum(matched, func(s S) float64 { return s.Achieved })
			return []stats.Card{
				count("total", "Sales Reps", len(matched), stats.ScopeFiltered),
				count("active", "Active", stats.Count(matched, func(s S) bool { return s.Status == "active" }), stats.ScopeFiltered),
				card("quota", "Total Quota", quota, "", stats.ScopeFiltered),
				card("attainment", "Team Attainment", stats.Round1(stats.Percent(achieved, quota)), "%", stats.ScopeFiltered),
			}
		},
		emptyMessage: "No sales reps found",
	}
}

func enabledLabel(r domain.AssignmentRule) string {
	if r.Enabled {
		return "enabled"
	}
	return "disabled"
}

func criteriaText(cs []domain.RuleCriterion) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, c.Field+" "+c.Operator+" "+c.Value)
	}
	return strings.Join(parts, "; ")
}

// Rule cards count every rule; the table honours the filters.
func assignmentRulesPage(src repository.Source[domain.AssignmentRule]) Page {
	type A = domain.AssignmentRule
	return &page[A]{
		meta: Meta{
			Key:          "assignment-rules",
			Title:        "Assignment Rules",
			Module:       "crm",
			Route:        "/crm/assignment-rules",
			SearchFields: []string{"name", "description"},
			Filters:      []string{"entityType", "strategy", "enabled"},
			StatsScope:   stats.ScopeFull,
		},
		source: src,
		spec: filter.Spec[A]{
			SearchFields: []func(A) string{
				func(a A) string { return a.Name },
				func(a A) string { return a.Description },
			},
			Filters: map[string]func(A) string{
				"entityType": func(a A) string { return a.EntityType },
				"strategy":   func(a A) string { return a.Strategy },
				"enabled":    enabledLabel,
			},
		},
		columns: []table.Column[A]{
			{ID: "priority", Header: "Priority", Accessor: func(a A) any { return a.Priority }, Sortable: true},
			{ID: "name", Header: "Rule", Accessor: func(a A) any { return a.Name }, Sortable: true},
			{ID: "entityType", Header: "Applies To", Accessor: func(a A) any { return a.EntityType }, Sortable: true},
			{ID: "strategy", Header: "Strategy", Accessor: func(a A) any { return a.Strategy }, Sortable: true},
			{ID: "criteria", Header: "Criteria", Accessor: func(a A) any { return criteriaText(a.Criteria) }},
			{ID: "assignTo", Header: "Assign To", Accessor: func(a A) any { return joined(a.AssignTo) }},
			{ID: "matchCount", Header: "Matches", Accessor: func(a A) any { return a.MatchCount }, Sortable: true},
			{ID: "lastTriggered", Header: "Last Triggered", Accessor: func(a A) any { return a.LastTriggered }, Sortable: true},
			{ID: "enabled", Header: "State", Accessor: func(a A) any { return enabledLabel(a) }, Sortable: true},
		},
		defaultSort: &table.Sort{Column: "priority", Direction: table.Asc},
		badges:      map[string]badge.Kind{"enabled": badge.ActiveStatus},
		cards: func(all, _ []A) []stats.Card {
			enabled := stats.Count(all, func(a A) bool { return a.Enabled })
			return []stats.Card{
				count("total", "Rules", len(all), stats.ScopeFull),
				count("enabled", "Enabled", enabled, stats.ScopeFull),
				count("disabled", "Disabled", len(all)-enabled, stats.ScopeFull),
				card("matches", "Total Matches", stats.Sum(all, func(a A) float64 { return float64(a.MatchCount) }), "", stats.ScopeFull),
			}
		},
		emptyMessage:     "No assignment rules",
		emptyDescription: "Create a rule to start routing records automatically.",
	}
}

func groupColumns(groups []domain.CustomerGroup) []table.Column[domain.CustomerGroup] {
	type G = domain.CustomerGroup
	parentName := func(g G) any {
		if g.ParentGroupID == "" {
			return nil
		}
		if p, ok := fixtures.GroupByID(groups, g.ParentGroupID); ok {
			return p.Name
		}
		// dangling reference: show the raw id
		return g.ParentGroupID
	}
	path := func(g G) any {
		chain := fixtures.GroupHierarchy(groups, g.ID)
		names := make([]string, 0, len(chain))
		for _, c := range chain {
			names = append(names, c.Name)
		}
		return strings.Join(names, " / ")
	}
	return []table.Column[G]{
		{ID: "code", Header: "Code", Accessor: func(g G) any { return g.Code }, Sortable: true},
		{ID: "name", Header: "Group", Accessor: func(g G) any { return g.Name }, Sortable: true},
		{ID: "parent", Header: "Parent", Accessor: parentName, Sortable: true},
		{ID: "path", Header: "Hierarchy", Accessor: path, Sortable: true},
		{ID: "discountPercent", Header: "Discount", Accessor: func(g G) any { return g.DiscountPercent }, Render: pct[G], Sortable: true},
		{ID: "customerCount", Header: "Customers", Accessor: func(g G) any { return g.CustomerCount }, Sortable: true},
		{ID: "status", Header: "Status", Accessor: func(g G) any { return g.Status }, Sortable: true},
	}
}

func customerGroupsPage(src repository.Source[domain.CustomerGroup]) Page {
	type G = domain.CustomerGroup
	return &page[G]{
		meta: Meta{
			Key:          "customer-groups",
			Title:        "Customer Groups",
			Module:       "crm",
			Route:        "/crm/customer-groups",
			SearchFields: []string{"name", "code", "description"},
			Filters:      []string{"status", "parent"},
			StatsScope:   stats.ScopeFiltered,
		},
		source: src,
		spec: filter.Spec[G]{
			SearchFields: []func(G) string{
				func(g G) string { return g.Name },
				func(g G) string { return g.Code },
				func(g G) string { return g.Description },
			},
			Filters: map[string]func(G) string{
				"status": func(g G) string { return g.Status },
				"parent": func(g G) string { return g.ParentGroupID },
			},
		},
		columnsFor:  groupColumns,
		defaultSort: &table.Sort{Column: "path", Direction: table.Asc},
		badges:      map[string]badge.Kind{"status": badge.ActiveStatus},
		cards: func(_, matched []G) []stats.Card {
			return []stats.Card{
				count("total", "Groups", len(matched), stats.ScopeFiltered),
				count("active", "Active", stats.Count(matched, func(g G) bool { return g.Status == "active" }), stats.ScopeFiltered),
				card("customers", "Customers", stats.Sum(matched, func(g G) float64 { return float64(g.CustomerCount) }), "", stats.ScopeFiltered),
				card("avgDiscount", "Avg Discount", stats.Round1(stats.Mean(matched, func(g G) float64 { return g.DiscountPercent })), "%", stats.ScopeFiltered),
			}
		},
		emptyMessage: "No customer groups",
	}
}
