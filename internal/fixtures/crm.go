package fixtures

import "erpviews-backend/internal/domain"

var mockSalesReps = []domain.SalesRep{
	{ID: "sr1", EmployeeCode: "EMP-S-101", Name: "Elena Petrova", Email: "elena.petrova@erp.local", Territory: "Northeast", Region: "North America", Team: "Enterprise",
		Status: "active", Quota: 1200000, Achieved: 1086000, Deals: 18, WinRate: 42.5},
	{ID: "sr2", EmployeeCode: "EMP-S-102", Name: "Daniel Okafor", Email: "daniel.okafor@erp.local", Territory: "West Africa", Region: "EMEA", Team: "Mid-Market",
		Status: "active", Quota: 650000, Achieved: 702000, Deals: 27, WinRate: 51.0},
	{ID: "sr3", EmployeeCode: "EMP-S-103", Name: "Hiroshi Tanaka", Email: "hiroshi.tanaka@erp.local", Territory: "Japan", Region: "APAC", Team: "Enterprise",
		Status: "on_leave", Quota: 900000, Achieved: 410000, Deals: 9, WinRate: 33.3},
	{ID: "sr4", EmployeeCode: "EMP-S-104", Name: "Lucia Romero", Email: "lucia.romero@erp.local", Territory: "Iberia", Region: "EMEA", Team: "SMB",
		Status: "active", Quota: 300000, Achieved: 276000, Deals: 44, WinRate: 58.2},
	{ID: "sr5", EmployeeCode: "EMP-S-105", Name: "Arjun Mehta", Email: "arjun.mehta@erp.local", Territory: "South Asia", Region: "APAC", Team: "Mid-Market",
		Status: "active", Quota: 550000, Achieved: 495000, Deals: 31, WinRate: 47.9},
	{ID: "sr6", EmployeeCode: "EMP-S-106", Name: "Grace Kim", Email: "grace.kim@erp.local", Territory: "Pacific Northwest", Region: "North America", Team: "SMB",
		Status: "inactive", Quota: 280000, Achieved: 98000, Deals: 12, WinRate: 28.6},
}

func SalesReps() []domain.SalesRep { return clone(mockSalesReps) }

var mockAssignmentRules = []domain.AssignmentRule{
	{ID: "ar1", Name: "Enterprise leads by territory", Description: "Route enterprise-size leads to the territory owner", EntityType: "lead",
		Strategy: "territory", Priority: 1, Enabled: true,
		Criteria:   []domain.RuleCriterion{{Field: "companySize", Operator: "greater_than", Value: "1000"}, {Field: "country", Operator: "in", Value: "US,CA"}},
		AssignTo:   []string{"sr1"}, MatchCount: 142, LastTriggered: atPtr("2024-01-17 10:42")},
	{ID: "ar2", Name: "SMB round robin", Description: "Distribute small business leads evenly", EntityType: "lead",
		Strategy: "round_robin", Priority: 2, Enabled: true,
		Criteria:   []domain.RuleCriterion{{Field: "companySize", Operator: "less_than", Value: "50"}},
		AssignTo:   []string{"sr4", "sr6"}, MatchCount: 389, LastTriggered: atPtr("2024-01-17 11:05")},
	{ID: "ar3", Name: "APAC opportunities", Description: "Opportunities from APAC accounts", EntityType: "opportunity",
		Strategy: "load_balanced", Priority: 3, Enabled: false,
		Criteria:   []domain.RuleCriterion{{Field: "region", Operator: "equals", Value: "APAC"}},
		AssignTo:   []string{"sr3", "sr5"}, MatchCount: 57},
	{ID: "ar4", Name: "Billing tickets", Description: "Send billing questions to the billing desk", EntityType: "ticket",
		Strategy: "skill_based", Priority: 1, Enabled: true,
		Criteria:   []domain.RuleCriterion{{Field: "category", Operator: "equals", Value: "billing"}},
		AssignTo:   []string{"billing-desk"}, MatchCount: 1204, LastTriggered: atPtr("2024-01-17 11:30")},
	{ID: "ar5", Name: "EMEA mid-market", Description: "Mid-market leads from EMEA", EntityType: "lead",
		Strategy: "territory", Priority: 4, Enabled: false,
		Criteria:   []domain.RuleCriterion{{Field: "region", Operator: "equals", Value: "EMEA"}, {Field: "companySize", Operator: "between", Value: "50-1000"}},
		AssignTo:   []string{"sr2"}, MatchCount: 0},
}

func AssignmentRules() []domain.AssignmentRule {
	out := clone(mockAssignmentRules)
	for i := range out {
		out[i].Criteria = clone(out[i].Criteria)
		out[i].AssignTo = clone(out[i].AssignTo)
	}
	return out
}

var mockCustomerGroups = []domain.CustomerGroup{
	{ID: "cg1", Code: "CG-ALL", Name: "All Customers", Description: "Root group", DiscountPercent: 0, CustomerCount: 1240, Status: "active"},
	{ID: "cg2", Code: "CG-WHL", Name: "Wholesale", ParentGroupID: "cg1", Description: "Bulk buyers", DiscountPercent: 12, CustomerCount: 310, Status: "active"},
	{ID: "cg3", Code: "CG-RTL", Name: "Retail", ParentGroupID: "cg1", Description: "Walk-in and online retail", DiscountPercent: 0, CustomerCount: 880, Status: "active"},
	{ID: "cg4", Code: "CG-WHL-GLD", Name: "Wholesale Gold", ParentGroupID: "cg2", Description: "Top wholesale accounts", DiscountPercent: 18, CustomerCount: 42, Status: "active"},
	{ID: "cg5", Code: "CG-WHL-SLV", Name: "Wholesale Silver", ParentGroupID: "cg2", Description: "Mid-tier wholesale accounts", DiscountPercent: 15, CustomerCount: 96, Status: "active"},
	{ID: "cg6", Code: "CG-RTL-VIP", Name: "Retail VIP", ParentGroupID: "cg3", Description: "Loyalty programme members", DiscountPercent: 5, CustomerCount: 130, Status: "active"},
	{ID: "cg7", Code: "CG-GOV", Name: "Government", ParentGroupID: "cg1", Description: "Public sector contracts", DiscountPercent: 8, CustomerCount: 50, Status: "inactive"},
	// parent cg9 does not exist; kept as-is
	{ID: "cg8", Code: "CG-LEGACY", Name: "Legacy Distributors", ParentGroupID: "cg9", Description: "Migrated from old system", DiscountPercent: 10, CustomerCount: 14, Status: "inactive"},
}

func CustomerGroups() []domain.CustomerGroup { return clone(mockCustomerGroups) }

func GetGroupByID(id string) (domain.CustomerGroup, bool) { return GroupByID(mockCustomerGroups, id) }

func GroupByID(groups []domain.CustomerGroup, id string) (domain.CustomerGroup, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return domain.CustomerGroup{}, false
}

func GetChildGroups(parentID string) []domain.CustomerGroup { return ChildGroups(mockCustomerGroups, parentID) }

// ChildGroups returns the direct children of parentID by linear scan.
func ChildGroups(groups []domain.CustomerGroup, parentID string) []domain.CustomerGroup {
	var out []domain.CustomerGroup
	for _, g := range groups {
		if g.ParentGroupID == parentID {
			out = append(out, g)
		}
	}
	return out
}

func GetGroupHierarchy(id string) []domain.CustomerGroup { return GroupHierarchy(mockCustomerGroups, id) }

// GroupHierarchy walks from the group up to its root, root first. A
// dangling parent ends the walk, and so does a repeated id.
func GroupHierarchy(groups []domain.CustomerGroup, id string) []domain.CustomerGroup {
	var chain []domain.CustomerGroup
	seen := map[string]bool{}
	for id != "" && !seen[id] {
		seen[id] = true
		g, ok := GroupByID(groups, id)
		if !ok {
			break
		}
		chain = append([]domain.CustomerGroup{g}, chain...)
		id = g.ParentGroupID
	}
	return chain
}
