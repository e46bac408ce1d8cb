package views

import (
	"strconv"

	"erpviews-backend/internal/badge"
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/filter"
	"erpviews-backend/internal/fixtures"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/stats"
	"erpviews-backend/internal/table"
)

func shiftsPage(src repository.Source[domain.ShiftTemplate]) Page {
	type S = domain.ShiftTemplate
	return &page[S]{
		meta: Meta{
			Key:          "shifts",
			Title:        "Shift Master",
			Module:       "hr",
			Route:        "/hr/shifts/master",
			SearchFields: []string{"name", "code", "department"},
			Filters:      []string{"shiftType", "status", "department"},
			StatsScope:   stats.ScopeFull,
		},
		source: src,
		spec: filter.Spec[S]{
			SearchFields: []func(S) string{
				func(s S) string { return s.Name },
				func(s S) string { return s.Code },
				func(s S) string { return s.Department },
			},
			Filters: map[string]func(S) string{
				"shiftType":  func(s S) string { return s.ShiftType },
				"status":     func(s S) string { return s.Status },
				"department": func(s S) string { return s.Department },
			},
		},
		columns: []table.Column[S]{
			{ID: "code", Header: "Code", Accessor: func(s S) any { return s.Code }, Sortable: true},
			{ID: "name", Header: "Shift", Accessor: func(s S) any { return s.Name }, Sortable: true},
			{ID: "shiftType", Header: "Type", Accessor: func(s S) any { return s.ShiftType }, Sortable: true},
			{ID: "startTime", Header: "Start", Accessor: func(s S) any { return s.StartTime }, Sortable: true},
			{ID: "endTime", Header: "End", Accessor: func(s S) any { return s.EndTime }},
			{ID: "breakMinutes", Header: "Break (min)", Accessor: func(s S) any { return s.BreakMinutes }, Sortable: true},
			{ID: "workingHours", Header: "Working Hours", Accessor: func(s S) any { return s.WorkingHours }, Sortable: true},
			{ID: "graceMinutes", Header: "Grace (min)", Accessor: func(s S) any { return s.GraceMinutes }},
			{ID: "department", Header: "Department", Accessor: func(s S) any { return s.Department }, Sortable: true},
			{ID: "assignedEmployees", Header: "Employees", Accessor: func(s S) any { return s.AssignedEmployees }, Sortable: true},
			{ID: "status", Header: "Status", Accessor: func(s S) any { return s.Status }, Sortable: true},
		},
		defaultSort: &table.Sort{Column: "startTime", Direction: table.Asc},
		badges: map[string]badge.Kind{
			"shiftType": badge.ShiftType,
			"status":    badge.ActiveStatus,
		},
		cards: func(all, _ []S) []stats.Card {
			active := stats.Count(all, func(s S) bool { return s.Status == "active" })
			assigned := stats.Sum(all, func(s S) float64 { return float64(s.AssignedEmployees) })
			return []stats.Card{
				count("total", "Shift Templates", len(all), stats.ScopeFull),
				count("active", "Active", active, stats.ScopeFull),
				card("assigned", "Employees Assigned", assigned, "", stats.ScopeFull),
				card("avgHours", "Avg Working Hours", stats.Round1(stats.Mean(all, func(s S) float64 { return s.WorkingHours })), "h", stats.ScopeFull),
			}
		},
		emptyMessage: "No shift templates",
	}
}

func kpisPage(src repository.Source[domain.KPI]) Page {
	type K = domain.KPI
	achievement := func(k K) float64 { return stats.Percent(k.Actual, k.Target) }
	return &page[K]{
		meta: Meta{
			Key:          "kpis",
			Title:        "KPI Library",
			Module:       "hr",
			Route:        "/hr/performance/kpis",
			SearchFields: []string{"name", "code", "owner"},
			Filters:      []string{"category", "department", "status", "frequency"},
			StatsScope:   stats.ScopeFiltered,
		},
		source: src,
		spec: filter.Spec[K]{
			SearchFields: []func(K) string{
				func(k K) string { return k.Name },
				func(k K) string { return k.Code },
				func(k K) string { return k.Owner },
			},
			Filters: map[string]func(K) string{
				"category":   func(k K) string { return k.Category },
				"department": func(k K) string { return k.Department },
				"status":     func(k K) string { return string(k.Status) },
				"frequency":  func(k K) string { return k.Frequency },
			},
		},
		columns: []table.Column[K]{
			{ID: "code", Header: "Code", Accessor: func(k K) any { return k.Code }, Sortable: true},
			{ID: "name", Header: "KPI", Accessor: func(k K) any { return k.Name }, Sortable: true},
			{ID: "category", Header: "Category", Accessor: func(k K) any { return k.Category }, Sortable: true},
			{ID: "department", Header: "Department", Accessor: func(k K) any { return k.Department }, Sortable: true},
			{ID: "target", Header: "Target", Accessor: func(k K) any { return k.Target }, Sortable: true},
			{ID: "actual", Header: "Actual", Accessor: func(k K) any { return k.Actual }, Sortable: true},
			{ID: "unit", Header: "Unit", Accessor: func(k K) any { return k.Unit }},
			{ID: "achievement", Header: "Achievement", Accessor: func(k K) any { return stats.Round1(achievement(k)) }, Render: pct[K], Sortable: true},
			{ID: "variance", Header: "Variance", Accessor: func(k K) any { return stats.Round1(stats.VariancePercent(k.Actual, k.Target)) }, Render: pct[K], Sortable: true},
			{ID: "weight", Header: "Weight", Accessor: func(k K) any { return k.Weight }, Sortable: true},
			{ID: "frequency", Header: "Frequency", Accessor: func(k K) any { return k.Frequency }},
			{ID: "owner", Header: "Owner", Accessor: func(k K) any { return k.Owner }, Sortable: true},
			{ID: "status", Header: "Status", Accessor: func(k K) any { return k.Status }, Sortable: true},
		},
		defaultSort: &table.Sort{Column: "code", Direction: table.Asc},
		badges:      map[string]badge.Kind{"status": badge.KPIStatus},
		cards: func(_, matched []K) []stats.Card {
			is := func(st domain.KPIStatus) func(K) bool { return func(k K) bool { return k.Status == st } }
			return []stats.Card{
				count("total", "KPIs", len(matched), stats.ScopeFiltered),
				count("onTrack", "On Track", stats.Count(matched, is(domain.KPIOnTrack)), stats.ScopeFiltered),
				count("atRisk", "At Risk", stats.Count(matched, is(domain.KPIAtRisk)), stats.ScopeFiltered),
				count("offTrack", "Off Track", stats.Count(matched, is(domain.KPIOffTrack)), stats.ScopeFiltered),
				card("avgAchievement", "Avg Achievement", stats.Round1(stats.Mean(matched, achievement)), "%", stats.ScopeFiltered),
			}
		},
		emptyMessage: "No KPIs defined",
	}
}

func accessCardsPage(src repository.Source[domain.AccessCard]) Page {
	type C = domain.AccessCard
	is := func(st domain.CardStatus) func(C) bool { return func(c C) bool { return c.Status == st } }
	return &page[C]{
		meta: Meta{
			Key:          "access-cards",
			Title:        "Access Cards",
			Module:       "hr",
			Route:        "/hr/access/cards",
			SearchFields: []string{"cardNumber", "employeeName", "employeeId"},
			Filters:      []string{"status", "cardType", "accessLevel", "department"},
			StatsScope:   stats.ScopeFull,
		},
		source: src,
		spec: filter.Spec[C]{
			SearchFields: []func(C) string{
				func(c C) string { return c.CardNumber },
				func(c C) string { return c.EmployeeName },
				func(c C) string { return c.EmployeeID },
			},
			Filters: map[string]func(C) string{
				"status":      func(c C) string { return string(c.Status) },
				"cardType":    func(c C) string { return c.CardType },
				"accessLevel": func(c C) string { return c.AccessLevel },
				"department":  func(c C) string { return c.Department },
			},
		},
		columns: []table.Column[C]{
			{ID: "cardNumber", Header: "Card #", Accessor: func(c C) any { return c.CardNumber }, Sortable: true},
			{ID: "employeeName", Header: "Holder", Accessor: func(c C) any { return c.EmployeeName }, Sortable: true},
			{ID: "employeeId", Header: "Employee ID", Accessor: func(c C) any { return c.EmployeeID }},
			{ID: "department", Header: "Department", Accessor: func(c C) any { return c.Department }, Sortable: true},
			{ID: "cardType", Header: "Type", Accessor: func(c C) any { return c.CardType }, Sortable: true},
			{ID: "accessLevel", Header: "Access Level", Accessor: func(c C) any { return c.AccessLevel }, Sortable: true},
			{ID: "zones", Header: "Zones", Accessor: func(c C) any { return joined(c.Zones) }},
			{ID: "status", Header: "Status", Accessor: func(c C) any { return c.Status }, Sortable: true},
			{ID: "issueDate", Header: "Issued", Accessor: func(c C) any { return c.IssueDate }, Sortable: true},
			{ID: "expiryDate", Header: "Expires", Accessor: func(c C) any { return c.ExpiryDate }, Sortable: true},
			{ID: "lastUsed", Header: "Last Used", Accessor: func(c C) any { return c.LastUsed }, Sortable: true},
		},
		defaultSort: &table.Sort{Column: "cardNumber", Direction: table.Asc},
		badges:      map[string]badge.Kind{"status": badge.CardStatus},
		cards: func(all, _ []C) []stats.Card {
			return []stats.Card{
				count("total", "Total Cards", len(all), stats.ScopeFull),
				count("active", "Active", stats.Count(all, is(domain.CardActive)), stats.ScopeFull),
				count("lost", "Reported Lost", stats.Count(all, is(domain.CardLost)), stats.ScopeFull),
				count("expired", "Expired", stats.Count(all, is(domain.CardExpired)), stats.ScopeFull),
			}
		},
		emptyMessage:     "No access cards",
		emptyDescription: "Issue a card to an employee to see it here.",
	}
}

func biometricDevicesPage(src repository.Source[domain.BiometricDevice]) Page {
	type D = domain.BiometricDevice
	is := func(st domain.DeviceStatus) func(D) bool { return func(d D) bool { return d.Status == st } }
	return &page[D]{
		meta: Meta{
			Key:          "biometric-devices",
			Title:        "Attendance Devices",
			Module:       "hr",
			Route:        "/hr/attendance/devices",
			SearchFields: []string{"deviceName", "deviceCode", "location", "ipAddress"},
			Filters:      []string{"status", "deviceType"},
			StatsScope:   stats.ScopeFull,
		},
		source: src,
		spec: filter.Spec[D]{
			SearchFields: []func(D) string{
				func(d D) string { return d.DeviceName },
				func(d D) string { return d.DeviceCode },
				func(d D) string { return d.Location },
				func(d D) string { return d.IPAddress },
			},
			Filters: map[string]func(D) string{
				"status":     func(d D) string { return string(d.Status) },
				"deviceType": func(d D) string { return d.DeviceType },
			},
		},
		columns: []table.Column[D]{
			{ID: "deviceCode", Header: "Code", Accessor: func(d D) any { return d.DeviceCode }, Sortable: true},
			{ID: "deviceName", Header: "Device", Accessor: func(d D) any { return d.DeviceName }, Sortable: true},
			{ID: "deviceType", Header: "Type", Accessor: func(d D) any { return d.DeviceType }, Sortable: true},
			{ID: "location", Header: "Location", Accessor: func(d D) any { return d.Location }, Sortable: true},
			{ID: "ipAddress", Header: "IP Address", Accessor: func(d D) any { return d.IPAddress }},
			{ID: "status", Header: "Status", Accessor: func(d D) any { return d.Status }, Sortable: true},
			{ID: "enrolledUsers", Header: "Enrolled", Accessor: func(d D) any { return d.EnrolledUsers }, Sortable: true},
			{ID: "capacity", Header: "Capacity", Accessor: func(d D) any { return d.Capacity }, Sortable: true},
			{ID: "utilization", Header: "Utilization", Accessor: func(d D) any {
				return stats.Round1(stats.UtilizationRate(float64(d.EnrolledUsers), float64(d.Capacity)))
			}, Render: pct[D], Sortable: true},
			{ID: "firmwareVersion", Header: "Firmware", Accessor: func(d D) any { return d.FirmwareVersion }},
			{ID: "lastSync", Header: "Last Sync", Accessor: func(d D) any { return d.LastSync }, Sortable: true},
		},
		defaultSort: &table.Sort{Column: "deviceCode", Direction: table.Asc},
		badges:      map[string]badge.Kind{"status": badge.DeviceStatus},
		cards: func(all, _ []D) []stats.Card {
			return []stats.Card{
				count("total", "Devices", len(all), stats.ScopeFull),
				count("online", "Online", stats.Count(all, is(domain.DeviceOnline)), stats.ScopeFull),
				count("offline", "Offline", stats.Count(all, is(domain.DeviceOffline)), stats.ScopeFull),
				card("enrolled", "Enrolled Users", stats.Sum(all, func(d D) float64 { return float64(d.EnrolledUsers) }), "", stats.ScopeFull),
			}
		},
		emptyMessage: "No devices registered",
	}
}

func leaveBalancesPage(src repository.Source[domain.LeaveBalance]) Page {
	type L = domain.LeaveBalance
	available := func(l L) float64 { return l.Entitled - l.Used - l.Pending }
	return &page[L]{
		meta: Meta{
			Key:          "leave-balances",
			Title:        "Leave Balances",
			Module:       "hr",
			Route:        "/hr/leave/balances",
			SearchFields: []string{"employeeName", "employeeCode"},
			Filters:      []string{"leaveType", "department", "year"},
			StatsScope:   stats.ScopeFiltered,
		},
		source: src,
		spec: filter.Spec[L]{
			SearchFields: []func(L) string{
				func(l L) string { return l.EmployeeName },
				func(l L) string { return l.EmployeeCode },
			},
			Filters: map[string]func(L) string{
				"leaveType":  func(l L) string { return l.LeaveType },
				"department": func(l L) string { return l.Department },
				"year":       func(l L) string { return strconv.Itoa(l.Year) },
			},
		},
		columns: []table.Column[L]{
			{ID: "employeeCode", Header: "Employee ID", Accessor: func(l L) any { return l.EmployeeCode }, Sortable: true},
			{ID: "employeeName", Header: "Employee", Accessor: func(l L) any { return l.EmployeeName }, Sortable: true},
			{ID: "department", Header: "Department", Accessor: func(l L) any { return l.Department }, Sortable: true},
			{ID: "leaveType", Header: "Leave Type", Accessor: func(l L) any { return l.LeaveType }, Sortable: true},
			{ID: "entitled", Header: "Entitled", Accessor: func(l L) any { return l.Entitled }, Sortable: true},
			{ID: "used", Header: "Used", Accessor: func(l L) any { return l.Used }, Sortable: true},
			{ID: "pending", Header: "Pending", Accessor: func(l L) any { return l.Pending }, Sortable: true},
			{ID: "available", Header: "Available", Accessor: func(l L) any { return available(l) }, Sortable: true},
			{ID: "utilization", Header: "Utilization", Accessor: func(l L) any { return fixtures.GetLeaveUtilization(l) }, Render: pct[L], Sortable: true},
			{ID: "year", Header: "Year", Accessor: func(l L) any { return l.Year }},
		},
		defaultSort: &table.Sort{Column: "employeeName", Direction: table.Asc},
		cards: func(_, matched []L) []stats.Card {
			employees := map[string]bool{}
			for _, l := range matched {
				employees[l.EmployeeCode] = true
			}
			return []stats.Card{
				count("employees", "Employees", len(employees), stats.ScopeFiltered),
				card("entitled", "Days Entitled", stats.Sum(matched, func(l L) float64 { return l.Entitled }), "days", stats.ScopeFiltered),
				card("used", "Days Used", stats.Sum(matched, func(l L) float64 { return l.Used }), "days", stats.ScopeFiltered),
				card("avgUtilization", "Avg Utilization", stats.Round1(stats.Mean(matched, fixtures.GetLeaveUtilization)), "%", stats.ScopeFiltered),
			}
		},
		emptyMessage: "No leave balances for this selection",
	}
}
