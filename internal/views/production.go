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

// machine master: cards come from the whole machine list, not the filtered
// table.
func machinesPage(src repository.Source[domain.Machine]) Page {
	return &page[domain.Machine]{
		meta: Meta{
			Key:          "machines",
			Title:        "Machine Master",
			Module:       "production",
			Route:        "/production/machines/master",
			SearchFields: []string{"machineName", "machineCode", "manufacturer", "model"},
			Filters:      []string{"status", "department", "type"},
			StatsScope:   stats.ScopeFull,
		},
		source: src,
		spec: filter.Spec[domain.Machine]{
			SearchFields: []func(domain.Machine) string{
				func(m domain.Machine) string { return m.MachineName },
				func(m domain.Machine) string { return m.MachineCode },
				func(m domain.Machine) string { return m.Manufacturer },
				func(m domain.Machine) string { return m.Model },
			},
			Filters: map[string]func(domain.Machine) string{
				"status":     func(m domain.Machine) string { return string(m.OperationalStatus) },
				"department": func(m domain.Machine) string { return m.Department },
				"type":       func(m domain.Machine) string { return m.MachineType },
			},
		},
		columns: []table.Column[domain.Machine]{
			{ID: "machineCode", Header: "Code", Accessor: func(m domain.Machine) any { return m.MachineCode }, Sortable: true},
			{ID: "machineName", Header: "Machine", Accessor: func(m domain.Machine) any { return m.MachineName }, Sortable: true},
			{ID: "machineType", Header: "Type", Accessor: func(m domain.Machine) any { return m.MachineType }, Sortable: true},
			{ID: "manufacturer", Header: "Manufacturer", Accessor: func(m domain.Machine) any { return m.Manufacturer }, Sortable: true},
			{ID: "model", Header: "Model", Accessor: func(m domain.Machine) any { return m.Model }},
			{ID: "department", Header: "Department", Accessor: func(m domain.Machine) any { return m.Department }, Sortable: true},
			{ID: "location", Header: "Location", Accessor: func(m domain.Machine) any { return m.Location }},
			{ID: "operationalStatus", Header: "Status", Accessor: func(m domain.Machine) any { return m.OperationalStatus }, Sortable: true},
			{ID: "availability", Header: "Availability", Accessor: func(m domain.Machine) any { return m.Availability }, Render: pct[domain.Machine], Sortable: true},
			{ID: "performance", Header: "Performance", Accessor: func(m domain.Machine) any { return m.Performance }, Render: pct[domain.Machine], Sortable: true},
			{ID: "quality", Header: "Quality", Accessor: func(m domain.Machine) any { return m.Quality }, Render: pct[domain.Machine], Sortable: true},
			{ID: "oee", Header: "OEE", Accessor: func(m domain.Machine) any { return m.OEE }, Render: pct[domain.Machine], Sortable: true},
			{ID: "oeeCalculated", Header: "OEE (A×P×Q)", Accessor: func(m domain.Machine) any {
				return stats.Round1(stats.OEE(m.Availability, m.Performance, m.Quality))
			}, Render: pct[domain.Machine], Sortable: true},
			{ID: "nextMaintenance", Header: "Next Maintenance", Accessor: func(m domain.Machine) any { return m.NextMaintenance }, Sortable: true},
		},
		defaultSort: &table.Sort{Column: "machineCode", Direction: table.Asc},
		badges:      map[string]badge.Kind{"operationalStatus": badge.MachineStatus},
		cards: func(all, _ []domain.Machine) []stats.Card {
			s := fixtures.MachineStatsOf(all)
			return []stats.Card{
				count("total", "Total Machines", s.Total, stats.ScopeFull),
				count("running", "Running", s.Running, stats.ScopeFull),
				count("maintenance", "Under Maintenance", s.Maintenance, stats.ScopeFull),
				card("avgOee", "Average OEE", s.AvgOEE, "%", stats.ScopeFull),
			}
		},
		emptyMessage:     "No machines found",
		emptyDescription: "Try a different search or clear the filters.",
	}
}
