package views

import (
	"erpviews-backend/internal/badge"
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/filter"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/stats"
	"erpviews-backend/internal/table"
)

func requestValue(r domain.ReplenishmentRequest) float64 {
	return float64(r.RequestedQuantity) * r.UnitCost
}

func replenishmentPage(src repository.Source[domain.ReplenishmentRequest]) Page {
	type R = domain.ReplenishmentRequest
	return &page[R]{
		meta: Meta{
			Key:          "replenishment",
			Title:        "Stock Replenishment",
			Module:       "inventory",
			Route:        "/inventory/replenishment",
			SearchFields: []string{"requestNumber", "itemCode", "itemName", "supplier"},
			Filters:      []string{"status", "priority", "warehouse"},
			StatsScope:   stats.ScopeFull,
		},
		source: src,
		spec: filter.Spec[R]{
			SearchFields: []func(R) string{
				func(r R) string { return r.RequestNumber },
				func(r R) string { return r.ItemCode },
				func(r R) string { return r.ItemName },
				func(r R) string { return r.Supplier },
			},
			Filters: map[string]func(R) string{
				"status":    func(r R) string { return string(r.Status) },
				"priority":  func(r R) string { return string(r.Priority) },
				"warehouse": func(r R) string { return r.Warehouse },
			},
		},
		columns: []table.Column[R]{
			{ID: "requestNumber", Header: "Request #", Accessor: func(r R) any { return r.RequestNumber }, Sortable: true},
			{ID: "itemCode", Header: "Item Code", Accessor: func(r R) any { return r.ItemCode }, Sortable: true},
			{ID: "itemName", Header: "Item", Accessor: func(r R) any { return r.ItemName }, Sortable: true},
			{ID: "warehouse", Header: "Warehouse", Accessor: func(r R) any { return r.Warehouse }, Sortable: true},
			{ID: "currentStock", Header: "Current Stock", Accessor: func(r R) any { return r.CurrentStock }, Sortable: true},
			{ID: "reorderPoint", Header: "ROP", Accessor: func(r R) any { return r.ReorderPoint }, Sortable: true},
			{ID: "requestedQuantity", Header: "Requested Qty", Accessor: func(r R) any { return r.RequestedQuantity }, Sortable: true},
			{ID: "value", Header: "Value", Accessor: func(r R) any { return stats.Round(requestValue(r), 2) }, Render: money[R], Sortable: true},
			{ID: "priority", Header: "Priority", Accessor: func(r R) any { return r.Priority }, Sortable: true},
			{ID: "status", Header: "Status", Accessor: func(r R) any { return r.Status }, Sortable: true},
			{ID: "supplier", Header: "Supplier", Accessor: func(r R) any { return r.Supplier }},
			{ID: "requestDate", Header: "Requested", Accessor: func(r R) any { return r.RequestDate }, Sortable: true},
			{ID: "expectedDate", Header: "Expected", Accessor: func(r R) any { return r.ExpectedDate }, Sortable: true},
		},
		defaultSort: &table.Sort{Column: "requestDate", Direction: table.Desc},
		badges: map[string]badge.Kind{
			"priority": badge.Priority,
			"status":   badge.ReplenishmentStatus,
		},
		cards: func(all, _ []R) []stats.Card {
			return []stats.Card{
				count("total", "Total Requests", len(all), stats.ScopeFull),
				count("pending", "Pending Approval", stats.Count(all, func(r R) bool { return r.Status == domain.ReplenishmentPending }), stats.ScopeFull),
				count("critical", "Critical", stats.Count(all, func(r R) bool { return r.Priority == domain.PriorityCritical }), stats.ScopeFull),
				card("totalValue", "Total Value", stats.Round(stats.Sum(all, requestValue), 2), "", stats.ScopeFull),
			}
		},
		emptyMessage:     "No replenishment requests",
		emptyDescription: "Nothing matches the current search and filters.",
	}
}
