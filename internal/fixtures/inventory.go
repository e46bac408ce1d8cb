package fixtures

import (
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/stats"
)

var mockReplenishment = []domain.ReplenishmentRequest{
	{ID: "r1", RequestNumber: "REP-2024-001", ItemCode: "RM-STL-304", ItemName: "Stainless Steel Sheet 304 2mm", Warehouse: "Main Warehouse",
		CurrentStock: 45, ReorderPoint: 100, MaxStock: 500, RequestedQuantity: 455, UnitCost: 38.5, Priority: domain.PriorityHigh,
		Status: domain.ReplenishmentPending, RequestedBy: "Priya Nair", Supplier: "Metalworks Supply Co.", RequestDate: day("2024-01-15"), ExpectedDate: dayPtr("2024-01-25")},
	{ID: "r2", RequestNumber: "REP-2024-002", ItemCode: "RM-ALU-6061", ItemName: "Aluminium Bar 6061 25mm", Warehouse: "Main Warehouse",
		CurrentStock: 12, ReorderPoint: 80, MaxStock: 300, RequestedQuantity: 288, UnitCost: 22.75, Priority: domain.PriorityCritical,
		Status: domain.ReplenishmentApproved, RequestedBy: "Marcus Lee", Supplier: "AluTrade GmbH", RequestDate: day("2024-01-14"), ExpectedDate: dayPtr("2024-01-20")},
	{ID: "r3", RequestNumber: "REP-2024-003", ItemCode: "CM-BRG-6204", ItemName: "Deep Groove Ball Bearing 6204", Warehouse: "Components Store",
		CurrentStock: 150, ReorderPoint: 200, MaxStock: 1000, RequestedQuantity: 850, UnitCost: 3.2, Priority: domain.PriorityMedium,
		Status: domain.ReplenishmentOrdered, RequestedBy: "Priya Nair", Supplier: "Bearing Point Ltd", RequestDate: day("2024-01-10"), ExpectedDate: dayPtr("2024-01-22")},
	{ID: "r4", RequestNumber: "REP-2024-004", ItemCode: "CM-SCR-M8", ItemName: "Hex Socket Screw M8x30", Warehouse: "Components Store",
		CurrentStock: 900, ReorderPoint: 1000, MaxStock: 5000, RequestedQuantity: 4100, UnitCost: 0.12, Priority: domain.PriorityLow,
		Status: domain.ReplenishmentReceived, RequestedBy: "Anil Kumar", Supplier: "FastenAll", RequestDate: day("2024-01-05"), ExpectedDate: dayPtr("2024-01-12")},
	{ID: "r5", RequestNumber: "REP-2024-005", ItemCode: "PK-CTN-L", ItemName: "Corrugated Carton Large", Warehouse: "Packaging Store",
		CurrentStock: 80, ReorderPoint: 300, MaxStock: 2000, RequestedQuantity: 1920, UnitCost: 1.45, Priority: domain.PriorityHigh,
		Status: domain.ReplenishmentPending, RequestedBy: "Sofia Alvarez", Supplier: "BoxCraft Packaging", RequestDate: day("2024-01-16")},
	{ID: "r6", RequestNumber: "REP-2024-006", ItemCode: "CH-LUB-ISO68", ItemName: "Hydraulic Oil ISO VG 68", Warehouse: "Main Warehouse",
		CurrentStock: 4, ReorderPoint: 10, MaxStock: 40, RequestedQuantity: 36, UnitCost: 96, Priority: domain.PriorityCritical,
		Status: domain.ReplenishmentPending, RequestedBy: "Marcus Lee", Supplier: "LubeTech Industrial", RequestDate: day("2024-01-17"), ExpectedDate: dayPtr("2024-01-19")},
	{ID: "r7", RequestNumber: "REP-2024-007", ItemCode: "EL-SNS-PX12", ItemName: "Proximity Sensor PX12", Warehouse: "Components Store",
		CurrentStock: 18, ReorderPoint: 25, MaxStock: 100, RequestedQuantity: 82, UnitCost: 41.9, Priority: domain.PriorityMedium,
		Status: domain.ReplenishmentRejected, RequestedBy: "Anil Kumar", Supplier: "SenseWorks", RequestDate: day("2024-01-08")},
	{ID: "r8", RequestNumber: "REP-2024-008", ItemCode: "RM-PP-GR", ItemName: "Polypropylene Granules", Warehouse: "Raw Material Yard",
		CurrentStock: 1200, ReorderPoint: 2500, MaxStock: 10000, RequestedQuantity: 8800, UnitCost: 1.1, Priority: domain.PriorityHigh,
		Status: domain.ReplenishmentApproved, RequestedBy: "Sofia Alvarez", Supplier: "PolyChem Traders", RequestDate: day("2024-01-12"), ExpectedDate: dayPtr("2024-01-26")},
}

func ReplenishmentRequests() []domain.ReplenishmentRequest { return clone(mockReplenishment) }

var mockReorderSuggestions = []domain.ReorderSuggestion{
	{ID: "sug-1", ItemCode: "RM-ALU-6061", ItemName: "Aluminium Bar 6061 25mm", CurrentStock: 12, ReorderPoint: 80, SuggestedQuantity: 288,
		Priority: domain.PriorityCritical, Status: "open", CreatedAt: at("2024-01-14 08:30"), ExpectedDeliveryDate: dayPtr("2024-01-20")},
	{ID: "sug-2", ItemCode: "CH-LUB-ISO68", ItemName: "Hydraulic Oil ISO VG 68", CurrentStock: 4, ReorderPoint: 10, SuggestedQuantity: 36,
		Priority: domain.PriorityCritical, Status: "open", CreatedAt: at("2024-01-17 09:10"), ExpectedDeliveryDate: dayPtr("2024-01-19")},
	{ID: "sug-3", ItemCode: "PK-CTN-L", ItemName: "Corrugated Carton Large", CurrentStock: 80, ReorderPoint: 300, SuggestedQuantity: 1920,
		Priority: domain.PriorityHigh, Status: "open", CreatedAt: at("2024-01-16 11:45")},
	{ID: "sug-4", ItemCode: "CM-BRG-6204", ItemName: "Deep Groove Ball Bearing 6204", CurrentStock: 150, ReorderPoint: 200, SuggestedQuantity: 850,
		Priority: domain.PriorityMedium, Status: "ordered", CreatedAt: at("2024-01-10 14:00"), ExpectedDeliveryDate: dayPtr("2024-01-22")},
	{ID: "sug-5", ItemCode: "EL-CBL-CAT6", ItemName: "CAT6 Patch Cable 2m", CurrentStock: 240, ReorderPoint: 150, SuggestedQuantity: 0,
		Priority: domain.PriorityLow, Status: "dismissed", CreatedAt: at("2024-01-09 10:20")},
	{ID: "sug-6", ItemCode: "RM-PP-GR", ItemName: "Polypropylene Granules", CurrentStock: 1200, ReorderPoint: 2500, SuggestedQuantity: 8800,
		Priority: domain.PriorityHigh, Status: "open", CreatedAt: at("2024-01-12 16:05"), ExpectedDeliveryDate: dayPtr("2024-01-26")},
}

func ReorderSuggestions() []domain.ReorderSuggestion { return clone(mockReorderSuggestions) }

type ReplenishmentStats struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Critical   int     `json:"critical"`
	TotalValue float64 `json:"totalValue"`
}

// GetReplenishmentStats counts over the whole request list.
func GetReplenishmentStats() ReplenishmentStats {
	total := stats.Round(stats.Sum(mockReplenishment, func(r domain.ReplenishmentRequest) float64 {
		return float64(r.RequestedQuantity) * r.UnitCost
	}), 2)
	pending, critical := 0, 0
	for _, r := range mockReplenishment {
		if r.Status == domain.ReplenishmentPending {
			pending++
		}
		if r.Priority == domain.PriorityCritical {
			critical++
		}
	}
	return ReplenishmentStats{Total: len(mockReplenishment), Pending: pending, Critical: critical, TotalValue: total}
}
