package repository

import (
	"context"
	"fmt"
	"time"

	"erpviews-backend/internal/db"
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/fixtures"
)

// Entity names used as fixture_records.entity.
const (
	EntityMachines           = "machines"
	EntityReplenishment      = "replenishment_requests"
	EntitySLABreaches        = "sla_breaches"
	EntityShiftTemplates     = "shift_templates"
	EntityKPIs               = "kpis"
	EntityAccessCards        = "access_cards"
	EntitySalesReps          = "sales_reps"
	EntityAssignmentRules    = "assignment_rules"
	EntityBiometricDevices   = "biometric_devices"
	EntityCustomerGroups     = "customer_groups"
	EntityLeaveBalances      = "leave_balances"
	EntityReorderSuggestions = "reorder_suggestions"
	EntityApprovalEntries    = "approval_entries"
)

// Sources bundles one read-only source per entity.
type Sources struct {
	Machines           Source[domain.Machine]
	Replenishment      Source[domain.ReplenishmentRequest]
	SLABreaches        Source[domain.SLABreach]
	ShiftTemplates     Source[domain.ShiftTemplate]
	KPIs               Source[domain.KPI]
	AccessCards        Source[domain.AccessCard]
	SalesReps          Source[domain.SalesRep]
	AssignmentRules    Source[domain.AssignmentRule]
	BiometricDevices   Source[domain.BiometricDevice]
	CustomerGroups     Source[domain.CustomerGroup]
	LeaveBalances      Source[domain.LeaveBalance]
	ReorderSuggestions Source[domain.ReorderSuggestion]
	ApprovalEntries    Source[domain.ApprovalEntry]
}

func FixtureSources() Sources {
	return Sources{
		Machines:           FixtureSource[domain.Machine]{Load: fixtures.Machines},
		Replenishment:      FixtureSource[domain.ReplenishmentRequest]{Load: fixtures.ReplenishmentRequests},
		SLABreaches:        FixtureSource[domain.SLABreach]{Load: fixtures.SLABreaches},
		ShiftTemplates:     FixtureSource[domain.ShiftTemplate]{Load: fixtures.ShiftTemplates},
		KPIs:               FixtureSource[domain.KPI]{Load: fixtures.KPIs},
		AccessCards:        FixtureSource[domain.AccessCard]{Load: fixtures.AccessCards},
		SalesReps:          FixtureSource[domain.SalesRep]{Load: fixtures.SalesReps},
		AssignmentRules:    FixtureSource[domain.AssignmentRule]{Load: fixtures.AssignmentRules},
		BiometricDevices:   FixtureSource[domain.BiometricDevice]{Load: fixtures.BiometricDevices},
		CustomerGroups:     FixtureSource[domain.CustomerGroup]{Load: fixtures.CustomerGroups},
		LeaveBalances:      FixtureSource[domain.LeaveBalance]{Load: fixtures.LeaveBalances},
		ReorderSuggestions: FixtureSource[domain.ReorderSuggestion]{Load: fixtures.ReorderSuggestions},
		ApprovalEntries:    FixtureSource[domain.ApprovalEntry]{Load: fixtures.ApprovalEntries},
	}
}

func PostgresSources(pg *db.Postgres) Sources {
	return Sources{
		Machines:           PostgresSource[domain.Machine]{DB: pg, Entity: EntityMachines},
		Replenishment:      PostgresSource[domain.ReplenishmentRequest]{DB: pg, Entity: EntityReplenishment},
		SLABreaches:        PostgresSource[domain.SLABreach]{DB: pg, Entity: EntitySLABreaches},
		ShiftTemplates:     PostgresSource[domain.ShiftTemplate]{DB: pg, Entity: EntityShiftTemplates},
		KPIs:               PostgresSource[domain.KPI]{DB: pg, Entity: EntityKPIs},
		AccessCards:        PostgresSource[domain.AccessCard]{DB: pg, Entity: EntityAccessCards},
		SalesReps:          PostgresSource[domain.SalesRep]{DB: pg, Entity: EntitySalesReps},
		AssignmentRules:    PostgresSource[domain.AssignmentRule]{DB: pg, Entity: EntityAssignmentRules},
		BiometricDevices:   PostgresSource[domain.BiometricDevice]{DB: pg, Entity: EntityBiometricDevices},
		CustomerGroups:     PostgresSource[domain.CustomerGroup]{DB: pg, Entity: EntityCustomerGroups},
		LeaveBalances:      PostgresSource[domain.LeaveBalance]{DB: pg, Entity: EntityLeaveBalances},
		ReorderSuggestions: PostgresSource[domain.ReorderSuggestion]{DB: pg, Entity: EntityReorderSuggestions},
		ApprovalEntries:    PostgresSource[domain.ApprovalEntry]{DB: pg, Entity: EntityApprovalEntries},
	}
}

// WithOverlay returns a copy whose rule and replenishment sources apply the
// overlay's edits.
func (s Sources) WithOverlay(o *Overlay) Sources {
	s.AssignmentRules = RuleSource{Base: s.AssignmentRules, Overlay: o}
	s.Replenishment = ReplenishmentSource{Base: s.Replenishment, Overlay: o}
	return s
}

// SeedAll copies every fixture array into fixture_records and reports the
// number of inserted rows per entity.
func SeedAll(ctx context.Context, r FixtureRecordRepository) (map[string]int, error) {
	counts := map[string]int{}
	steps := []struct {
		entity string
		seed   func() (int, error)
	}{
		{EntityMachines, func() (int, error) {
			return SeedEntity(ctx, r, EntityMachines, fixtures.Machines(), func(m domain.Machine) string { return m.ID })
		}},
		{EntityReplenishment, func() (int, error) {
			return SeedEntity(ctx, r, EntityReplenishment, fixtures.ReplenishmentRequests(), func(x domain.ReplenishmentRequest) string { return x.ID })
		}},
		{EntitySLABreaches, func() (int, error) {
			return SeedEntity(ctx, r, EntitySLABreaches, fixtures.SLABreaches(), func(x domain.SLABreach) string { return x.ID })
		}},
		{EntityShiftTemplates, func() (int, error) {
			return SeedEntity(ctx, r, EntityShiftTemplates, fixtures.ShiftTemplates(), func(x domain.ShiftTemplate) string { return x.ID })
		}},
		{EntityKPIs, func() (int, error) {
			return SeedEntity(ctx, r, EntityKPIs, fixtures.KPIs(), func(x domain.KPI) string { return x.ID })
		}},
		{EntityAccessCards, func() (int, error) {
			return SeedEntity(ctx, r, EntityAccessCards, fixtures.AccessCards(), func(x domain.AccessCard) string { return x.ID })
		}},
		{EntitySalesReps, func() (int, error) {
			return SeedEntity(ctx, r, EntitySalesReps, fixtures.SalesReps(), func(x domain.SalesRep) string { return x.ID })
		}},
		{EntityAssignmentRules, func() (int, error) {
			return SeedEntity(ctx, r, EntityAssignmentRules, fixtures.AssignmentRules(), func(x domain.AssignmentRule) string { return x.ID })
		}},
		{EntityBiometricDevices, func() (int, error) {
			return SeedEntity(ctx, r, EntityBiometricDevices, fixtures.BiometricDevices(), func(x domain.BiometricDevice) string { return x.ID })
		}},
		{EntityCustomerGroups, func() (int, error) {
			return SeedEntity(ctx, r, EntityCustomerGroups, fixtures.CustomerGroups(), func(x domain.CustomerGroup) string { return x.ID })
		}},
		{EntityLeaveBalances, func() (int, error) {
			return SeedEntity(ctx, r, EntityLeaveBalances, fixtures.LeaveBalances(), func(x domain.LeaveBalance) string { return x.ID })
		}},
		{EntityReorderSuggestions, func() (int, error) {
			return SeedEntity(ctx, r, EntityReorderSuggestions, fixtures.ReorderSuggestions(), func(x domain.ReorderSuggestion) string { return x.ID })
		}},
		{EntityApprovalEntries, func() (int, error) {
			return SeedEntity(ctx, r, EntityApprovalEntries, fixtures.ApprovalEntries(), ApprovalEntryKey)
		}},
	}
	for _, step := range steps {
		n, err := step.seed()
		if err != nil {
			return counts, fmt.Errorf("seed %s: %w", step.entity, err)
		}
		counts[step.entity] = n
	}
	return counts, nil
}

// ApprovalEntryKey identifies an approval step; entries carry no id of their own.
func ApprovalEntryKey(e domain.ApprovalEntry) string {
	return fmt.Sprintf("%s:%s:%d:%s", e.DocType, e.DocID, e.Level, e.Date.Format(time.RFC3339))
}
