package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/stats"
	"erpviews-backend/internal/table"
)

func newRegistry() *Registry {
	return NewRegistry(repository.FixtureSources(), repository.NewOverlay(), Options{DefaultPageSize: 10, MaxPageSize: 25})
}

func column(v table.View, id string) []string {
	var out []string
	for _, row := range v.Rows {
		for _, c := range row.Cells {
			if c.Column == id {
				out = append(out, c.Display)
			}
		}
	}
	return out
}

func cardValue(t *testing.T, res Result, key string) float64 {
	t.Helper()
	for _, c := range res.Stats {
		if c.Key == key {
			return c.Value
		}
	}
	t.Fatalf("card %q not found", key)
	return 0
}

func TestRegistryListsEveryPage(t *testing.T) {
	keys := []string{}
	for _, m := range newRegistry().List() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{
		"machines", "replenishment", "sla-breaches", "shifts", "kpis", "access-cards",
		"sales-reps", "assignment-rules", "biometric-devices", "customer-groups", "leave-balances",
	}, keys)

	_, err := newRegistry().Query(context.Background(), "payroll", Request{})
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestMachineSearchCNCMatchesOnlyCNCMachines(t *testing.T) {
	res, err := newRegistry().Query(context.Background(), "machines", Request{Search: "cnc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"MCH-CNC-001", "MCH-CNC-002"}, column(res.Table, "machineCode"))
	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 8, res.Total)
}

func TestMachineSearchIgnoresMachineType(t *testing.T) {
	res, err := newRegistry().Query(context.Background(), "machines", Request{Search: "lathe"})
	require.NoError(t, err)
	assert.True(t, res.Table.Empty)
	assert.Equal(t, "No machines found", res.Table.EmptyMessage)
}

func TestMachinesAllFiltersReturnsEverything(t *testing.T) {
	res, err := newRegistry().Query(context.Background(), "machines", Request{
		Filters: map[string]string{"status": "all", "department": "all", "type": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, res.Matched)
	assert.Equal(t, 8, res.Table.Total)
	assert.False(t, res.StatsDivergent)
	assert.Equal(t, []string{"Fabrication", "Machining", "Molding", "Packaging"}, res.FilterOptions["department"])
}

func TestMachineCardsUseWholeMaster(t *testing.T) {
	res, err := newRegistry().Query(context.Background(), "machines", Request{
		Filters: map[string]string{"status": string(domain.MachineMaintenance)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 8.0, cardValue(t, res, "total"))
	assert.Equal(t, 7.0, cardValue(t, res, "running"))
	assert.Equal(t, 79.6, cardValue(t, res, "avgOee"))
	assert.True(t, res.StatsDivergent)
	for _, c := range res.Stats {
		assert.Equal(t, stats.ScopeFull, c.Scope)
	}
}

func TestMachineOEEColumns(t *testing.T) {
	res, err := newRegistry().Query(context.Background(), "machines", Request{Search: "MCH-CNC-001"})
	require.NoError(t, err)
	assert.Equal(t, []string{"78.5%"}, column(res.Table, "oee"))
	assert.Equal(t, []string{"78.4%"}, column(res.Table, "oeeCalculated"))
	assert.Equal(t, "bg-green-100 text-green-800", res.Badges["operationalStatus"]["running"].Class)
}

func TestFilteredCardsFollowTheTable(t *testing.T) {
	res, err := newRegistry().Query(context.Background(), "sla-breaches", Request{
		Filters: map[string]string{"severity": "critical"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 2.0, cardValue(t, res, "total"))
	assert.Equal(t, 2.0, cardValue(t, res, "critical"))
	assert.False(t, res.StatsDivergent)
}

func TestPagingClampsAndCapsPageSize(t *testing.T) {
	reg := newRegistry()
	ctx := context.Background()

	res, err := reg.Query(ctx, "machines", Request{PageSize: 3, Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Table.PageCount)
	assert.Len(t, res.Table.Rows, 2)
	assert.False(t, res.Table.HasNext)

	res, err = reg.Query(ctx, "machines", Request{PageSize: 3, Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Table.Page)

	res, err = reg.Query(ctx, "machines", Request{PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 25, res.Table.PageSize)
}

func TestSortValidationAndUndefinedLast(t *testing.T) {
	reg := newRegistry()
	ctx := context.Background()

	_, err := reg.Query(ctx, "machines", Request{Sort: "colour"})
	assert.ErrorIs(t, err, table.ErrUnknownColumn)
	_, err = reg.Query(ctx, "machines", Request{Sort: "model"})
	assert.ErrorIs(t, err, table.ErrNotSortable)

	for _, dir := range []table.Direction{table.Asc, table.Desc} {
		res, err := reg.Query(ctx, "machines", Request{Sort: "nextMaintenance", Dir: dir})
		require.NoError(t, err)
		codes := column(res.Table, "machineCode")
		assert.Equal(t, "MCH-GRD-001", codes[len(codes)-1], "direction %s", dir)
	}
}

func TestToggleRuleUsesOverlay(t *testing.T) {
	reg := newRegistry()
	ctx := context.Background()

	rule, err := reg.ToggleRule(ctx, "ar3", "manager@erp.local")
	require.NoError(t, err)
	assert.True(t, rule.Enabled)

	res, err := reg.Query(ctx, "assignment-rules", Request{})
	require.NoError(t, err)
	assert.Equal(t, 4.0, cardValue(t, res, "enabled"))

	rule, err = reg.ToggleRule(ctx, "ar3", "manager@erp.local")
	require.NoError(t, err)
	assert.False(t, rule.Enabled)

	_, err = reg.ToggleRule(ctx, "ar99", "manager@erp.local")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	edits := reg.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, "false", edits[0].Value)
	assert.Equal(t, "true", edits[1].Value)
	assert.Equal(t, "manager@erp.local", edits[1].By)

	fresh, err := newRegistry().Query(ctx, "assignment-rules", Request{})
	require.NoError(t, err)
	assert.Equal(t, 3.0, cardValue(t, fresh, "enabled"))
}

func TestSetReplenishmentStatus(t *testing.T) {
	reg := newRegistry()
	ctx := context.Background()

	_, err := reg.SetReplenishmentStatus(ctx, "r1", "archived", "admin@erp.local")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = reg.SetReplenishmentStatus(ctx, "r404", domain.ReplenishmentApproved, "admin@erp.local")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// received straight back to pending is allowed
	req, err := reg.SetReplenishmentStatus(ctx, "r4", domain.ReplenishmentPending, "admin@erp.local")
	require.NoError(t, err)
	assert.Equal(t, domain.ReplenishmentPending, req.Status)

	res, err := reg.Query(ctx, "replenishment", Request{})
	require.NoError(t, err)
	assert.Equal(t, 4.0, cardValue(t, res, "pending"))

	// rejected attempts leave no trace
	edits := reg.Edits()
	require.Len(t, edits, 1)
	assert.Equal(t, "r4", edits[0].ID)
	assert.Equal(t, "pending", edits[0].Value)
	assert.Equal(t, "admin@erp.local", edits[0].By)
}

func TestExportIgnoresPaging(t *testing.T) {
	exp, err := newRegistry().Export(context.Background(), "machines", Request{PageSize: 2, Sort: "oee", Dir: table.Desc})
	require.NoError(t, err)
	assert.Equal(t, "Machine Master", exp.Title)
	require.Len(t, exp.Rows, 8)
	assert.Len(t, exp.Headers, len(exp.Rows[0]))
	assert.Equal(t, "MCH-WLD-001", exp.Rows[0][0])
}

func TestCustomerGroupsResolveParents(t *testing.T) {
	res, err := newRegistry().Query(context.Background(), "customer-groups", Request{Search: "gold"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Wholesale"}, column(res.Table, "parent"))
	assert.Equal(t, []string{"All Customers / Wholesale / Wholesale Gold"}, column(res.Table, "path"))

	res, err = newRegistry().Query(context.Background(), "customer-groups", Request{Search: "legacy"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cg9"}, column(res.Table, "parent"))
	assert.Equal(t, []string{"Legacy Distributors"}, column(res.Table, "path"))
}

func TestEveryPageRendersWithDefaults(t *testing.T) {
	reg := newRegistry()
	for _, m := range reg.List() {
		res, err := reg.Query(context.Background(), m.Key, Request{})
		require.NoError(t, err, m.Key)
		assert.NotEmpty(t, res.Table.Rows, m.Key)
		assert.NotEmpty(t, res.Stats, m.Key)
		for _, c := range res.Stats {
			assert.Equal(t, m.StatsScope, c.Scope, "%s/%s", m.Key, c.Key)
		}
	}
}
