package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"erpviews-backend/internal/badge"
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/server/authctx"
	"erpviews-backend/internal/service"
	"erpviews-backend/internal/views"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

var testManager = authctx.CurrentUser{ID: 2, Email: "manager@erp.local", Role: domain.RoleManager}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterAs(t, &testManager)
}

// newTestRouterAs mounts every handler with user as the signed-in account;
// nil leaves the request anonymous.
func newTestRouterAs(t *testing.T, user *authctx.CurrentUser) http.Handler {
	t.Helper()
	reg := views.NewRegistry(repository.FixtureSources(), repository.NewOverlay(), views.Options{DefaultPageSize: 10, MaxPageSize: 100})
	src := reg.Sources()
	proc := &service.Processor{Delay: time.Hour, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if user != nil {
				req = req.WithContext(authctx.WithCurrentUser(req.Context(), *user))
			}
			next.ServeHTTP(w, req)
		})
	})
	HealthHandler{DataSource: "memory"}.RegisterRoutes(r)
	DocsHandler{}.RegisterRoutes(r)
	ViewHandler{Registry: reg}.RegisterRoutes(r)
	inv := InventoryHandler{Service: service.InventoryService{Suggestions: src.ReorderSuggestions}, Registry: reg}
	inv.RegisterRoutes(r)
	inv.RegisterManagerRoutes(r)
	ApprovalHandler{Service: service.ApprovalService{Entries: src.ApprovalEntries}}.RegisterRoutes(r)
	BadgeHandler{}.RegisterRoutes(r)
	jobs := JobHandler{Processor: proc}
	jobs.RegisterRoutes(r)
	jobs.RegisterManagerRoutes(r)
	RuleHandler{Registry: reg}.RegisterRoutes(r)
	EditHandler{Registry: reg}.RegisterRoutes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, rd))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestQueryViewSearchAndFilters(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/views/machines?search=cnc&pageSize=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var res views.Result
	env := decode(t, rec, &res)
	assert.Equal(t, "ok", env.Status)
	assert.Equal(t, 2, res.Matched)
	assert.Len(t, res.Table.Rows, 2)
	assert.Equal(t, 5, res.Table.PageSize)

	rec = do(t, h, http.MethodGet, "/views/machines?filter.status=maintenance&filter.department=all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &res)
	assert.Equal(t, 1, res.Matched)
	assert.True(t, res.StatsDivergent)
}

func TestQueryViewErrors(t *testing.T) {
	h := newTestRouter(t)
	cases := map[string]int{
		"/views/payroll":               http.StatusNotFound,
		"/views/machines?sort=colour":  http.StatusBadRequest,
		"/views/machines?sort=model":   http.StatusBadRequest,
		"/views/machines?page=abc":     http.StatusBadRequest,
		"/views/machines?pageSize=0":   http.StatusBadRequest,
		"/views/machines?dir=sideways": http.StatusBadRequest,
	}
	for target, want := range cases {
		rec := do(t, h, http.MethodGet, target, "")
		assert.Equal(t, want, rec.Code, target)
		env := decode(t, rec, nil)
		assert.Equal(t, "error", env.Status, target)
		require.NotNil(t, env.Error, target)
		assert.Equal(t, want, env.Error.Code, target)
	}
}

func TestListViews(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/views", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var metas []views.Meta
	decode(t, rec, &metas)
	assert.Len(t, metas, 11)
	assert.Equal(t, "machines", metas[0].Key)
}

func TestExportCSV(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/views/machines/export?pageSize=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "machines_")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 9)
	assert.Equal(t, "Code", records[0][0])
	assert.Equal(t, "MCH-CNC-001", records[1][0])
}

func TestExportXLSX(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/views/sla-breaches/export?format=xlsx&filter.severity=critical", "")
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("SLA Breaches")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/views/machines/export?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReorderSuggestions(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/inventory/reorder-suggestions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []struct {
		ID string `json:"id"`
	}
	decode(t, rec, &items)
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"sug-1", "sug-2", "sug-6", "sug-3", "sug-4"}, ids)
}

func TestApprovalHistory(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/approvals/replenishment/REP-2024-001/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []struct {
		Level  int    `json:"level"`
		Action string `json:"action"`
	}
	decode(t, rec, &entries)
	require.Len(t, entries, 4)
	levels := []int{entries[0].Level, entries[1].Level, entries[2].Level, entries[3].Level}
	assert.Equal(t, []int{0, 0, 1, 1}, levels)

	rec = do(t, h, http.MethodGet, "/approvals/replenishment/REP-2099-999/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec, &entries)
	assert.Equal(t, "[]", strings.TrimSpace(string(env.Data)))
}

func TestBadges(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/badges/machine-status/running", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var b badge.Badge
	decode(t, rec, &b)
	assert.Equal(t, "Running", b.Label)
	assert.Equal(t, "bg-green-100 text-green-800", b.Class)

	rec = do(t, h, http.MethodGet, "/badges/machine-status/Running", "")
	decode(t, rec, &b)
	assert.Equal(t, badge.Neutral, b.Class)

	rec = do(t, h, http.MethodGet, "/badges/machine-status/%C3%A9tat_arr%C3%AAt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &b)
	assert.Equal(t, "État Arrêt", b.Label)
	assert.Equal(t, badge.Neutral, b.Class)

	rec = do(t, h, http.MethodGet, "/badges/colours/red", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobsRejectSecondSubmissionWhileBusy(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/jobs/export", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	var job service.Job
	decode(t, rec, &job)
	assert.Equal(t, service.JobRunning, job.Status)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "manager@erp.local", job.RequestedBy)

	rec = do(t, h, http.MethodPost, "/jobs/import", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/jobs/reindex", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/jobs/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var st service.ProcessorStatus
	decode(t, rec, &st)
	assert.True(t, st.Processing)
	require.NotNil(t, st.Last)
	assert.Equal(t, job.ID, st.Last.ID)
}

func TestToggleRule(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/assignment-rules/ar3/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rule struct {
		Enabled bool `json:"enabled"`
	}
	decode(t, rec, &rule)
	assert.True(t, rule.Enabled)

	rec = do(t, h, http.MethodPost, "/assignment-rules/ar99/toggle", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditsRecordTheSignedInAccount(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/edits", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var edits []repository.Edit
	decode(t, rec, &edits)
	assert.Empty(t, edits)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/assignment-rules/ar3/toggle", "").Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPut, "/replenishment/r1/status", `{"status":"ordered"}`).Code)

	decode(t, do(t, h, http.MethodGet, "/edits", ""), &edits)
	require.Len(t, edits, 2)
	assert.Equal(t, repository.EntityReplenishment, edits[0].Entity)
	assert.Equal(t, "ordered", edits[0].Value)
	assert.Equal(t, repository.EntityAssignmentRules, edits[1].Entity)
	for _, e := range edits {
		assert.Equal(t, "manager@erp.local", e.By)
		assert.False(t, e.At.IsZero())
	}
}

func TestEditsNeedASignedInAccount(t *testing.T) {
	h := newTestRouterAs(t, nil)

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodPost, "/assignment-rules/ar3/toggle", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodPut, "/replenishment/r1/status", `{"status":"ordered"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodPost, "/jobs/export", "").Code)

	var edits []repository.Edit
	decode(t, do(t, h, http.MethodGet, "/edits", ""), &edits)
	assert.Empty(t, edits)
}

func TestSetReplenishmentStatus(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPut, "/replenishment/r1/status", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var item struct {
		Status string `json:"status"`
	}
	decode(t, rec, &item)
	assert.Equal(t, "approved", item.Status)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, "/replenishment/r1/status", `{"status":"archived"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, "/replenishment/r1/status", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, "/replenishment/r1/status", `not json`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/replenishment/r404/status", `{"status":"approved"}`).Code)

	rec = do(t, h, http.MethodGet, "/views/replenishment?filter.status=approved", "")
	var res views.Result
	decode(t, rec, &res)
	assert.Equal(t, 3, res.Matched)
}

func TestImportTemplateParses(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/replenishment/import-template", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "replenishment_import_template.csv")

	rows, err := service.ParseReplenishmentImport(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
}

type downStore struct{}

func (downStore) Health(context.Context) error { return errors.New("connection refused") }

func TestHealthReportsDegradedStore(t *testing.T) {
	r := chi.NewRouter()
	HealthHandler{DB: downStore{}, DataSource: "postgres"}.RegisterRoutes(r)

	rec := do(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "postgres", body["dataSource"])
}

func TestHealthAndDocs(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["dataSource"])

	rec = do(t, h, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "openapi: 3.0.3"))

	rec = do(t, h, http.MethodGet, "/docs", "")
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}
