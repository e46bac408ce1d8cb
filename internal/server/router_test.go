package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpviews-backend/internal/config"
	"erpviews-backend/internal/fixtures"
	"erpviews-backend/internal/handler"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/service"
	"erpviews-backend/internal/views"
)

const testPassword = "erp-demo"

func newTestServer(t *testing.T, logs io.Writer) http.Handler {
	t.Helper()
	if logs == nil {
		logs = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	cfg := config.Config{
		JWTSecret:          "router-test-secret",
		AccessTokenTTL:     time.Hour,
		RefreshTokenTTL:    24 * time.Hour,
		RateLimitPerMinute: 1000,
	}

	auth := &service.AuthService{Config: cfg, Users: repository.NewMemoryUserRepository(), Logger: logger}
	_, err := auth.SeedAccounts(context.Background(), fixtures.SeedUsers(), testPassword)
	require.NoError(t, err)

	reg := views.NewRegistry(repository.FixtureSources(), repository.NewOverlay(), views.Options{DefaultPageSize: 10, MaxPageSize: 100})
	src := reg.Sources()
	proc := &service.Processor{Delay: time.Hour, Logger: logger}

	return NewRouter(cfg, logger, Handlers{
		Health:    handler.HealthHandler{DataSource: config.DataSourceMemory},
		Auth:      handler.AuthHandler{Service: auth},
		Docs:      handler.DocsHandler{},
		Views:     handler.ViewHandler{Registry: reg},
		Inventory: handler.InventoryHandler{Service: service.InventoryService{Suggestions: src.ReorderSuggestions}, Registry: reg},
		Approvals: handler.ApprovalHandler{Service: service.ApprovalService{Entries: src.ApprovalEntries}},
		Badges:    handler.BadgeHandler{},
		Jobs:      handler.JobHandler{Processor: proc},
		Rules:     handler.RuleHandler{Registry: reg},
		Edits:     handler.EditHandler{Registry: reg},
	})
}

func request(t *testing.T, h http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type tokens struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func login(t *testing.T, h http.Handler, email string) tokens {
	t.Helper()
	rec := request(t, h, http.MethodPost, "/auth/login", "", `{"email":"`+email+`","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var env struct {
		Data tokens `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotEmpty(t, env.Data.Token)
	return env.Data
}

func TestPublicRoutes(t *testing.T) {
	h := newTestServer(t, nil)
	assert.Equal(t, http.StatusOK, request(t, h, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, request(t, h, http.MethodGet, "/openapi.yaml", "", "").Code)

	rec := request(t, h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	h := newTestServer(t, nil)

	rec := request(t, h, http.MethodGet, "/views", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var env struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "missing bearer token", env.Message)

	assert.Equal(t, http.StatusUnauthorized, request(t, h, http.MethodGet, "/views", "not-a-jwt", "").Code)

	// a refresh token is not an access token
	tk := login(t, h, "support@erp.local")
	assert.Equal(t, http.StatusUnauthorized, request(t, h, http.MethodGet, "/views", tk.RefreshToken, "").Code)
}

func TestLoginFailures(t *testing.T) {
	h := newTestServer(t, nil)
	assert.Equal(t, http.StatusUnauthorized, request(t, h, http.MethodPost, "/auth/login", "", `{"email":"admin@erp.local","password":"nope"}`).Code)
	assert.Equal(t, http.StatusBadRequest, request(t, h, http.MethodPost, "/auth/login", "", `{"email":"admin@erp.local"}`).Code)
	assert.Equal(t, http.StatusNotImplemented, request(t, h, http.MethodPost, "/auth/google", "", `{"idToken":"x","email":"a@b.c"}`).Code)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	h := newTestServer(t, nil)
	tk := login(t, h, "admin@erp.local")

	rec := request(t, h, http.MethodPost, "/auth/refresh", "", `{"refreshToken":"`+tk.RefreshToken+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Data tokens `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, http.StatusOK, request(t, h, http.MethodGet, "/views", env.Data.Token, "").Code)

	assert.Equal(t, http.StatusUnauthorized, request(t, h, http.MethodPost, "/auth/refresh", "", `{"refreshToken":"`+tk.Token+`"}`).Code)
}

func TestStaffCanReadButNotEdit(t *testing.T) {
	h := newTestServer(t, nil)
	staff := login(t, h, "support@erp.local").Token

	assert.Equal(t, http.StatusOK, request(t, h, http.MethodGet, "/views/machines?search=cnc", staff, "").Code)
	assert.Equal(t, http.StatusOK, request(t, h, http.MethodGet, "/inventory/reorder-suggestions", staff, "").Code)
	assert.Equal(t, http.StatusOK, request(t, h, http.MethodGet, "/jobs/status", staff, "").Code)

	assert.Equal(t, http.StatusForbidden, request(t, h, http.MethodPost, "/assignment-rules/ar3/toggle", staff, "").Code)
	assert.Equal(t, http.StatusForbidden, request(t, h, http.MethodPut, "/replenishment/r1/status", staff, `{"status":"approved"}`).Code)
	assert.Equal(t, http.StatusForbidden, request(t, h, http.MethodPost, "/jobs/export", staff, "").Code)
	assert.Equal(t, http.StatusForbidden, request(t, h, http.MethodGet, "/edits", staff, "").Code)
}

func TestManagerCanEdit(t *testing.T) {
	h := newTestServer(t, nil)
	manager := login(t, h, "production.manager@erp.local").Token

	assert.Equal(t, http.StatusOK, request(t, h, http.MethodPost, "/assignment-rules/ar3/toggle", manager, "").Code)
	assert.Equal(t, http.StatusOK, request(t, h, http.MethodPut, "/replenishment/r1/status", manager, `{"status":"approved"}`).Code)
	assert.Equal(t, http.StatusAccepted, request(t, h, http.MethodPost, "/jobs/export", manager, "").Code)
	assert.Equal(t, http.StatusConflict, request(t, h, http.MethodPost, "/jobs/import", manager, "").Code)

	rec := request(t, h, http.MethodGet, "/edits", manager, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var edits struct {
		Data []struct {
			ID string `json:"id"`
			By string `json:"by"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edits))
	require.Len(t, edits.Data, 2)
	assert.Equal(t, "r1", edits.Data[0].ID)
	assert.Equal(t, "ar3", edits.Data[1].ID)
	for _, e := range edits.Data {
		assert.Equal(t, "production.manager@erp.local", e.By)
	}

	rec = request(t, h, http.MethodGet, "/jobs/status", manager, "")
	var st struct {
		Data struct {
			Last struct {
				RequestedBy string `json:"requestedBy"`
			} `json:"lastJob"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "production.manager@erp.local", st.Data.Last.RequestedBy)
}

func TestRequestsAreLogged(t *testing.T) {
	var logs bytes.Buffer
	h := newTestServer(t, &logs)

	rec := request(t, h, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := logs.String()
	assert.Contains(t, out, "msg=\"http request\"")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/health")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "request_id=")
}
