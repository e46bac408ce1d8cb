package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpviews-backend/internal/config"
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/fixtures"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/views"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	svc := AuthService{
		Config: config.Config{
			JWTSecret:       "test-secret",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
		},
		Users:  repository.NewMemoryUserRepository(),
		Logger: quietLogger(),
	}
	n, err := svc.SeedAccounts(context.Background(), fixtures.SeedUsers(), "pw-123")
	require.NoError(t, err)
	require.Equal(t, len(fixtures.SeedUsers()), n)
	return svc
}

func TestLoginAndRefresh(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, LoginInput{Email: "admin@erp.local", Password: "pw-123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.User.Role)
	assert.NotEmpty(t, res.AccessToken)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "access", claims["token_type"])
	assert.Equal(t, "admin", claims["role"])

	refreshed, err := svc.Refresh(ctx, RefreshInput{RefreshToken: res.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, refreshed.User.ID)

	_, err = svc.Refresh(ctx, RefreshInput{RefreshToken: res.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginInput{Email: "admin@erp.local", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, LoginInput{Email: "ghost@erp.local", Password: "pw-123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeedAccountsIsIdempotent(t *testing.T) {
	svc := newAuthService(t)
	n, err := svc.SeedAccounts(context.Background(), fixtures.SeedUsers(), "other")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGoogleLoginNeedsVerifier(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.LoginWithGoogle(context.Background(), GoogleLoginInput{IDToken: "x", Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrGoogleDisabled)
}

func TestReorderSuggestionsAtOrBelowROPByPriority(t *testing.T) {
	svc := InventoryService{Suggestions: repository.FixtureSource[domain.ReorderSuggestion]{Load: fixtures.ReorderSuggestions}}
	got, err := svc.GetReorderSuggestions(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, s := range got {
		assert.LessOrEqual(t, s.CurrentStock, s.ReorderPoint)
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"sug-1", "sug-2", "sug-6", "sug-3", "sug-4"}, ids)
}

func TestApprovalHistoryOrderedByLevelThenDate(t *testing.T) {
	svc := ApprovalService{Entries: repository.FixtureSource[domain.ApprovalEntry]{Load: fixtures.ApprovalEntries}}
	got, err := svc.GetHistory(context.Background(), "REP-2024-001", "replenishment")
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, 0, got[0].Level)
	assert.Equal(t, "2024-01-15 09:15", got[0].Date.Format("2006-01-02 15:04"))
	assert.Equal(t, 0, got[1].Level)
	assert.Equal(t, domain.ApprovalReturned, got[2].Action)
	assert.Equal(t, domain.ApprovalPending, got[3].Action)

	none, err := svc.GetHistory(context.Background(), "REP-2024-001", "purchase_order")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProcessorRejectsWhileBusy(t *testing.T) {
	release := make(chan struct{})
	p := &Processor{
		Delay:  time.Millisecond,
		Logger: quietLogger(),
		Tasks: map[JobKind]Task{
			JobExport: func(context.Context) (int, error) {
				<-release
				return 11, nil
			},
		},
	}

	job, err := p.Submit(JobExport, "manager@erp.local")
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "manager@erp.local", job.RequestedBy)
	assert.True(t, p.Status().Processing)

	_, err = p.Submit(JobImport, "manager@erp.local")
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	assert.Eventually(t, func() bool { return !p.Status().Processing }, time.Second, 5*time.Millisecond)

	st := p.Status()
	require.NotNil(t, st.Last)
	assert.Equal(t, job.ID, st.Last.ID)
	assert.Equal(t, JobCompleted, st.Last.Status)
	assert.Equal(t, 11, st.Last.Items)
	assert.Equal(t, "manager@erp.local", st.Last.RequestedBy)
}

func TestProcessorRecordsFailureAndFreesSlot(t *testing.T) {
	p := &Processor{
		Logger: quietLogger(),
		Tasks: map[JobKind]Task{
			JobImport: func(context.Context) (int, error) { return 0, errors.New("bad row") },
		},
	}
	_, err := p.Submit(JobImport, "manager@erp.local")
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return !p.Status().Processing }, time.Second, 5*time.Millisecond)
	assert.Equal(t, JobFailed, p.Status().Last.Status)
	assert.Equal(t, "bad row", p.Status().Last.Error)

	_, err = p.Submit(JobApplyPermissions, "admin@erp.local")
	assert.NoError(t, err)

	_, err = p.Submit("reindex", "admin@erp.local")
	assert.ErrorIs(t, err, ErrUnknownJobKind)
}

func TestDefaultTasks(t *testing.T) {
	ctx := context.Background()
	reg := views.NewRegistry(repository.FixtureSources(), repository.NewOverlay(), views.Options{})
	svc := newAuthService(t)
	tasks := DefaultTasks(reg, svc.Users)

	rows, err := tasks[JobExport](ctx)
	require.NoError(t, err)
	assert.Equal(t, 73, rows)

	rows, err = tasks[JobImport](ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	rows, err = tasks[JobApplyPermissions](ctx)
	require.NoError(t, err)
	assert.Equal(t, len(fixtures.SeedUsers()), rows)

	rows, err = DefaultTasks(reg, repository.NewMemoryUserRepository())[JobApplyPermissions](ctx)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
