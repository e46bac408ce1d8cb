package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"erpviews-backend/internal/db"
	"erpviews-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

// UserStore is what the auth service needs from account storage.
type UserStore interface {
	Create(ctx context.Context, p CreateUserParams) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type CreateUserParams struct {
	Name         string
	Email        string
	Department   string
	Role         domain.UserRole
	PasswordHash *string
	IsGoogle     bool
}

// UserRepository stores accounts in Postgres.
type UserRepository struct {
	DB *db.Postgres
}

func (r UserRepository) Create(ctx context.Context, p CreateUserParams) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, department, role, password_hash, is_google, created_at)
		VALUES ($1,$2,$3,$4,$5,$6, now())
		RETURNING id, name, email, department, role, is_google, password_hash, created_at
	`
	row := r.DB.Pool.QueryRow(ctx, query, p.Name, strings.ToLower(p.Email), p.Department, p.Role, p.PasswordHash, p.IsGoogle)
	u, err := scanUser(row)
	if err != nil {
		if IsDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return u, nil
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, department, role, is_google, password_hash, created_at
		FROM users
		WHERE email=$1
	`
	row := r.DB.Pool.QueryRow(ctx, query, strings.ToLower(email))
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email, department, role, is_google, password_hash, created_at
		FROM users
		WHERE id=$1
	`
	row := r.DB.Pool.QueryRow(ctx, query, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Department,
		&role,
		&u.IsGoogle,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

// MemoryUserRepository keeps accounts in process memory. Restarting the
// process drops everything that was created at runtime.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byID: map[int64]domain.User{}}
}

func (r *MemoryUserRepository) Create(_ context.Context, p CreateUserParams) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(p.Email)
	for _, u := range r.byID {
		if u.Email == email {
			return nil, ErrDuplicate
		}
	}
	r.nextID++
	u := domain.User{
		ID:           r.nextID,
		Name:         p.Name,
		Email:        email,
		Department:   p.Department,
		Role:         p.Role,
		IsGoogle:     p.IsGoogle,
		PasswordHash: p.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.byID[u.ID] = u
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range r.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique key is already taken.
var ErrDuplicate = errors.New("already exists")

// IsDuplicate detects unique constraint violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate) || db.IsUniqueViolation(err)
}
