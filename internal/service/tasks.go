package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"erpviews-backend/internal/fixtures"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/views"
)

// PageExporter is the part of the view registry the export job needs.
type PageExporter interface {
	List() []views.Meta
	Export(ctx context.Context, key string, req views.Request) (views.Export, error)
}

// DefaultTasks binds each job kind to its work. Export renders every page,
// import validates the replenishment template and apply-permissions checks
// that every seeded account resolves.
func DefaultTasks(pages PageExporter, users repository.UserStore) map[JobKind]Task {
	return map[JobKind]Task{
		JobExport: func(ctx context.Context) (int, error) {
			rows := 0
			for _, m := range pages.List() {
				exp, err := pages.Export(ctx, m.Key, views.Request{})
				if err != nil {
					return rows, fmt.Errorf("export %s: %w", m.Key, err)
				}
				rows += len(exp.Rows)
			}
			return rows, nil
		},
		JobImport: func(ctx context.Context) (int, error) {
			data, err := ReplenishmentTemplate()
			if err != nil {
				return 0, err
			}
			return ParseReplenishmentImport(bytes.NewReader(data))
		},
		JobApplyPermissions: func(ctx context.Context) (int, error) {
			applied := 0
			for _, seed := range fixtures.SeedUsers() {
				u, err := users.GetByEmail(ctx, seed.Email)
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				if err != nil {
					return applied, err
				}
				if u.Role != seed.Role {
					return applied, fmt.Errorf("%s has role %s, want %s", u.Email, u.Role, seed.Role)
				}
				applied++
			}
			return applied, nil
		},
	}
}
