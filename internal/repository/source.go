package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"erpviews-backend/internal/db"
)

// Source is a read-only record array for one entity type.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// FixtureSource serves records from a static fixture accessor.
type FixtureSource[T any] struct {
	Load func() []T
}

func (s FixtureSource[T]) List(context.Context) ([]T, error) {
	return s.Load(), nil
}

// PostgresSource decodes one entity's JSONB payloads from fixture_records,
// in their seeded order.
type PostgresSource[T any] struct {
	DB     *db.Postgres
	Entity string
}

func (s PostgresSource[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.DB.Pool.Query(ctx, `
		SELECT payload
		FROM fixture_records
		WHERE entity=$1
		ORDER BY position ASC
	`, s.Entity)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Entity, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var item T
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", s.Entity, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
