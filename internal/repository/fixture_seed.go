package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"erpviews-backend/internal/db"
	"github.com/jackc/pgx/v5"
)

// FixtureRecordRepository writes fixture arrays into fixture_records.
type FixtureRecordRepository struct {
	DB *db.Postgres
}

// SeedEntity inserts every item for the entity in one transaction. Rows that
// already exist are left alone, so reseeding never overwrites. It returns how
// many rows were inserted.
func SeedEntity[T any](ctx context.Context, r FixtureRecordRepository, entity string, items []T, id func(T) string) (int, error) {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return 0, fmt.Errorf("encode %s %s: %w", entity, id(item), err)
		}
		batch.Queue(`
			INSERT INTO fixture_records (entity, id, position, payload, created_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (entity, id) DO NOTHING
		`, entity, id(item), i, payload)
	}

	results := tx.SendBatch(ctx, batch)
	inserted := 0
	for range items {
		tag, err := results.Exec()
		if err != nil {
			results.Close()
			return 0, fmt.Errorf("seed %s: %w", entity, err)
		}
		inserted += int(tag.RowsAffected())
	}
	if err := results.Close(); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}
