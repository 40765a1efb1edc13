package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mylance/content-engine/internal/domain/settings"
)

type postgresSettingsRepo struct {
	db *pgxpool.Pool
}

func NewPostgresSettingsRepo(db *pgxpool.Pool) settings.Repository {
	return &postgresSettingsRepo{db: db}
}

// Get returns "" for a key that was never written; a missing setting is not
// an error.
func (r *postgresSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM settings WHERE key = $1`
	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to query setting %q: %w", key, err)
	}
	return value, nil
}

func (r *postgresSettingsRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}
	return nil
}
