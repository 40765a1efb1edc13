package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mylance/content-engine/internal/domain/activity"
)

type postgresActivityRepo struct {
	db *pgxpool.Pool
}

func NewPostgresActivityRepo(db *pgxpool.Pool) activity.Repository {
	return &postgresActivityRepo{db: db}
}

func (r *postgresActivityRepo) Append(ctx context.Context, e *activity.Entry) error {
	detailBytes, err := json.Marshal(e.Detail)
	if err != nil {
		return fmt.Errorf("failed to marshal activity detail: %w", err)
	}

	query := `
		INSERT INTO activity_log (id, event_type, profile_id, detail, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, e.ID, e.EventType, e.ProfileID, detailBytes, e.OccurredAt); err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}
	return nil
}

func (r *postgresActivityRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]activity.Entry, error) {
	builder := psql.Select("id", "event_type", "profile_id", "detail", "occurred_at").
		From("activity_log").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("occurred_at DESC").
		Limit(uint64(limit))

	sql, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity log: %w", err)
	}
	defer rows.Close()

	entries := make([]activity.Entry, 0)
	for rows.Next() {
		var e activity.Entry
		var detailBytes []byte
		if err := rows.Scan(&e.ID, &e.EventType, &e.ProfileID, &detailBytes, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		if err := json.Unmarshal(detailBytes, &e.Detail); err != nil {
			e.Detail = map[string]any{}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}
	return entries, nil
}
