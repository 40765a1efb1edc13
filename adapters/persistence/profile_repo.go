package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = `id, first_name, last_name, email, linkedin_url,
	icp, icp_pain_points, unique_value, proof_points, energizing_topics, decision_makers,
	content_strategy, content_pillars, linkedin_prompts, brand_analysis,
	created_at, updated_at`

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	var pillarsBytes, promptsBytes, brandBytes []byte

	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.LinkedInURL,
		&p.ICP,
		&p.ICPPainPoints,
		&p.UniqueValue,
		&p.ProofPoints,
		&p.EnergizingTopics,
		&p.DecisionMakers,
		&p.ContentStrategy,
		&pillarsBytes,
		&promptsBytes,
		&brandBytes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to scan profile row: %w", err)
	}

	if err := json.Unmarshal(pillarsBytes, &p.ContentPillars); err != nil {
		r.logger.Warn("Failed to unmarshal content_pillars", zap.String("profile_id", p.ID), zap.Error(err))
		p.ContentPillars = []string{}
	}
	if err := json.Unmarshal(promptsBytes, &p.LinkedInPrompts); err != nil {
		r.logger.Warn("Failed to unmarshal linkedin_prompts", zap.String("profile_id", p.ID), zap.Error(err))
		p.LinkedInPrompts = []profile.PostPrompt{}
	}
	if len(brandBytes) > 0 {
		var ba profile.BrandAnalysis
		if err := json.Unmarshal(brandBytes, &ba); err != nil {
			r.logger.Warn("Failed to unmarshal brand_analysis", zap.String("profile_id", p.ID), zap.Error(err))
		} else {
			p.BrandAnalysis = &ba
		}
	}

	return p, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	pillarsBytes, err := json.Marshal(p.ContentPillars)
	if err != nil {
		return fmt.Errorf("failed to marshal content_pillars: %w", err)
	}
	promptsBytes, err := json.Marshal(p.LinkedInPrompts)
	if err != nil {
		return fmt.Errorf("failed to marshal linkedin_prompts: %w", err)
	}

	query := `
		INSERT INTO profiles (id, first_name, last_name, email, linkedin_url,
			icp, icp_pain_points, unique_value, proof_points, energizing_topics, decision_makers,
			content_strategy, content_pillars, linkedin_prompts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Email, p.LinkedInURL,
		p.ICP, p.ICPPainPoints, p.UniqueValue, p.ProofPoints, p.EnergizingTopics, p.DecisionMakers,
		p.ContentStrategy, pillarsBytes, promptsBytes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("profile", "id", p.ID)
		}
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id string) (*profile.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)
	row := r.db.QueryRow(ctx, query, id)
	return r.scanProfile(row)
}

func (r *postgresProfileRepo) List(ctx context.Context) ([]profile.Summary, error) {
	builder := psql.Select("id", "first_name", "last_name", "email", "updated_at").
		From("profiles").
		OrderBy("created_at DESC")

	sql, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	summaries := make([]profile.Summary, 0)
	for rows.Next() {
		var s profile.Summary
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}
	return summaries, nil
}

// Update writes only the columns named by the update struct. updated_at is
// always refreshed; everything else on the row stays untouched.
func (r *postgresProfileRepo) Update(ctx context.Context, id string, upd profile.Update) error {
	if upd.IsEmpty() {
		return nil
	}

	builder := psql.Update("profiles").Set("updated_at", sq.Expr("NOW()"))

	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
	}
	if upd.LinkedInURL != nil {
		builder = builder.Set("linkedin_url", *upd.LinkedInURL)
	}
	if upd.ICP != nil {
		builder = builder.Set("icp", *upd.ICP)
	}
	if upd.ICPPainPoints != nil {
		builder = builder.Set("icp_pain_points", *upd.ICPPainPoints)
	}
	if upd.UniqueValue != nil {
		builder = builder.Set("unique_value", *upd.UniqueValue)
	}
	if upd.ProofPoints != nil {
		builder = builder.Set("proof_points", *upd.ProofPoints)
	}
	if upd.EnergizingTopics != nil {
		builder = builder.Set("energizing_topics", *upd.EnergizingTopics)
	}
	if upd.DecisionMakers != nil {
		builder = builder.Set("decision_makers", *upd.DecisionMakers)
	}
	if upd.ContentStrategy != nil {
		builder = builder.Set("content_strategy", *upd.ContentStrategy)
	}
	if upd.ContentPillars != nil {
		b, err := json.Marshal(*upd.ContentPillars)
		if err != nil {
			return fmt.Errorf("failed to marshal content_pillars for update: %w", err)
		}
		builder = builder.Set("content_pillars", b)
	}
	if upd.LinkedInPrompts != nil {
		b, err := json.Marshal(*upd.LinkedInPrompts)
		if err != nil {
			return fmt.Errorf("failed to marshal linkedin_prompts for update: %w", err)
		}
		builder = builder.Set("linkedin_prompts", b)
	}
	if upd.BrandAnalysis != nil {
		b, err := json.Marshal(upd.BrandAnalysis)
		if err != nil {
			return fmt.Errorf("failed to marshal brand_analysis for update: %w", err)
		}
		builder = builder.Set("brand_analysis", b)
	}

	sql, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build profile update: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}
