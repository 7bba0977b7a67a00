package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

// RuleCatalogRepo persists challenge validation rules and content
// requirements, and assembles them into the engine's catalog view. It
// implements both port.ValidationRuleRepository and port.RuleCatalog.
type RuleCatalogRepo struct {
	db *sqlx.DB
}

// NewRuleCatalogRepo creates a new PostgreSQL-backed rule catalog.
func NewRuleCatalogRepo(db *sqlx.DB) *RuleCatalogRepo {
	return &RuleCatalogRepo{db: db}
}

var (
	_ port.ValidationRuleRepository = (*RuleCatalogRepo)(nil)
	_ port.RuleCatalog              = (*RuleCatalogRepo)(nil)
)

// ChallengeConfig assembles the validation configuration for a challenge.
// Challenges with no rules and no requirements are unconfigured: (nil, nil).
func (r *RuleCatalogRepo) ChallengeConfig(ctx context.Context, challengeID string) (*domain.ChallengeValidationConfig, error) {
	id, err := uuid.Parse(challengeID)
	if err != nil {
		return nil, nil
	}

	rules, err := r.ListRules(ctx, id)
	if err != nil {
		return nil, err
	}
	reqs, err := r.ListRequirements(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 && len(reqs) == 0 {
		return nil, nil
	}

	var minimumScore int
	err = r.db.GetContext(ctx, &minimumScore,
		"SELECT minimum_score FROM challenges WHERE id = $1", id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("RuleCatalogRepo.ChallengeConfig: %w", err)
	}

	return &domain.ChallengeValidationConfig{
		ChallengeID:  id,
		Rules:        rules,
		Requirements: reqs,
		MinimumScore: minimumScore,
	}, nil
}

func (r *RuleCatalogRepo) CreateRule(ctx context.Context, rule *domain.ChallengeValidationRule) error {
	now := time.Now().UTC()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	query := `INSERT INTO challenge_validation_rules (
		id, challenge_id, field, rule_type, rule_config, message, severity,
		is_active, created_by, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		rule.ID, rule.ChallengeID, rule.Field, rule.RuleType, rule.RuleConfig,
		rule.Message, rule.Severity, rule.IsActive, rule.CreatedBy,
		rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("RuleCatalogRepo.CreateRule: %w", err)
	}
	return nil
}

func (r *RuleCatalogRepo) ListRules(ctx context.Context, challengeID uuid.UUID) ([]domain.ChallengeValidationRule, error) {
	var rules []domain.ChallengeValidationRule
	err := r.db.SelectContext(ctx, &rules,
		`SELECT * FROM challenge_validation_rules
		 WHERE challenge_id = $1 AND is_active = TRUE
		 ORDER BY field, created_at`,
		challengeID)
	if err != nil {
		return nil, fmt.Errorf("RuleCatalogRepo.ListRules: %w", err)
	}
	return rules, nil
}

func (r *RuleCatalogRepo) DeleteRule(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM challenge_validation_rules WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("RuleCatalogRepo.DeleteRule: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}

func (r *RuleCatalogRepo) CreateRequirement(ctx context.Context, req *domain.ContentRequirement) error {
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `INSERT INTO content_requirements (
		id, challenge_id, applies_to_type, allowed_formats, max_size_bytes,
		min_resolution, max_duration_seconds, required_fields, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.ChallengeID, req.AppliesToType, req.AllowedFormats,
		req.MaxSizeBytes, req.MinResolution, req.MaxDurationSeconds,
		req.RequiredFields, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("RuleCatalogRepo.CreateRequirement: %w", err)
	}
	return nil
}

func (r *RuleCatalogRepo) ListRequirements(ctx context.Context, challengeID uuid.UUID) ([]domain.ContentRequirement, error) {
	var reqs []domain.ContentRequirement
	err := r.db.SelectContext(ctx, &reqs,
		`SELECT * FROM content_requirements
		 WHERE challenge_id = $1
		 ORDER BY applies_to_type, created_at`,
		challengeID)
	if err != nil {
		return nil, fmt.Errorf("RuleCatalogRepo.ListRequirements: %w", err)
	}
	return reqs, nil
}

func (r *RuleCatalogRepo) DeleteRequirement(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM content_requirements WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("RuleCatalogRepo.DeleteRequirement: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}
