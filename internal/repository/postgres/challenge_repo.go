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

type challengeRepo struct {
	db *sqlx.DB
}

// NewChallengeRepo creates a new PostgreSQL-backed ChallengeRepository.
func NewChallengeRepo(db *sqlx.DB) port.ChallengeRepository {
	return &challengeRepo{db: db}
}

func (r *challengeRepo) Create(ctx context.Context, challenge *domain.Challenge) error {
	now := time.Now().UTC()
	challenge.CreatedAt = now
	challenge.UpdatedAt = now

	query := `INSERT INTO challenges (
		id, title, description, theme, status, minimum_score, winner_id,
		starts_at, ends_at, created_by, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		challenge.ID, challenge.Title, challenge.Description, challenge.Theme,
		challenge.Status, challenge.MinimumScore, challenge.WinnerID,
		challenge.StartsAt, challenge.EndsAt, challenge.CreatedBy,
		challenge.CreatedAt, challenge.UpdatedAt)
	if err != nil {
		return fmt.Errorf("challengeRepo.Create: %w", err)
	}
	return nil
}

func (r *challengeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	var challenge domain.Challenge
	err := r.db.GetContext(ctx, &challenge, "SELECT * FROM challenges WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("challengeRepo.GetByID: %w", err)
	}
	return &challenge, nil
}

func (r *challengeRepo) List(ctx context.Context, status *domain.ChallengeStatus, offset, limit int) ([]domain.Challenge, int, error) {
	var (
		total      int
		challenges []domain.Challenge
		err        error
	)

	if status != nil {
		err = r.db.GetContext(ctx, &total,
			"SELECT COUNT(*) FROM challenges WHERE status = $1", *status)
		if err != nil {
			return nil, 0, fmt.Errorf("challengeRepo.List count: %w", err)
		}
		err = r.db.SelectContext(ctx, &challenges,
			"SELECT * FROM challenges WHERE status = $1 ORDER BY starts_at DESC OFFSET $2 LIMIT $3",
			*status, offset, limit)
	} else {
		err = r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM challenges")
		if err != nil {
			return nil, 0, fmt.Errorf("challengeRepo.List count: %w", err)
		}
		err = r.db.SelectContext(ctx, &challenges,
			"SELECT * FROM challenges ORDER BY starts_at DESC OFFSET $1 LIMIT $2", offset, limit)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("challengeRepo.List: %w", err)
	}
	return challenges, total, nil
}

func (r *challengeRepo) Update(ctx context.Context, challenge *domain.Challenge) error {
	challenge.UpdatedAt = time.Now().UTC()

	query := `UPDATE challenges SET
		title = $2, description = $3, theme = $4, status = $5,
		minimum_score = $6, winner_id = $7, starts_at = $8, ends_at = $9,
		updated_at = $10
	WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		challenge.ID, challenge.Title, challenge.Description, challenge.Theme,
		challenge.Status, challenge.MinimumScore, challenge.WinnerID,
		challenge.StartsAt, challenge.EndsAt, challenge.UpdatedAt)
	if err != nil {
		return fmt.Errorf("challengeRepo.Update: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrChallengeNotFound
	}
	return nil
}

func (r *challengeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM challenges WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("challengeRepo.Delete: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrChallengeNotFound
	}
	return nil
}
