package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

type submissionRepo struct {
	db *sqlx.DB
}

// NewSubmissionRepo creates a new PostgreSQL-backed SubmissionRepository.
func NewSubmissionRepo(db *sqlx.DB) port.SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(ctx context.Context, sub *domain.Submission) error {
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	query := `INSERT INTO submissions (
		id, challenge_id, user_id, content_type, title, description,
		content_key, metadata, tags, custom_fields, status,
		validation_score, validation_results, submitted_at, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.ChallengeID, sub.UserID, sub.ContentType, sub.Title,
		sub.Description, sub.ContentKey, sub.Metadata, sub.Tags,
		sub.CustomFields, sub.Status, sub.ValidationScore,
		sub.ValidationResults, sub.SubmittedAt, sub.CreatedAt, sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("submissionRepo.Create: %w", err)
	}
	return nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	var sub domain.Submission
	err := r.db.GetContext(ctx, &sub, "SELECT * FROM submissions WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("submissionRepo.GetByID: %w", err)
	}
	return &sub, nil
}

func (r *submissionRepo) ListByChallenge(ctx context.Context, challengeID uuid.UUID, filters *port.SubmissionFilters, offset, limit int) ([]domain.Submission, int, error) {
	where := []string{"challenge_id = $1"}
	args := []interface{}{challengeID}

	if filters != nil {
		if filters.ContentType != nil {
			args = append(args, *filters.ContentType)
			where = append(where, "content_type = $"+strconv.Itoa(len(args)))
		}
		if filters.Status != nil {
			args = append(args, *filters.Status)
			where = append(where, "status = $"+strconv.Itoa(len(args)))
		}
		if filters.Tag != "" {
			args = append(args, fmt.Sprintf(`["%s"]`, filters.Tag))
			where = append(where, "tags @> $"+strconv.Itoa(len(args)))
		}
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM submissions WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("submissionRepo.ListByChallenge count: %w", err)
	}

	args = append(args, offset, limit)
	query := fmt.Sprintf(
		"SELECT * FROM submissions WHERE %s ORDER BY created_at DESC OFFSET $%d LIMIT $%d",
		cond, len(args)-1, len(args))

	var subs []domain.Submission
	if err := r.db.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("submissionRepo.ListByChallenge: %w", err)
	}
	return subs, total, nil
}

func (r *submissionRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Submission, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM submissions WHERE user_id = $1", userID); err != nil {
		return nil, 0, fmt.Errorf("submissionRepo.ListByUser count: %w", err)
	}

	var subs []domain.Submission
	err := r.db.SelectContext(ctx, &subs,
		"SELECT * FROM submissions WHERE user_id = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3",
		userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("submissionRepo.ListByUser: %w", err)
	}
	return subs, total, nil
}

func (r *submissionRepo) Update(ctx context.Context, sub *domain.Submission) error {
	sub.UpdatedAt = time.Now().UTC()

	query := `UPDATE submissions SET
		content_type = $2, title = $3, description = $4, content_key = $5,
		metadata = $6, tags = $7, custom_fields = $8, status = $9,
		submitted_at = $10, updated_at = $11
	WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.ContentType, sub.Title, sub.Description, sub.ContentKey,
		sub.Metadata, sub.Tags, sub.CustomFields, sub.Status,
		sub.SubmittedAt, sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("submissionRepo.Update: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

func (r *submissionRepo) UpdateValidation(ctx context.Context, sub *domain.Submission) error {
	sub.UpdatedAt = time.Now().UTC()

	query := `UPDATE submissions SET
		status = $2, validation_score = $3, validation_results = $4,
		submitted_at = $5, updated_at = $6
	WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.Status, sub.ValidationScore, sub.ValidationResults,
		sub.SubmittedAt, sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("submissionRepo.UpdateValidation: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

func (r *submissionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM submissions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("submissionRepo.Delete: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}
