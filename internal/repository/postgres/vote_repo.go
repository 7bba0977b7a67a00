package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

type voteRepo struct {
	db *sqlx.DB
}

// NewVoteRepo creates a new PostgreSQL-backed VoteRepository.
func NewVoteRepo(db *sqlx.DB) port.VoteRepository {
	return &voteRepo{db: db}
}

func (r *voteRepo) Upsert(ctx context.Context, vote *domain.Vote) error {
	vote.CreatedAt = time.Now().UTC()

	query := `INSERT INTO votes (id, submission_id, challenge_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (submission_id, user_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		vote.ID, vote.SubmissionID, vote.ChallengeID, vote.UserID, vote.CreatedAt)
	if err != nil {
		return fmt.Errorf("voteRepo.Upsert: %w", err)
	}
	return nil
}

func (r *voteRepo) Delete(ctx context.Context, submissionID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM votes WHERE submission_id = $1 AND user_id = $2", submissionID, userID)
	if err != nil {
		return fmt.Errorf("voteRepo.Delete: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrVoteNotFound
	}
	return nil
}

func (r *voteRepo) CountBySubmission(ctx context.Context, submissionID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM votes WHERE submission_id = $1", submissionID)
	if err != nil {
		return 0, fmt.Errorf("voteRepo.CountBySubmission: %w", err)
	}
	return count, nil
}

func (r *voteRepo) CountsByChallenge(ctx context.Context, challengeID uuid.UUID) (map[uuid.UUID]int, error) {
	rows, err := r.db.QueryxContext(ctx,
		"SELECT submission_id, COUNT(*) FROM votes WHERE challenge_id = $1 GROUP BY submission_id",
		challengeID)
	if err != nil {
		return nil, fmt.Errorf("voteRepo.CountsByChallenge: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			submissionID uuid.UUID
			count        int
		)
		if err := rows.Scan(&submissionID, &count); err != nil {
			return nil, fmt.Errorf("voteRepo.CountsByChallenge scan: %w", err)
		}
		counts[submissionID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("voteRepo.CountsByChallenge rows: %w", err)
	}
	return counts, nil
}
