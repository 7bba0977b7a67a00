package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

type leaderboardRepo struct {
	db *sqlx.DB
}

// NewLeaderboardRepo creates a new PostgreSQL-backed LeaderboardRepository.
func NewLeaderboardRepo(db *sqlx.DB) port.LeaderboardRepository {
	return &leaderboardRepo{db: db}
}

// Standings ranks submitted entries by vote count, breaking ties with the
// validation score and then the submission time.
func (r *leaderboardRepo) Standings(ctx context.Context, challengeID uuid.UUID) ([]domain.LeaderboardEntry, error) {
	query := `SELECT
		RANK() OVER (ORDER BY COUNT(v.id) DESC, s.validation_score DESC, s.submitted_at ASC) AS rank,
		s.id AS submission_id,
		s.title,
		s.content_type,
		s.user_id,
		u.display_name,
		COUNT(v.id) AS votes,
		s.validation_score,
		s.submitted_at
	FROM submissions s
	JOIN users u ON u.id = s.user_id
	LEFT JOIN votes v ON v.submission_id = s.id
	WHERE s.challenge_id = $1 AND s.status = 'submitted'
	GROUP BY s.id, u.display_name
	ORDER BY rank, s.submitted_at ASC`

	var entries []domain.LeaderboardEntry
	if err := r.db.SelectContext(ctx, &entries, query, challengeID); err != nil {
		return nil, fmt.Errorf("leaderboardRepo.Standings: %w", err)
	}
	return entries, nil
}
