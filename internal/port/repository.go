package port

import (
	"context"

	"github.com/google/uuid"

	"pulsar/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
}

// ChallengeRepository defines the contract for challenge persistence.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *domain.Challenge) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error)
	List(ctx context.Context, status *domain.ChallengeStatus, offset, limit int) ([]domain.Challenge, int, error)
	Update(ctx context.Context, challenge *domain.Challenge) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubmissionFilters narrows gallery listings.
type SubmissionFilters struct {
	ContentType *domain.ContentType
	Status      *domain.SubmissionStatus
	Tag         string
}

// SubmissionRepository defines the contract for submission persistence.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	ListByChallenge(ctx context.Context, challengeID uuid.UUID, filters *SubmissionFilters, offset, limit int) ([]domain.Submission, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Submission, int, error)
	Update(ctx context.Context, sub *domain.Submission) error
	UpdateValidation(ctx context.Context, sub *domain.Submission) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VoteRepository defines the contract for vote persistence.
type VoteRepository interface {
	Upsert(ctx context.Context, vote *domain.Vote) error
	Delete(ctx context.Context, submissionID, userID uuid.UUID) error
	CountBySubmission(ctx context.Context, submissionID uuid.UUID) (int, error)
	CountsByChallenge(ctx context.Context, challengeID uuid.UUID) (map[uuid.UUID]int, error)
}

// RuleCatalog supplies the validation engine's per-challenge configuration.
// Implementations return (nil, nil) for challenges with no configuration;
// the engine skips the challenge-specific phase for those.
type RuleCatalog interface {
	ChallengeConfig(ctx context.Context, challengeID string) (*domain.ChallengeValidationConfig, error)
}

// ValidationRuleRepository manages the persisted rule catalog entries.
type ValidationRuleRepository interface {
	CreateRule(ctx context.Context, rule *domain.ChallengeValidationRule) error
	ListRules(ctx context.Context, challengeID uuid.UUID) ([]domain.ChallengeValidationRule, error)
	DeleteRule(ctx context.Context, id uuid.UUID) error
	CreateRequirement(ctx context.Context, req *domain.ContentRequirement) error
	ListRequirements(ctx context.Context, challengeID uuid.UUID) ([]domain.ContentRequirement, error)
	DeleteRequirement(ctx context.Context, id uuid.UUID) error
}

// LeaderboardRepository computes ranked standings for a challenge.
type LeaderboardRepository interface {
	Standings(ctx context.Context, challengeID uuid.UUID) ([]domain.LeaderboardEntry, error)
}
