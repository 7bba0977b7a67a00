package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

// MockUserRepo is a mock implementation of port.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Int(1), args.Error(2)
}

// MockChallengeRepo is a mock implementation of port.ChallengeRepository.
type MockChallengeRepo struct {
	mock.Mock
}

func (m *MockChallengeRepo) Create(ctx context.Context, challenge *domain.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockChallengeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *MockChallengeRepo) List(ctx context.Context, status *domain.ChallengeStatus, offset, limit int) ([]domain.Challenge, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Challenge), args.Int(1), args.Error(2)
}

func (m *MockChallengeRepo) Update(ctx context.Context, challenge *domain.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockChallengeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSubmissionRepo is a mock implementation of port.SubmissionRepository.
type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) Create(ctx context.Context, sub *domain.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *MockSubmissionRepo) ListByChallenge(ctx context.Context, challengeID uuid.UUID, filters *port.SubmissionFilters, offset, limit int) ([]domain.Submission, int, error) {
	args := m.Called(ctx, challengeID, filters, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Submission), args.Int(1), args.Error(2)
}

func (m *MockSubmissionRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Submission, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Submission), args.Int(1), args.Error(2)
}

func (m *MockSubmissionRepo) Update(ctx context.Context, sub *domain.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubmissionRepo) UpdateValidation(ctx context.Context, sub *domain.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubmissionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVoteRepo is a mock implementation of port.VoteRepository.
type MockVoteRepo struct {
	mock.Mock
}

func (m *MockVoteRepo) Upsert(ctx context.Context, vote *domain.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepo) Delete(ctx context.Context, submissionID, userID uuid.UUID) error {
	args := m.Called(ctx, submissionID, userID)
	return args.Error(0)
}

func (m *MockVoteRepo) CountBySubmission(ctx context.Context, submissionID uuid.UUID) (int, error) {
	args := m.Called(ctx, submissionID)
	return args.Int(0), args.Error(1)
}

func (m *MockVoteRepo) CountsByChallenge(ctx context.Context, challengeID uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

// MockValidationRuleRepo is a mock implementation of port.ValidationRuleRepository.
type MockValidationRuleRepo struct {
	mock.Mock
}

func (m *MockValidationRuleRepo) CreateRule(ctx context.Context, rule *domain.ChallengeValidationRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockValidationRuleRepo) ListRules(ctx context.Context, challengeID uuid.UUID) ([]domain.ChallengeValidationRule, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChallengeValidationRule), args.Error(1)
}

func (m *MockValidationRuleRepo) DeleteRule(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockValidationRuleRepo) CreateRequirement(ctx context.Context, req *domain.ContentRequirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockValidationRuleRepo) ListRequirements(ctx context.Context, challengeID uuid.UUID) ([]domain.ContentRequirement, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContentRequirement), args.Error(1)
}

func (m *MockValidationRuleRepo) DeleteRequirement(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLeaderboardRepo is a mock implementation of port.LeaderboardRepository.
type MockLeaderboardRepo struct {
	mock.Mock
}

func (m *MockLeaderboardRepo) Standings(ctx context.Context, challengeID uuid.UUID) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// MockRuleCatalog is a mock implementation of port.RuleCatalog.
type MockRuleCatalog struct {
	mock.Mock
}

func (m *MockRuleCatalog) ChallengeConfig(ctx context.Context, challengeID string) (*domain.ChallengeValidationConfig, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChallengeValidationConfig), args.Error(1)
}
