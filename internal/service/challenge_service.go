package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

// CreateChallengeInput is the DTO for creating a challenge.
type CreateChallengeInput struct {
	Title        string
	Description  string
	Theme        string
	MinimumScore int
	StartsAt     time.Time
	EndsAt       time.Time
	CreatedBy    uuid.UUID
}

// UpdateChallengeInput is the DTO for editing a challenge.
type UpdateChallengeInput struct {
	Title        string
	Description  string
	Theme        string
	MinimumScore int
	StartsAt     time.Time
	EndsAt       time.Time
}

// ChallengeService defines the challenge management contract.
type ChallengeService interface {
	Create(ctx context.Context, input *CreateChallengeInput) (*domain.Challenge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error)
	List(ctx context.Context, status *domain.ChallengeStatus, offset, limit int) ([]domain.Challenge, int, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateChallengeInput) (*domain.Challenge, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ChallengeStatus) (*domain.Challenge, error)
	AddRule(ctx context.Context, rule *domain.ChallengeValidationRule) error
	ListRules(ctx context.Context, challengeID uuid.UUID) ([]domain.ChallengeValidationRule, error)
	DeleteRule(ctx context.Context, ruleID uuid.UUID) error
	AddRequirement(ctx context.Context, req *domain.ContentRequirement) error
	ListRequirements(ctx context.Context, challengeID uuid.UUID) ([]domain.ContentRequirement, error)
	DeleteRequirement(ctx context.Context, reqID uuid.UUID) error
}

// statusTransitions defines the allowed lifecycle edges.
var statusTransitions = map[domain.ChallengeStatus]domain.ChallengeStatus{
	domain.ChallengeStatusDraft:  domain.ChallengeStatusActive,
	domain.ChallengeStatusActive: domain.ChallengeStatusVoting,
	domain.ChallengeStatusVoting: domain.ChallengeStatusCompleted,
}

type challengeService struct {
	challengeRepo   port.ChallengeRepository
	submissionRepo  port.SubmissionRepository
	userRepo        port.UserRepository
	ruleRepo        port.ValidationRuleRepository
	leaderboardRepo port.LeaderboardRepository
	announcer       port.AnnouncementSender
	defaultMinScore int
	log             *zap.Logger
}

// NewChallengeService creates a new ChallengeService implementation.
func NewChallengeService(
	challengeRepo port.ChallengeRepository,
	submissionRepo port.SubmissionRepository,
	userRepo port.UserRepository,
	ruleRepo port.ValidationRuleRepository,
	leaderboardRepo port.LeaderboardRepository,
	announcer port.AnnouncementSender,
	defaultMinScore int,
	log *zap.Logger,
) ChallengeService {
	return &challengeService{
		challengeRepo:   challengeRepo,
		submissionRepo:  submissionRepo,
		userRepo:        userRepo,
		ruleRepo:        ruleRepo,
		leaderboardRepo: leaderboardRepo,
		announcer:       announcer,
		defaultMinScore: defaultMinScore,
		log:             log,
	}
}

func (s *challengeService) Create(ctx context.Context, input *CreateChallengeInput) (*domain.Challenge, error) {
	minScore := input.MinimumScore
	if minScore <= 0 {
		minScore = s.defaultMinScore
	}

	challenge := &domain.Challenge{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Theme:        input.Theme,
		Status:       domain.ChallengeStatusDraft,
		MinimumScore: minScore,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		CreatedBy:    input.CreatedBy,
	}
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("challenge.Create: %w", err)
	}
	return challenge, nil
}

func (s *challengeService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	return s.challengeRepo.GetByID(ctx, id)
}

func (s *challengeService) List(ctx context.Context, status *domain.ChallengeStatus, offset, limit int) ([]domain.Challenge, int, error) {
	return s.challengeRepo.List(ctx, status, offset, limit)
}

func (s *challengeService) Update(ctx context.Context, id uuid.UUID, input *UpdateChallengeInput) (*domain.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if challenge.Status == domain.ChallengeStatusCompleted {
		return nil, domain.ErrChallengeCompleted
	}

	challenge.Title = input.Title
	challenge.Description = input.Description
	challenge.Theme = input.Theme
	if input.MinimumScore > 0 {
		challenge.MinimumScore = input.MinimumScore
	}
	challenge.StartsAt = input.StartsAt
	challenge.EndsAt = input.EndsAt

	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, fmt.Errorf("challenge.Update: %w", err)
	}
	return challenge, nil
}

func (s *challengeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.challengeRepo.Delete(ctx, id)
}

// UpdateStatus advances the challenge lifecycle. Completing a challenge
// picks the winner from the leaderboard and dispatches the announcement.
func (s *challengeService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ChallengeStatus) (*domain.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if statusTransitions[challenge.Status] != status {
		return nil, domain.ErrInvalidTransition
	}

	challenge.Status = status
	if status == domain.ChallengeStatusCompleted {
		if err := s.announceWinner(ctx, challenge); err != nil {
			return nil, err
		}
	}

	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, fmt.Errorf("challenge.UpdateStatus: %w", err)
	}
	return challenge, nil
}

func (s *challengeService) announceWinner(ctx context.Context, challenge *domain.Challenge) error {
	standings, err := s.leaderboardRepo.Standings(ctx, challenge.ID)
	if err != nil {
		return fmt.Errorf("challenge.announceWinner: %w", err)
	}
	if len(standings) == 0 {
		return domain.ErrNoSubmissions
	}

	top := standings[0]
	challenge.WinnerID = &top.SubmissionID

	submission, err := s.submissionRepo.GetByID(ctx, top.SubmissionID)
	if err != nil {
		return fmt.Errorf("challenge.announceWinner: %w", err)
	}
	winner, err := s.userRepo.GetByID(ctx, submission.UserID)
	if err != nil {
		return fmt.Errorf("challenge.announceWinner: %w", err)
	}

	// Announcement delivery must not block challenge completion.
	if err := s.announcer.SendWinnerAnnouncement(ctx, winner, challenge, submission); err != nil {
		s.log.Error("winner announcement failed",
			zap.String("challenge_id", challenge.ID.String()),
			zap.String("winner_id", winner.ID.String()),
			zap.Error(err),
		)
	}
	return nil
}

func (s *challengeService) AddRule(ctx context.Context, rule *domain.ChallengeValidationRule) error {
	if _, err := s.challengeRepo.GetByID(ctx, rule.ChallengeID); err != nil {
		return err
	}
	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	rule.IsActive = true
	return s.ruleRepo.CreateRule(ctx, rule)
}

func (s *challengeService) ListRules(ctx context.Context, challengeID uuid.UUID) ([]domain.ChallengeValidationRule, error) {
	return s.ruleRepo.ListRules(ctx, challengeID)
}

func (s *challengeService) DeleteRule(ctx context.Context, ruleID uuid.UUID) error {
	return s.ruleRepo.DeleteRule(ctx, ruleID)
}

func (s *challengeService) AddRequirement(ctx context.Context, req *domain.ContentRequirement) error {
	if _, err := s.challengeRepo.GetByID(ctx, req.ChallengeID); err != nil {
		return err
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	return s.ruleRepo.CreateRequirement(ctx, req)
}

func (s *challengeService) ListRequirements(ctx context.Context, challengeID uuid.UUID) ([]domain.ContentRequirement, error) {
	return s.ruleRepo.ListRequirements(ctx, challengeID)
}

func (s *challengeService) DeleteRequirement(ctx context.Context, reqID uuid.UUID) error {
	return s.ruleRepo.DeleteRequirement(ctx, reqID)
}
