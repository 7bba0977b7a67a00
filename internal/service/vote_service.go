package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

// VoteService defines the voting contract.
type VoteService interface {
	Cast(ctx context.Context, submissionID, userID uuid.UUID) error
	Remove(ctx context.Context, submissionID, userID uuid.UUID) error
	Count(ctx context.Context, submissionID uuid.UUID) (int, error)
}

type voteService struct {
	voteRepo       port.VoteRepository
	submissionRepo port.SubmissionRepository
	challengeRepo  port.ChallengeRepository
}

// NewVoteService creates a new VoteService implementation.
func NewVoteService(
	voteRepo port.VoteRepository,
	submissionRepo port.SubmissionRepository,
	challengeRepo port.ChallengeRepository,
) VoteService {
	return &voteService{
		voteRepo:       voteRepo,
		submissionRepo: submissionRepo,
		challengeRepo:  challengeRepo,
	}
}

// Cast records a vote. Voting is idempotent per user and submission: casting
// the same vote twice is a no-op.
func (s *voteService) Cast(ctx context.Context, submissionID, userID uuid.UUID) error {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if sub.Status != domain.SubmissionStatusSubmitted {
		return domain.ErrSubmissionNotFound
	}
	if sub.UserID == userID {
		return domain.ErrSelfVote
	}

	challenge, err := s.challengeRepo.GetByID(ctx, sub.ChallengeID)
	if err != nil {
		return err
	}
	if challenge.Status != domain.ChallengeStatusVoting {
		return domain.ErrChallengeNotVoting
	}

	vote := &domain.Vote{
		ID:           uuid.New(),
		SubmissionID: submissionID,
		ChallengeID:  sub.ChallengeID,
		UserID:       userID,
	}
	if err := s.voteRepo.Upsert(ctx, vote); err != nil {
		return fmt.Errorf("vote.Cast: %w", err)
	}
	return nil
}

func (s *voteService) Remove(ctx context.Context, submissionID, userID uuid.UUID) error {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	challenge, err := s.challengeRepo.GetByID(ctx, sub.ChallengeID)
	if err != nil {
		return err
	}
	if challenge.Status != domain.ChallengeStatusVoting {
		return domain.ErrChallengeNotVoting
	}
	return s.voteRepo.Delete(ctx, submissionID, userID)
}

func (s *voteService) Count(ctx context.Context, submissionID uuid.UUID) (int, error) {
	return s.voteRepo.CountBySubmission(ctx, submissionID)
}
