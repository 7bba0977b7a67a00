package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"pulsar/internal/domain"
	"pulsar/internal/export"
	"pulsar/internal/port"
)

// LeaderboardService defines the leaderboard and export contract.
type LeaderboardService interface {
	Standings(ctx context.Context, challengeID uuid.UUID) ([]domain.LeaderboardEntry, error)
	ExportCSV(ctx context.Context, challengeID uuid.UUID, w io.Writer) error
	ExportXLSX(ctx context.Context, challengeID uuid.UUID, w io.Writer) error
}

type leaderboardService struct {
	leaderboardRepo port.LeaderboardRepository
	challengeRepo   port.ChallengeRepository
}

// NewLeaderboardService creates a new LeaderboardService implementation.
func NewLeaderboardService(
	leaderboardRepo port.LeaderboardRepository,
	challengeRepo port.ChallengeRepository,
) LeaderboardService {
	return &leaderboardService{
		leaderboardRepo: leaderboardRepo,
		challengeRepo:   challengeRepo,
	}
}

func (s *leaderboardService) Standings(ctx context.Context, challengeID uuid.UUID) ([]domain.LeaderboardEntry, error) {
	if _, err := s.challengeRepo.GetByID(ctx, challengeID); err != nil {
		return nil, err
	}
	return s.leaderboardRepo.Standings(ctx, challengeID)
}

func (s *leaderboardService) ExportCSV(ctx context.Context, challengeID uuid.UUID, w io.Writer) error {
	_, entries, err := s.load(ctx, challengeID)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(w, entries); err != nil {
		return fmt.Errorf("leaderboard.ExportCSV: %w", err)
	}
	return nil
}

func (s *leaderboardService) ExportXLSX(ctx context.Context, challengeID uuid.UUID, w io.Writer) error {
	challenge, entries, err := s.load(ctx, challengeID)
	if err != nil {
		return err
	}
	if err := export.WriteXLSX(w, challenge, entries); err != nil {
		return fmt.Errorf("leaderboard.ExportXLSX: %w", err)
	}
	return nil
}

func (s *leaderboardService) load(ctx context.Context, challengeID uuid.UUID) (*domain.Challenge, []domain.LeaderboardEntry, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.leaderboardRepo.Standings(ctx, challengeID)
	if err != nil {
		return nil, nil, err
	}
	return challenge, entries, nil
}
