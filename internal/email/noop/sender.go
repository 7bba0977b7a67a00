package noop

import (
	"context"
	"log"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

type noopSender struct{}

// NewSender creates a no-op AnnouncementSender that logs announcements to
// stdout. Used in local development and tests.
func NewSender() port.AnnouncementSender {
	return &noopSender{}
}

func (s *noopSender) SendWinnerAnnouncement(_ context.Context, winner *domain.User, challenge *domain.Challenge, submission *domain.Submission) error {
	log.Printf("[NOOP EMAIL] Winner announcement for %s (%s): %q won %q with %d points",
		winner.DisplayName, winner.Email, submission.Title, challenge.Title, submission.ValidationScore)
	return nil
}
