package port

import (
	"context"

	"pulsar/internal/domain"
)

// AnnouncementSender dispatches winner announcements. Delivery mechanics are
// an external collaborator; implementations include a no-op logger and SES.
type AnnouncementSender interface {
	SendWinnerAnnouncement(ctx context.Context, winner *domain.User, challenge *domain.Challenge, submission *domain.Submission) error
}
