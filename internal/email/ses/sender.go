package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSender creates a new SES-backed AnnouncementSender.
func NewSender(region, fromAddress, fromName string) (port.AnnouncementSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendWinnerAnnouncement(ctx context.Context, winner *domain.User, challenge *domain.Challenge, submission *domain.Submission) error {
	subject := fmt.Sprintf("You won the %q challenge!", challenge.Title)
	htmlBody := buildWinnerHTML(winner.DisplayName, challenge.Title, submission.Title)
	textBody := fmt.Sprintf("Hi %s,\n\nCongratulations! Your submission %q won the %q challenge on Pulsar.\n\nPulsar Team",
		winner.DisplayName, submission.Title, challenge.Title)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{winner.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildWinnerHTML(name, challengeTitle, submissionTitle string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Congratulations, you won!</h2>
  <p>Hi %s,</p>
  <p>Your submission <strong>%s</strong> won the <strong>%s</strong> challenge on Pulsar.</p>
  <p>Your entry is now featured on the challenge page and the winner badge has been added to your profile.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Pulsar - Creative Challenge Platform</p>
</body>
</html>`, name, submissionTitle, challengeTitle)
}
