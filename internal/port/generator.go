package port

import (
	"context"

	"pulsar/internal/domain"
)

// GenerateInput describes an AI generation request.
type GenerateInput struct {
	ContentType domain.ContentType
	Prompt      string
	Style       string
}

// ContentGenerator is the contract for the external AI generation backends.
// They are black boxes that return a URL to the generated artifact.
type ContentGenerator interface {
	Generate(ctx context.Context, input *GenerateInput) (url string, err error)
}
