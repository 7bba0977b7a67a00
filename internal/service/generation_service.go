package service

import (
	"context"
	"fmt"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

// GenerationService defines the AI content generation contract. The actual
// generation is a black box behind port.ContentGenerator; this layer only
// validates the request and wraps failures.
type GenerationService interface {
	Generate(ctx context.Context, input *port.GenerateInput) (string, error)
}

type generationService struct {
	generator port.ContentGenerator
}

// NewGenerationService creates a new GenerationService implementation.
func NewGenerationService(generator port.ContentGenerator) GenerationService {
	return &generationService{generator: generator}
}

func (s *generationService) Generate(ctx context.Context, input *port.GenerateInput) (string, error) {
	if !domain.ValidContentTypes[input.ContentType] {
		return "", fmt.Errorf("%w: unknown content type %q", domain.ErrGenerationFailed, input.ContentType)
	}
	if input.Prompt == "" {
		return "", fmt.Errorf("%w: empty prompt", domain.ErrGenerationFailed)
	}
	url, err := s.generator.Generate(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return url, nil
}
