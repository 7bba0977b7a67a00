package noop

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"pulsar/internal/port"
)

type noopGenerator struct {
	baseURL string
}

// NewGenerator creates a ContentGenerator that returns placeholder URLs
// instead of calling a real generation backend. Used in local development.
func NewGenerator(baseURL string) port.ContentGenerator {
	return &noopGenerator{baseURL: baseURL}
}

func (g *noopGenerator) Generate(_ context.Context, input *port.GenerateInput) (string, error) {
	return fmt.Sprintf("%s/generated/%s/%s", g.baseURL, input.ContentType, uuid.NewString()), nil
}
