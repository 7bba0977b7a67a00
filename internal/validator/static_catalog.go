package validator

import (
	"context"

	"pulsar/internal/domain"
)

// StaticCatalog is an in-memory RuleCatalog keyed by challenge id. Tests and
// the demo seeder use it directly; production wires the postgres-backed
// catalog instead.
type StaticCatalog struct {
	configs map[string]*domain.ChallengeValidationConfig
}

// NewStaticCatalog creates a catalog from the given configurations.
func NewStaticCatalog(configs ...*domain.ChallengeValidationConfig) *StaticCatalog {
	m := make(map[string]*domain.ChallengeValidationConfig, len(configs))
	for _, cfg := range configs {
		m[cfg.ChallengeID.String()] = cfg
	}
	return &StaticCatalog{configs: m}
}

// ChallengeConfig returns the configuration for a challenge, or (nil, nil)
// when the challenge has none.
func (c *StaticCatalog) ChallengeConfig(_ context.Context, challengeID string) (*domain.ChallengeValidationConfig, error) {
	return c.configs[challengeID], nil
}
