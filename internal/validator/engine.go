package validator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"pulsar/internal/domain"
	"pulsar/internal/port"
	"pulsar/internal/validator/content"
)

// ValidationResult is the sole output of the engine. Field names follow the
// frontend wire contract.
type ValidationResult struct {
	IsValid                bool                           `json:"isValid"`
	Score                  int                            `json:"score"`
	Issues                 []content.Issue                `json:"issues"`
	Suggestions            []string                       `json:"suggestions"`
	ReadinessLevel         content.ReadinessLevel         `json:"readinessLevel"`
	ChallengeSpecificScore int                            `json:"challengeSpecificScore"`
	CustomFieldValidation  map[string]content.FieldResult `json:"customFieldValidation"`
}

// Engine scores content submissions. It holds no per-call state: every
// Validate call is a pure computation over the submission and the injected
// read-only rule catalog.
type Engine struct {
	catalog     port.RuleCatalog
	customRules content.CustomFieldRules
	log         *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCustomFieldRules swaps the custom field rule table.
func WithCustomFieldRules(rules content.CustomFieldRules) Option {
	return func(e *Engine) { e.customRules = rules }
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine creates a validation engine backed by the given rule catalog.
func NewEngine(catalog port.RuleCatalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:     catalog,
		customRules: content.DefaultCustomFieldRules(),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate runs every checker against the submission and aggregates the
// result. It never panics outward: unexpected failures surface as
// domain.ErrValidationFailed so the HTTP boundary can return a generic
// failure envelope.
func (e *Engine) Validate(ctx context.Context, sub *content.Submission) (result *ValidationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("validation panic", zap.Any("panic", r))
			result = nil
			err = fmt.Errorf("%w: %v", domain.ErrValidationFailed, r)
		}
	}()

	basic := content.CheckBasic(sub)
	technical := content.CheckTechnical(sub)
	guidelines := content.CheckGuidelines(sub)
	quality := content.CheckQuality(sub)

	var challengeIssues []content.Issue
	configured := false
	if sub.ChallengeID != "" {
		cfg, cfgErr := e.catalog.ChallengeConfig(ctx, sub.ChallengeID)
		if cfgErr != nil && !errors.Is(cfgErr, domain.ErrNotFound) {
			return nil, fmt.Errorf("loading challenge configuration: %w", cfgErr)
		}
		if cfg != nil {
			configured = true
			challengeIssues = content.EvaluateRules(sub, cfg.Rules)
			reqIssues := content.CheckRequirements(sub, cfg.Requirements)
			challengeIssues = append(challengeIssues, content.AsChallengeIssues(reqIssues)...)
		}
	}

	score := content.OverallScore(basic, technical, guidelines, quality, challengeIssues)

	// Canonical merge order: basic, technical, guidelines, quality,
	// challenge-specific.
	issues := make([]content.Issue, 0, len(basic)+len(technical)+len(guidelines)+len(quality)+len(challengeIssues))
	issues = append(issues, basic...)
	issues = append(issues, technical...)
	issues = append(issues, guidelines...)
	issues = append(issues, quality...)
	issues = append(issues, challengeIssues...)

	result = &ValidationResult{
		IsValid:                content.IsValid(issues),
		Score:                  score,
		Issues:                 issues,
		Suggestions:            content.BuildSuggestions(sub, issues),
		ReadinessLevel:         content.Readiness(score, issues),
		ChallengeSpecificScore: content.ChallengeScore(challengeIssues, configured),
		CustomFieldValidation:  content.EvaluateCustomFields(sub, e.customRules),
	}

	e.log.Debug("submission validated",
		zap.String("challenge_id", sub.ChallengeID),
		zap.Int("score", result.Score),
		zap.Int("issues", len(result.Issues)),
		zap.Bool("is_valid", result.IsValid),
	)
	return result, nil
}
