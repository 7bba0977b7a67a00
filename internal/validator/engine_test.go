package validator_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulsar/internal/domain"
	"pulsar/internal/validator"
	"pulsar/internal/validator/content"
	"pulsar/mocks"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

// cleanSubmission returns a submission that trips none of the checkers.
func cleanSubmission(challengeID string) *content.Submission {
	return &content.Submission{
		Title:       "Golden Hour at the Pier",
		Description: "Captured just before sunset. The light made everything glow softly.",
		Content:     "s3://pulsar/submissions/abc123",
		ContentType: domain.ContentTypeImage,
		ChallengeID: challengeID,
		Metadata: content.Metadata{
			Format:        "jpg",
			FileSizeBytes: int64Ptr(5 * 1024 * 1024),
		},
		CustomFields: map[string]interface{}{
			"ridingExperience": "intermediate",
			"safetyGearUsed":   true,
		},
	}
}

func TestEngine_Validate_IncompleteDraft(t *testing.T) {
	engine := validator.NewEngine(validator.NewStaticCatalog())

	result, err := engine.Validate(context.Background(), &content.Submission{
		Title:       "Hi",
		ContentType: domain.ContentTypeImage,
	})
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Equal(t, content.ReadinessNotReady, result.ReadinessLevel)
	assert.Equal(t, 0, result.ChallengeSpecificScore)

	// Short title, short description, no content, no challenge association.
	kinds := map[content.IssueKind]int{}
	for _, issue := range result.Issues {
		kinds[issue.Kind]++
	}
	assert.Equal(t, 3, kinds[content.KindError])
	assert.NotEmpty(t, result.Suggestions)
}

func TestEngine_Validate_CleanUnconfiguredChallenge(t *testing.T) {
	engine := validator.NewEngine(validator.NewStaticCatalog())

	result, err := engine.Validate(context.Background(), cleanSubmission(uuid.NewString()))
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Issues)
	assert.Equal(t, content.ReadinessExcellent, result.ReadinessLevel)
	// A challenge with no configured rules contributes no score of its own.
	assert.Equal(t, 0, result.ChallengeSpecificScore)
}

func TestEngine_Validate_LongVideoIsWarningOnly(t *testing.T) {
	engine := validator.NewEngine(validator.NewStaticCatalog())

	sub := cleanSubmission(uuid.NewString())
	sub.ContentType = domain.ContentTypeVideo
	sub.Metadata = content.Metadata{
		Format:        "mp4",
		FileSizeBytes: int64Ptr(90 * 1024 * 1024),
		Duration:      float64Ptr(400),
	}

	result, err := engine.Validate(context.Background(), sub)
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, content.KindWarning, result.Issues[0].Kind)
	assert.Equal(t, content.CategoryTechnical, result.Issues[0].Category)
	assert.True(t, result.IsValid)
	assert.Equal(t, 85, result.Score)
	assert.Equal(t, content.ReadinessGood, result.ReadinessLevel)
}

func TestEngine_Validate_UnsupportedAudioFormat(t *testing.T) {
	engine := validator.NewEngine(validator.NewStaticCatalog())

	sub := cleanSubmission(uuid.NewString())
	sub.ContentType = domain.ContentTypeAudio
	sub.Metadata = content.Metadata{Format: "aac"}

	result, err := engine.Validate(context.Background(), sub)
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, content.KindError, result.Issues[0].Kind)
	assert.Contains(t, result.Issues[0].Message, `"aac"`)
	assert.False(t, result.IsValid)
	assert.Equal(t, content.ReadinessNotReady, result.ReadinessLevel)
}

func TestEngine_Validate_RequiredTagRule(t *testing.T) {
	challengeID := uuid.New()
	catalog := validator.NewStaticCatalog(&domain.ChallengeValidationConfig{
		ChallengeID: challengeID,
		Rules: []domain.ChallengeValidationRule{{
			Field:      "tags",
			RuleType:   domain.RuleTypeCustom,
			RuleConfig: json.RawMessage(`{"requiredTags": ["pulsar"]}`),
			Severity:   domain.RuleSeverityWarning,
			IsActive:   true,
		}},
	})
	engine := validator.NewEngine(catalog)

	// A tag containing the required tag satisfies the rule, case-insensitively.
	sub := cleanSubmission(challengeID.String())
	sub.Tags = []string{"PULSAR2024"}

	result, err := engine.Validate(context.Background(), sub)
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 100, result.ChallengeSpecificScore)

	sub.Tags = []string{"other"}
	result, err = engine.Validate(context.Background(), sub)
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, content.KindWarning, result.Issues[0].Kind)
	assert.Equal(t, content.CategoryChallenge, result.Issues[0].Category)
	assert.Equal(t, content.SeverityMedium, result.Issues[0].Severity)
	assert.Equal(t, 90, result.Score)
	assert.Equal(t, 85, result.ChallengeSpecificScore)
	assert.True(t, result.IsValid)
}

func TestEngine_Validate_RequirementIssuesRelabeled(t *testing.T) {
	challengeID := uuid.New()
	catalog := validator.NewStaticCatalog(&domain.ChallengeValidationConfig{
		ChallengeID: challengeID,
		Requirements: []domain.ContentRequirement{{
			AppliesToType:  "image",
			AllowedFormats: domain.StringList{"png"},
		}},
	})
	engine := validator.NewEngine(catalog)

	result, err := engine.Validate(context.Background(), cleanSubmission(challengeID.String()))
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, content.CategoryChallenge, result.Issues[0].Category)
	assert.Equal(t, content.KindError, result.Issues[0].Kind)
	assert.False(t, result.IsValid)
}

func TestEngine_Validate_MergeOrder(t *testing.T) {
	engine := validator.NewEngine(validator.NewStaticCatalog())

	// All-caps title mentioning "copyright" plus an oversized file: one
	// finding each from the technical, guidelines, and quality passes.
	sub := cleanSubmission(uuid.NewString())
	sub.Title = "COPYRIGHT NOTICE"
	sub.Metadata.FileSizeBytes = int64Ptr(20 * 1024 * 1024)

	result, err := engine.Validate(context.Background(), sub)
	require.NoError(t, err)

	require.Len(t, result.Issues, 3)
	assert.Equal(t, content.CategoryTechnical, result.Issues[0].Category)
	assert.Equal(t, content.CategoryGuidelines, result.Issues[1].Category)
	assert.Equal(t, content.CategoryQuality, result.Issues[2].Category)
}

func TestEngine_Validate_Idempotent(t *testing.T) {
	engine := validator.NewEngine(validator.NewStaticCatalog())
	sub := cleanSubmission(uuid.NewString())
	sub.Title = "Hi"

	first, err := engine.Validate(context.Background(), sub)
	require.NoError(t, err)
	second, err := engine.Validate(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Validate_CustomFieldValidation(t *testing.T) {
	engine := validator.NewEngine(validator.NewStaticCatalog())

	sub := cleanSubmission(uuid.NewString())
	sub.CustomFields = map[string]interface{}{"safetyGearUsed": true}

	result, err := engine.Validate(context.Background(), sub)
	require.NoError(t, err)

	assert.False(t, result.CustomFieldValidation["ridingExperience"].IsValid)
	assert.True(t, result.CustomFieldValidation["safetyGearUsed"].IsValid)
	// Custom field results do not gate validity.
	assert.True(t, result.IsValid)
}

func TestEngine_Validate_CatalogNotFoundTolerated(t *testing.T) {
	catalog := new(mocks.MockRuleCatalog)
	catalog.On("ChallengeConfig", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	engine := validator.NewEngine(catalog)

	result, err := engine.Validate(context.Background(), cleanSubmission(uuid.NewString()))
	require.NoError(t, err)

	assert.Equal(t, 0, result.ChallengeSpecificScore)
	assert.True(t, result.IsValid)
	catalog.AssertExpectations(t)
}

func TestEngine_Validate_CatalogFailure(t *testing.T) {
	catalog := new(mocks.MockRuleCatalog)
	catalog.On("ChallengeConfig", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	engine := validator.NewEngine(catalog)

	result, err := engine.Validate(context.Background(), cleanSubmission(uuid.NewString()))

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestEngine_Validate_NoCatalogCallWithoutChallenge(t *testing.T) {
	catalog := new(mocks.MockRuleCatalog)
	engine := validator.NewEngine(catalog)

	sub := cleanSubmission("")
	result, err := engine.Validate(context.Background(), sub)
	require.NoError(t, err)

	// The missing association is a guideline finding, not a catalog lookup.
	assert.False(t, result.IsValid)
	catalog.AssertNotCalled(t, "ChallengeConfig", mock.Anything, mock.Anything)
}
