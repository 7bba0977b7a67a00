package content_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"pulsar/internal/domain"
	"pulsar/internal/validator/content"
)

func requiredRule(field string, severity domain.RuleSeverity) domain.ChallengeValidationRule {
	return domain.ChallengeValidationRule{
		Field:    field,
		RuleType: domain.RuleTypeRequired,
		Severity: severity,
		IsActive: true,
	}
}

func TestEvaluateRules_RequiredFieldPresent(t *testing.T) {
	sub := &content.Submission{Title: "Present", ChallengeID: "ch-1"}

	issues := content.EvaluateRules(sub, []domain.ChallengeValidationRule{
		requiredRule("title", domain.RuleSeverityError),
	})

	assert.Empty(t, issues)
}

func TestEvaluateRules_RequiredFieldMissing(t *testing.T) {
	sub := &content.Submission{Title: "  ", ChallengeID: "ch-1"}

	issues := content.EvaluateRules(sub, []domain.ChallengeValidationRule{
		requiredRule("title", domain.RuleSeverityError),
	})

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindError, issues[0].Kind)
	assert.Equal(t, content.CategoryChallenge, issues[0].Category)
	assert.Equal(t, content.SeverityHigh, issues[0].Severity)
	assert.Equal(t, "ch-1-title", issues[0].RuleID)
}

func TestEvaluateRules_SeverityMapping(t *testing.T) {
	sub := &content.Submission{ChallengeID: "ch-1"}

	cases := []struct {
		ruleSeverity domain.RuleSeverity
		wantKind     content.IssueKind
		wantSeverity content.Severity
	}{
		{domain.RuleSeverityError, content.KindError, content.SeverityHigh},
		{domain.RuleSeverityWarning, content.KindWarning, content.SeverityMedium},
		{domain.RuleSeverityInfo, content.KindInfo, content.SeverityLow},
	}

	for _, tc := range cases {
		t.Run(string(tc.ruleSeverity), func(t *testing.T) {
			issues := content.EvaluateRules(sub, []domain.ChallengeValidationRule{
				requiredRule("title", tc.ruleSeverity),
			})
			assert.Len(t, issues, 1)
			assert.Equal(t, tc.wantKind, issues[0].Kind)
			assert.Equal(t, tc.wantSeverity, issues[0].Severity)
		})
	}
}

func TestEvaluateRules_RequiredCustomField(t *testing.T) {
	sub := &content.Submission{
		ChallengeID:  "ch-1",
		CustomFields: map[string]interface{}{"ridingExperience": "expert"},
	}

	issues := content.EvaluateRules(sub, []domain.ChallengeValidationRule{
		requiredRule("ridingExperience", domain.RuleSeverityError),
		requiredRule("safetyGearUsed", domain.RuleSeverityError),
	})

	assert.Len(t, issues, 1)
	assert.Equal(t, "ch-1-safetyGearUsed", issues[0].RuleID)
}

func TestEvaluateRules_InactiveRuleSkipped(t *testing.T) {
	rule := requiredRule("title", domain.RuleSeverityError)
	rule.IsActive = false

	issues := content.EvaluateRules(&content.Submission{ChallengeID: "ch-1"}, []domain.ChallengeValidationRule{rule})

	assert.Empty(t, issues)
}

func TestEvaluateRules_DescriptionMinLength(t *testing.T) {
	sub := &content.Submission{Description: "short", ChallengeID: "ch-1"}

	issues := content.EvaluateRules(sub, []domain.ChallengeValidationRule{{
		Field:      "description",
		RuleType:   domain.RuleTypeCustom,
		RuleConfig: json.RawMessage(`{"minLength": 50}`),
		Severity:   domain.RuleSeverityWarning,
		IsActive:   true,
	}})

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
	assert.Equal(t, content.SeverityMedium, issues[0].Severity)
	assert.Contains(t, issues[0].Suggestion, "50")
}

func TestEvaluateRules_DescriptionMinLengthErrorSeverity(t *testing.T) {
	sub := &content.Submission{Description: "short", ChallengeID: "ch-1"}

	issues := content.EvaluateRules(sub, []domain.ChallengeValidationRule{{
		Field:      "description",
		RuleType:   domain.RuleTypeCustom,
		RuleConfig: json.RawMessage(`{"minLength": 50}`),
		Severity:   domain.RuleSeverityError,
		IsActive:   true,
	}})

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindError, issues[0].Kind)
	assert.Equal(t, content.SeverityHigh, issues[0].Severity)
}

func TestEvaluateRules_MessageOverride(t *testing.T) {
	sub := &content.Submission{ChallengeID: "ch-1"}

	issues := content.EvaluateRules(sub, []domain.ChallengeValidationRule{{
		Field:    "title",
		RuleType: domain.RuleTypeRequired,
		Message:  "Every entry needs a name",
		Severity: domain.RuleSeverityError,
		IsActive: true,
	}})

	assert.Len(t, issues, 1)
	assert.Equal(t, "Every entry needs a name", issues[0].Message)
}

func TestEvaluateRules_RequiredTags(t *testing.T) {
	rule := domain.ChallengeValidationRule{
		Field:      "tags",
		RuleType:   domain.RuleTypeCustom,
		RuleConfig: json.RawMessage(`{"requiredTags": ["pulsar"]}`),
		Severity:   domain.RuleSeverityWarning,
		IsActive:   true,
	}

	// Case-insensitive substring match: "PULSAR2024" contains "pulsar".
	sub := &content.Submission{ChallengeID: "ch-1", Tags: []string{"PULSAR2024"}}
	assert.Empty(t, content.EvaluateRules(sub, []domain.ChallengeValidationRule{rule}))

	sub.Tags = []string{"other"}
	issues := content.EvaluateRules(sub, []domain.ChallengeValidationRule{rule})
	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
	assert.Equal(t, content.SeverityMedium, issues[0].Severity)
	assert.Equal(t, "ch-1-tags", issues[0].RuleID)
}

func TestEvaluateRules_RequiredTagsSeverityIsFixed(t *testing.T) {
	// The tag rule stays a medium warning even when declared as an error.
	rule := domain.ChallengeValidationRule{
		Field:      "tags",
		RuleType:   domain.RuleTypeCustom,
		RuleConfig: json.RawMessage(`{"requiredTags": ["pulsar"]}`),
		Severity:   domain.RuleSeverityError,
		IsActive:   true,
	}

	issues := content.EvaluateRules(&content.Submission{ChallengeID: "ch-1"}, []domain.ChallengeValidationRule{rule})

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
	assert.Equal(t, content.SeverityMedium, issues[0].Severity)
}

func TestEvaluateRules_UnknownCombinationIsNoOp(t *testing.T) {
	sub := &content.Submission{ChallengeID: "ch-1"}

	issues := content.EvaluateRules(sub, []domain.ChallengeValidationRule{{
		Field:    "title",
		RuleType: domain.RuleTypeFormat,
		Severity: domain.RuleSeverityError,
		IsActive: true,
	}})

	assert.Empty(t, issues)
}

func TestCheckRequirements_TypeFilter(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Metadata:    content.Metadata{Format: "bmp"},
	}

	reqs := []domain.ContentRequirement{
		{AppliesToType: "video", AllowedFormats: domain.StringList{"mp4"}},
		{AppliesToType: "image", AllowedFormats: domain.StringList{"jpg", "png"}},
	}

	issues := content.CheckRequirements(sub, reqs)

	assert.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"bmp"`)
}

func TestCheckRequirements_AnyMatchesEverything(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeText,
		Metadata:    content.Metadata{FileSizeBytes: int64Ptr(2 * 1024 * 1024)},
	}

	issues := content.CheckRequirements(sub, []domain.ContentRequirement{
		{AppliesToType: "any", MaxSizeBytes: 1024 * 1024},
	})

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindError, issues[0].Kind)
	assert.Equal(t, content.SeverityHigh, issues[0].Severity)
}

func TestCheckRequirements_Duration(t *testing.T) {
	maxDur := 60
	sub := &content.Submission{
		ContentType: domain.ContentTypeVideo,
		Metadata:    content.Metadata{Duration: float64Ptr(90)},
	}

	issues := content.CheckRequirements(sub, []domain.ContentRequirement{
		{AppliesToType: "video", MaxDurationSeconds: &maxDur},
	})

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
}

func TestCheckRequirements_MinResolution(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeVideo,
		Metadata:    content.Metadata{Resolution: "640x360"},
	}

	issues := content.CheckRequirements(sub, []domain.ContentRequirement{
		{AppliesToType: "video", MinResolution: "1280x720"},
	})

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
	assert.False(t, issues[0].Fixable)
}

func TestCheckRequirements_IssuesStartTechnical(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Metadata:    content.Metadata{Format: "bmp"},
	}

	issues := content.CheckRequirements(sub, []domain.ContentRequirement{
		{AppliesToType: "image", AllowedFormats: domain.StringList{"jpg"}},
	})

	assert.Len(t, issues, 1)
	assert.Equal(t, content.CategoryTechnical, issues[0].Category)

	relabeled := content.AsChallengeIssues(issues)
	assert.Equal(t, content.CategoryChallenge, relabeled[0].Category)
	// The original list is untouched.
	assert.Equal(t, content.CategoryTechnical, issues[0].Category)
}
