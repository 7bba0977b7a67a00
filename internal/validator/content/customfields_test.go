package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pulsar/internal/validator/content"
)

func TestEvaluateCustomFields_AllValid(t *testing.T) {
	sub := &content.Submission{CustomFields: map[string]interface{}{
		"ridingExperience":    "intermediate",
		"safetyGearUsed":      true,
		"locationDescription": "Forest loop behind the old mill",
	}}

	results := content.EvaluateCustomFields(sub, content.DefaultCustomFieldRules())

	assert.Len(t, results, 3)
	for name, res := range results {
		assert.True(t, res.IsValid, name)
		assert.Empty(t, res.Message, name)
	}
}

func TestEvaluateCustomFields_RequiredMissing(t *testing.T) {
	sub := &content.Submission{CustomFields: map[string]interface{}{
		"safetyGearUsed": true,
	}}

	results := content.EvaluateCustomFields(sub, content.DefaultCustomFieldRules())

	assert.False(t, results["ridingExperience"].IsValid)
	assert.Equal(t, "ridingExperience is required", results["ridingExperience"].Message)
	assert.True(t, results["safetyGearUsed"].IsValid)
}

func TestEvaluateCustomFields_EmptyStringCountsAsAbsent(t *testing.T) {
	sub := &content.Submission{CustomFields: map[string]interface{}{
		"ridingExperience": "",
		"safetyGearUsed":   false,
	}}

	results := content.EvaluateCustomFields(sub, content.DefaultCustomFieldRules())

	assert.False(t, results["ridingExperience"].IsValid)
	// A boolean false is still a present value.
	assert.True(t, results["safetyGearUsed"].IsValid)
}

func TestEvaluateCustomFields_TextMaxLength(t *testing.T) {
	sub := &content.Submission{CustomFields: map[string]interface{}{
		"ridingExperience":    "expert",
		"safetyGearUsed":      true,
		"locationDescription": strings.Repeat("x", 201),
	}}

	results := content.EvaluateCustomFields(sub, content.DefaultCustomFieldRules())

	assert.False(t, results["locationDescription"].IsValid)
	assert.Contains(t, results["locationDescription"].Message, "200")
}

func TestEvaluateCustomFields_OptionalMissingIsValid(t *testing.T) {
	sub := &content.Submission{CustomFields: map[string]interface{}{
		"ridingExperience": "beginner",
		"safetyGearUsed":   true,
	}}

	results := content.EvaluateCustomFields(sub, content.DefaultCustomFieldRules())

	assert.True(t, results["locationDescription"].IsValid)
}

func TestEvaluateCustomFields_UndeclaredFieldsOmitted(t *testing.T) {
	sub := &content.Submission{CustomFields: map[string]interface{}{
		"ridingExperience": "expert",
		"safetyGearUsed":   true,
		"favoriteSnack":    "trail mix",
	}}

	results := content.EvaluateCustomFields(sub, content.DefaultCustomFieldRules())

	assert.Len(t, results, 3)
	assert.NotContains(t, results, "favoriteSnack")
}
