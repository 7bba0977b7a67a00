package content_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pulsar/internal/domain"
	"pulsar/internal/validator/content"
)

func TestBuildSuggestions_GeneralTipsOnly(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Description: strings.Repeat("words and more words. ", 5),
	}

	got := content.BuildSuggestions(sub, nil)

	assert.Equal(t, []string{
		"Preview your submission before submitting",
		"Make sure your content aligns with the challenge theme",
	}, got)
}

func TestBuildSuggestions_FixableIssuesComeFirst(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Description: strings.Repeat("plenty of context for the voters here. ", 3),
	}
	issues := []content.Issue{
		{Fixable: true, Suggestion: "Use a longer title"},
		{Fixable: false, Suggestion: "Recreate at higher resolution"},
		{Fixable: true, Suggestion: "Add a description"},
	}

	got := content.BuildSuggestions(sub, issues)

	assert.Equal(t, "Use a longer title", got[0])
	assert.Equal(t, "Add a description", got[1])
	assert.NotContains(t, got, "Recreate at higher resolution")
}

func TestBuildSuggestions_DeduplicatesFirstSeen(t *testing.T) {
	sub := &content.Submission{ContentType: domain.ContentTypeImage, Description: strings.Repeat("d", 60)}
	issues := []content.Issue{
		{Fixable: true, Suggestion: "Use a longer title"},
		{Fixable: true, Suggestion: "Use a longer title"},
	}

	got := content.BuildSuggestions(sub, issues)

	count := 0
	for _, s := range got {
		if s == "Use a longer title" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildSuggestions_VideoDurationTip(t *testing.T) {
	sub := &content.Submission{ContentType: domain.ContentTypeVideo, Description: strings.Repeat("d", 60)}

	got := content.BuildSuggestions(sub, nil)

	assert.Equal(t, []string{
		"Double-check your content's duration and resolution against the challenge requirements",
		"Preview your submission before submitting",
		"Make sure your content aligns with the challenge theme",
	}, got)
}

func TestBuildSuggestions_AudioGetsDurationTip(t *testing.T) {
	sub := &content.Submission{ContentType: domain.ContentTypeAudio, Description: strings.Repeat("d", 60)}

	got := content.BuildSuggestions(sub, nil)

	assert.Contains(t, got, "Double-check your content's duration and resolution against the challenge requirements")
}

func TestBuildSuggestions_ShortDescriptionTip(t *testing.T) {
	sub := &content.Submission{ContentType: domain.ContentTypeImage, Description: "brief"}

	got := content.BuildSuggestions(sub, nil)

	assert.Equal(t, []string{
		"Expand your description to at least 50 characters to give voters more context",
		"Preview your submission before submitting",
		"Make sure your content aligns with the challenge theme",
	}, got)
}

func TestBuildSuggestions_CappedAtFive(t *testing.T) {
	sub := &content.Submission{ContentType: domain.ContentTypeVideo, Description: "brief"}
	var issues []content.Issue
	for i := 0; i < 6; i++ {
		issues = append(issues, content.Issue{
			Fixable:    true,
			Suggestion: fmt.Sprintf("Fix problem %d", i),
		})
	}

	got := content.BuildSuggestions(sub, issues)

	assert.Len(t, got, 5)
	assert.Equal(t, "Fix problem 4", got[4])
}

func TestBuildSuggestions_EmptySuggestionSkipped(t *testing.T) {
	sub := &content.Submission{ContentType: domain.ContentTypeImage, Description: strings.Repeat("d", 60)}
	issues := []content.Issue{{Fixable: true, Suggestion: ""}}

	got := content.BuildSuggestions(sub, issues)

	assert.NotContains(t, got, "")
	assert.Len(t, got, 2)
}
