package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pulsar/internal/validator/content"
)

func TestCheckGuidelines_Clean(t *testing.T) {
	sub := &content.Submission{
		Title:       "Morning ride",
		Description: "A quiet loop through the hills.",
		ChallengeID: "challenge-1",
	}

	assert.Empty(t, content.CheckGuidelines(sub))
}

func TestCheckGuidelines_BlockedKeyword(t *testing.T) {
	sub := &content.Submission{
		Title:       "Definitely not spam",
		Description: "ok",
		ChallengeID: "challenge-1",
	}

	issues := content.CheckGuidelines(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindError, issues[0].Kind)
	assert.Equal(t, content.CategoryGuidelines, issues[0].Category)
	assert.Equal(t, content.SeverityCritical, issues[0].Severity)
	assert.Contains(t, issues[0].Message, `"spam"`)
}

func TestCheckGuidelines_OneIssuePerMatchedKeyword(t *testing.T) {
	sub := &content.Submission{
		Title:       "spam and harmful things",
		Description: "also offensive",
		ChallengeID: "challenge-1",
	}

	issues := content.CheckGuidelines(sub)

	assert.Len(t, issues, 3)
}

func TestCheckGuidelines_SubstringMatchHasNoWordBoundary(t *testing.T) {
	// "offensive" inside "inoffensive" still matches; the scan is plain
	// substring containment.
	sub := &content.Submission{
		Title:       "An inoffensive painting",
		Description: "nothing to see",
		ChallengeID: "challenge-1",
	}

	issues := content.CheckGuidelines(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.SeverityCritical, issues[0].Severity)
}

func TestCheckGuidelines_MatchIsCaseInsensitive(t *testing.T) {
	sub := &content.Submission{
		Title:       "SPAM CITY",
		Description: "loud",
		ChallengeID: "challenge-1",
	}

	issues := content.CheckGuidelines(sub)

	assert.Len(t, issues, 1)
}

func TestCheckGuidelines_RightsKeyword(t *testing.T) {
	sub := &content.Submission{
		Title:       "My photo",
		Description: "No copyright infringement intended.",
		ChallengeID: "challenge-1",
	}

	issues := content.CheckGuidelines(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
	assert.Equal(t, content.SeverityHigh, issues[0].Severity)
}

func TestCheckGuidelines_MissingChallenge(t *testing.T) {
	sub := &content.Submission{
		Title:       "My photo",
		Description: "A nice photo.",
		ChallengeID: "   ",
	}

	issues := content.CheckGuidelines(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindError, issues[0].Kind)
	assert.Equal(t, content.SeverityCritical, issues[0].Severity)
	assert.False(t, issues[0].Fixable)
}
