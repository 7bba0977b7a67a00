package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pulsar/internal/domain"
	"pulsar/internal/validator/content"
)

func TestCheckBasic_CleanSubmission(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Title:       "A Great Sunset Photo",
		Description: "Long exposure over the bay at dusk.",
		Content:     "uploads/sunset.jpg",
	}

	issues := content.CheckBasic(sub)

	assert.Empty(t, issues)
}

func TestCheckBasic_ShortTitle(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Title:       "Hi",
		Description: "A description long enough to pass.",
		Content:     "x",
	}

	issues := content.CheckBasic(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindError, issues[0].Kind)
	assert.Equal(t, content.CategoryContent, issues[0].Category)
	assert.Equal(t, content.SeverityHigh, issues[0].Severity)
	assert.True(t, issues[0].Fixable)
}

func TestCheckBasic_WhitespaceTitleCountsAsEmpty(t *testing.T) {
	sub := &content.Submission{
		Title:       "   ab   ",
		Description: "A description long enough to pass.",
		Content:     "x",
	}

	issues := content.CheckBasic(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindError, issues[0].Kind)
}

func TestCheckBasic_LongTitle(t *testing.T) {
	sub := &content.Submission{
		Title:       strings.Repeat("a", 101),
		Description: "A description long enough to pass.",
		Content:     "x",
	}

	issues := content.CheckBasic(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
	assert.Equal(t, content.SeverityMedium, issues[0].Severity)
}

func TestCheckBasic_TitleAtBoundaryLengths(t *testing.T) {
	sub := &content.Submission{
		Title:       strings.Repeat("a", 100),
		Description: "A description long enough to pass.",
		Content:     "x",
	}
	assert.Empty(t, content.CheckBasic(sub))

	sub.Title = "abc"
	assert.Empty(t, content.CheckBasic(sub))
}

func TestCheckBasic_ShortDescription(t *testing.T) {
	sub := &content.Submission{
		Title:       "Valid Title",
		Description: "too short",
		Content:     "x",
	}

	issues := content.CheckBasic(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
	assert.Equal(t, content.SeverityMedium, issues[0].Severity)
}

func TestCheckBasic_MissingContent(t *testing.T) {
	sub := &content.Submission{
		Title:       "Valid Title",
		Description: "A description long enough to pass.",
		Content:     "",
	}

	issues := content.CheckBasic(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindError, issues[0].Kind)
	assert.Equal(t, content.SeverityCritical, issues[0].Severity)
	assert.False(t, issues[0].Fixable)
}

func TestCheckBasic_AllProblemsStack(t *testing.T) {
	sub := &content.Submission{Title: "", Description: "", Content: ""}

	issues := content.CheckBasic(sub)

	assert.Len(t, issues, 3)
}
