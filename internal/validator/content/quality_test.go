package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pulsar/internal/domain"
	"pulsar/internal/validator/content"
)

func TestCheckQuality_Clean(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Title:       "Golden hour at the pier",
		Description: "Shot just before sunset. The light was perfect.",
	}

	assert.Empty(t, content.CheckQuality(sub))
}

func TestCheckQuality_SingleWordTitle(t *testing.T) {
	sub := &content.Submission{
		Title:       "Sunset",
		Description: "First sentence. Second sentence.",
	}

	issues := content.CheckQuality(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindInfo, issues[0].Kind)
	assert.Equal(t, content.CategoryQuality, issues[0].Category)
	assert.Equal(t, content.SeverityLow, issues[0].Severity)
}

func TestCheckQuality_AllCapsTitle(t *testing.T) {
	sub := &content.Submission{
		Title:       "MY BEST WORK",
		Description: "First sentence. Second sentence.",
	}

	issues := content.CheckQuality(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
	assert.Equal(t, content.SeverityMedium, issues[0].Severity)
}

func TestCheckQuality_ShortAllCapsTitleNotFlagged(t *testing.T) {
	// All-caps detection only kicks in above 5 characters; "WOW A" is a
	// two-word title so the single-word nudge stays quiet too.
	sub := &content.Submission{
		Title:       "WOW A",
		Description: "First sentence. Second sentence.",
	}

	assert.Empty(t, content.CheckQuality(sub))
}

func TestCheckQuality_FewSentences(t *testing.T) {
	sub := &content.Submission{
		Title:       "Golden hour",
		Description: "Just one sentence here",
	}

	issues := content.CheckQuality(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindInfo, issues[0].Kind)
}

func TestCheckQuality_SentenceSplitIgnoresEmptyParts(t *testing.T) {
	sub := &content.Submission{
		Title:       "Golden hour",
		Description: "Wait for it...",
	}

	issues := content.CheckQuality(sub)

	// "..." leaves a single non-empty sentence.
	assert.Len(t, issues, 1)
}

func TestCheckQuality_LowVideoResolution(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeVideo,
		Title:       "Downhill run",
		Description: "Helmet cam footage. Steep and fast.",
		Metadata:    content.Metadata{Resolution: "640x360"},
	}

	issues := content.CheckQuality(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindInfo, issues[0].Kind)
	assert.Equal(t, content.SeverityLow, issues[0].Severity)
}

func TestCheckQuality_ResolutionIgnoredForNonVideo(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Title:       "Tiny image",
		Description: "First sentence. Second sentence.",
		Metadata:    content.Metadata{Resolution: "100x100"},
	}

	assert.Empty(t, content.CheckQuality(sub))
}

func TestCheckQuality_MalformedResolutionNotFlagged(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeVideo,
		Title:       "Downhill run",
		Description: "Helmet cam footage. Steep and fast.",
		Metadata:    content.Metadata{Resolution: "potato"},
	}

	assert.Empty(t, content.CheckQuality(sub))
}

func TestParseResolution(t *testing.T) {
	w, h, err := content.ParseResolution("1920x1080")
	assert.NoError(t, err)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	w, h, err = content.ParseResolution(" 1280 X 720 ")
	assert.NoError(t, err)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)

	_, _, err = content.ParseResolution("1080p")
	assert.Error(t, err)
}
