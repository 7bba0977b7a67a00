package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pulsar/internal/domain"
	"pulsar/internal/validator/content"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestCheckTechnical_WithinLimits(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Metadata: content.Metadata{
			Format:        "png",
			FileSizeBytes: int64Ptr(500_000),
		},
	}

	assert.Empty(t, content.CheckTechnical(sub))
}

func TestCheckTechnical_SizeCeilings(t *testing.T) {
	cases := []struct {
		contentType domain.ContentType
		size        int64
		wantIssue   bool
	}{
		{domain.ContentTypeImage, 10*1024*1024 + 1, true},
		{domain.ContentTypeImage, 10 * 1024 * 1024, false},
		{domain.ContentTypeVideo, 100*1024*1024 + 1, true},
		{domain.ContentTypeVideo, 90_000_000, false},
		{domain.ContentTypeAudio, 25*1024*1024 + 1, true},
		{domain.ContentTypeText, 1*1024*1024 + 1, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.contentType), func(t *testing.T) {
			sub := &content.Submission{
				ContentType: tc.contentType,
				Metadata:    content.Metadata{FileSizeBytes: int64Ptr(tc.size)},
			}
			issues := content.CheckTechnical(sub)
			if tc.wantIssue {
				assert.Len(t, issues, 1)
				assert.Equal(t, content.KindError, issues[0].Kind)
				assert.Equal(t, content.CategoryTechnical, issues[0].Category)
				assert.Equal(t, content.SeverityHigh, issues[0].Severity)
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func TestCheckTechnical_UnsupportedFormat(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeAudio,
		Metadata:    content.Metadata{Format: "aac"},
	}

	issues := content.CheckTechnical(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindError, issues[0].Kind)
	assert.Contains(t, issues[0].Message, `"aac"`)
	assert.Contains(t, issues[0].Suggestion, "mp3")
}

func TestCheckTechnical_FormatIsCaseInsensitive(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Metadata:    content.Metadata{Format: "JPEG"},
	}

	assert.Empty(t, content.CheckTechnical(sub))
}

func TestCheckTechnical_LongDuration(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeVideo,
		Metadata: content.Metadata{
			Format:        "mp4",
			FileSizeBytes: int64Ptr(90_000_000),
			Duration:      float64Ptr(400),
		},
	}

	issues := content.CheckTechnical(sub)

	assert.Len(t, issues, 1)
	assert.Equal(t, content.KindWarning, issues[0].Kind)
	assert.Equal(t, content.SeverityMedium, issues[0].Severity)
}

func TestCheckTechnical_DurationIgnoredForImages(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentTypeImage,
		Metadata:    content.Metadata{Duration: float64Ptr(4000)},
	}

	assert.Empty(t, content.CheckTechnical(sub))
}

func TestCheckTechnical_UnknownContentTypeSkipsChecks(t *testing.T) {
	sub := &content.Submission{
		ContentType: domain.ContentType("hologram"),
		Metadata: content.Metadata{
			Format:        "xyz",
			FileSizeBytes: int64Ptr(1 << 40),
		},
	}

	assert.Empty(t, content.CheckTechnical(sub))
}

func TestCheckTechnical_AbsentMetadataIsClean(t *testing.T) {
	sub := &content.Submission{ContentType: domain.ContentTypeVideo}

	assert.Empty(t, content.CheckTechnical(sub))
}
