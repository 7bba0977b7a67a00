package content

import (
	"fmt"
	"strings"

	"pulsar/internal/domain"
)

const maxDurationSeconds = 300.0

// sizeCeilings holds the fixed per-type byte-size ceilings.
var sizeCeilings = map[domain.ContentType]int64{
	domain.ContentTypeImage: 10 * 1024 * 1024,
	domain.ContentTypeVideo: 100 * 1024 * 1024,
	domain.ContentTypeAudio: 25 * 1024 * 1024,
	domain.ContentTypeText:  1 * 1024 * 1024,
}

// allowedFormats holds the fixed per-type allowed format sets.
var allowedFormats = map[domain.ContentType][]string{
	domain.ContentTypeImage: {"jpg", "jpeg", "png", "webp", "gif"},
	domain.ContentTypeVideo: {"mp4", "webm", "mov", "avi"},
	domain.ContentTypeAudio: {"mp3", "wav", "ogg", "m4a"},
	domain.ContentTypeText:  {"txt", "md", "json"},
}

// CheckTechnical verifies file size, format, and duration against the fixed
// per-type ceilings. Content types outside the known set have no size or
// format constraints; the lookups are total, never a panic.
func CheckTechnical(sub *Submission) []Issue {
	var issues []Issue

	if ceiling, ok := sizeCeilings[sub.ContentType]; ok && sub.Metadata.FileSizeBytes != nil {
		if *sub.Metadata.FileSizeBytes > ceiling {
			mb := ceiling / (1024 * 1024)
			issues = append(issues, Issue{
				Kind:       KindError,
				Category:   CategoryTechnical,
				Message:    fmt.Sprintf("File exceeds the %dMB limit for %s content", mb, sub.ContentType),
				Severity:   SeverityHigh,
				Fixable:    true,
				Suggestion: fmt.Sprintf("Compress or re-export your file to stay under %dMB", mb),
			})
		}
	}

	if formats, ok := allowedFormats[sub.ContentType]; ok && sub.Metadata.Format != "" {
		format := strings.ToLower(sub.Metadata.Format)
		if !containsFold(formats, format) {
			issues = append(issues, Issue{
				Kind:       KindError,
				Category:   CategoryTechnical,
				Message:    fmt.Sprintf("Format %q is not supported for %s content", format, sub.ContentType),
				Severity:   SeverityHigh,
				Fixable:    true,
				Suggestion: fmt.Sprintf("Convert your file to one of: %s", strings.Join(formats, ", ")),
			})
		}
	}

	if sub.ContentType == domain.ContentTypeVideo || sub.ContentType == domain.ContentTypeAudio {
		if sub.Metadata.Duration != nil && *sub.Metadata.Duration > maxDurationSeconds {
			issues = append(issues, Issue{
				Kind:       KindWarning,
				Category:   CategoryTechnical,
				Message:    "Content is longer than 5 minutes",
				Severity:   SeverityMedium,
				Fixable:    true,
				Suggestion: "Trim your content to 5 minutes or less",
			})
		}
	}

	return issues
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
