package content

import (
	"regexp"
	"strings"

	"pulsar/internal/domain"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

const (
	minQualityWidth  = 720
	minQualityHeight = 480
)

// CheckQuality applies heuristic quality signals. None of these block a
// submission; they nudge the score and the suggestion list.
func CheckQuality(sub *Submission) []Issue {
	var issues []Issue

	if len(strings.Fields(sub.Title)) < 2 {
		issues = append(issues, Issue{
			Kind:       KindInfo,
			Category:   CategoryQuality,
			Message:    "Single-word titles are less engaging",
			Severity:   SeverityLow,
			Fixable:    true,
			Suggestion: "Use a multi-word title that describes your work",
		})
	}

	if len(sub.Title) > 5 && sub.Title == strings.ToUpper(sub.Title) {
		issues = append(issues, Issue{
			Kind:       KindWarning,
			Category:   CategoryQuality,
			Message:    "Title is in all caps",
			Severity:   SeverityMedium,
			Fixable:    true,
			Suggestion: "Avoid all-caps titles",
		})
	}

	if countSentences(sub.Description) < 2 {
		issues = append(issues, Issue{
			Kind:       KindInfo,
			Category:   CategoryQuality,
			Message:    "Description has fewer than 2 sentences",
			Severity:   SeverityLow,
			Fixable:    true,
			Suggestion: "Describe your work in at least two sentences",
		})
	}

	if sub.ContentType == domain.ContentTypeVideo && sub.Metadata.Resolution != "" {
		// A malformed resolution string is a parse failure, not a finding.
		if w, h, err := ParseResolution(sub.Metadata.Resolution); err == nil {
			if w < minQualityWidth || h < minQualityHeight {
				issues = append(issues, Issue{
					Kind:       KindInfo,
					Category:   CategoryQuality,
					Message:    "Video resolution is below 720x480",
					Severity:   SeverityLow,
					Fixable:    true,
					Suggestion: "Re-export your video at 720x480 or higher",
				})
			}
		}
	}

	return issues
}

func countSentences(s string) int {
	count := 0
	for _, part := range sentenceSplit.Split(s, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}
