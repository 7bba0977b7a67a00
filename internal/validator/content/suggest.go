package content

import "pulsar/internal/domain"

const maxSuggestions = 5

// General tips appended after issue-derived suggestions. Later entries are
// dropped when fixable-issue suggestions already fill the quota.
const (
	tipDurationResolution = "Double-check your content's duration and resolution against the challenge requirements"
	tipDescriptionLength  = "Expand your description to at least 50 characters to give voters more context"
	tipPreview            = "Preview your submission before submitting"
	tipTheme              = "Make sure your content aligns with the challenge theme"
)

// BuildSuggestions assembles the deduplicated, capped suggestion list:
// fixable-issue suggestions in first-seen order, then conditional tips, then
// two general tips.
func BuildSuggestions(sub *Submission, issues []Issue) []string {
	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool)

	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		suggestions = append(suggestions, s)
	}

	for _, issue := range issues {
		if issue.Fixable {
			add(issue.Suggestion)
		}
	}

	if sub.ContentType == domain.ContentTypeVideo || sub.ContentType == domain.ContentTypeAudio {
		add(tipDurationResolution)
	}
	if len(sub.Description) < 50 {
		add(tipDescriptionLength)
	}
	add(tipPreview)
	add(tipTheme)

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
