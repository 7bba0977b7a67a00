package content

import (
	"fmt"
	"strings"
)

// blockedKeywords is the fixed policy blocklist. Matching is plain substring
// containment on the lower-cased title+description, no word boundaries; the
// known false-positive on partial words is deliberate behavior.
var blockedKeywords = []string{"spam", "explicit", "harmful", "offensive"}

// rightsKeywords flag possible intellectual-property concerns.
var rightsKeywords = []string{"copyright", "trademark"}

// CheckGuidelines runs the keyword policy scan and the challenge-association
// check.
func CheckGuidelines(sub *Submission) []Issue {
	var issues []Issue
	text := strings.ToLower(sub.Title + " " + sub.Description)

	for _, kw := range blockedKeywords {
		if strings.Contains(text, kw) {
			issues = append(issues, Issue{
				Kind:       KindError,
				Category:   CategoryGuidelines,
				Message:    fmt.Sprintf("Content mentions the blocked term %q", kw),
				Severity:   SeverityCritical,
				Fixable:    true,
				Suggestion: "Remove flagged language from your title and description",
			})
		}
	}

	for _, kw := range rightsKeywords {
		if strings.Contains(text, kw) {
			issues = append(issues, Issue{
				Kind:       KindWarning,
				Category:   CategoryGuidelines,
				Message:    fmt.Sprintf("Content mentions %q; make sure you own the rights to this content", kw),
				Severity:   SeverityHigh,
				Fixable:    true,
				Suggestion: "Only submit content you have the rights to use",
			})
		}
	}

	if strings.TrimSpace(sub.ChallengeID) == "" {
		issues = append(issues, Issue{
			Kind:     KindError,
			Category: CategoryGuidelines,
			Message:  "Submission must be associated with a challenge",
			Severity: SeverityCritical,
			Fixable:  false,
		})
	}

	return issues
}
