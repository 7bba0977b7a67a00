package content

import "strings"

const (
	minTitleLength       = 3
	maxTitleLength       = 100
	minDescriptionLength = 10
)

// CheckBasic verifies title, description, and content payload presence.
func CheckBasic(sub *Submission) []Issue {
	var issues []Issue

	if len(strings.TrimSpace(sub.Title)) < minTitleLength {
		issues = append(issues, Issue{
			Kind:       KindError,
			Category:   CategoryContent,
			Message:    "Title is required and must be at least 3 characters",
			Severity:   SeverityHigh,
			Fixable:    true,
			Suggestion: "Add a descriptive title of at least 3 characters",
		})
	}
	if len(sub.Title) > maxTitleLength {
		issues = append(issues, Issue{
			Kind:       KindWarning,
			Category:   CategoryContent,
			Message:    "Title is longer than 100 characters",
			Severity:   SeverityMedium,
			Fixable:    true,
			Suggestion: "Shorten your title to 100 characters or fewer",
		})
	}
	if len(strings.TrimSpace(sub.Description)) < minDescriptionLength {
		issues = append(issues, Issue{
			Kind:       KindWarning,
			Category:   CategoryContent,
			Message:    "Description should be at least 10 characters",
			Severity:   SeverityMedium,
			Fixable:    true,
			Suggestion: "Write a description of at least 10 characters",
		})
	}
	if sub.Content == "" {
		// No payload at all means there is nothing the user can tweak to fix
		// this submission.
		issues = append(issues, Issue{
			Kind:     KindError,
			Category: CategoryContent,
			Message:  "Submission has no content",
			Severity: SeverityCritical,
			Fixable:  false,
		})
	}

	return issues
}
