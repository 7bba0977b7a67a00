package content

// IssueKind drives overall pass/fail: a submission is valid iff no issue has
// kind "error".
type IssueKind string

const (
	KindError   IssueKind = "error"
	KindWarning IssueKind = "warning"
	KindInfo    IssueKind = "info"
)

// IssueCategory identifies which checker produced an issue.
type IssueCategory string

const (
	CategoryContent    IssueCategory = "content"
	CategoryTechnical  IssueCategory = "technical"
	CategoryGuidelines IssueCategory = "guidelines"
	CategoryQuality    IssueCategory = "quality"
	CategoryChallenge  IssueCategory = "challenge-specific"
)

// Severity drives the magnitude of score deductions.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ReadinessLevel summarizes how ready a submission is.
type ReadinessLevel string

const (
	ReadinessNotReady         ReadinessLevel = "not-ready"
	ReadinessNeedsImprovement ReadinessLevel = "needs-improvement"
	ReadinessGood             ReadinessLevel = "good"
	ReadinessExcellent        ReadinessLevel = "excellent"
)

// Issue is a single detected problem with a submission.
type Issue struct {
	Kind       IssueKind     `json:"kind"`
	Category   IssueCategory `json:"category"`
	Message    string        `json:"message"`
	Severity   Severity      `json:"severity"`
	Fixable    bool          `json:"fixable"`
	Suggestion string        `json:"suggestion,omitempty"`
	RuleID     string        `json:"ruleId,omitempty"`
}

// AsChallengeIssues relabels requirement issues as challenge-specific before
// they are merged into the overall list. The requirement checker labels its
// own issues "technical"; callers see them namespaced to the challenge.
func AsChallengeIssues(issues []Issue) []Issue {
	out := make([]Issue, len(issues))
	for i, issue := range issues {
		issue.Category = CategoryChallenge
		out[i] = issue
	}
	return out
}
