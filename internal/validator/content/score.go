package content

// Each origin list is scored in its own pass with its own weight table,
// filtered by severity only. Scoring off the merged list by category would
// mis-count relabeled issues; the per-origin structure is load-bearing.
type weightTable map[Severity]int

var (
	basicWeights     = weightTable{SeverityHigh: 15, SeverityMedium: 10, SeverityLow: 5}
	technicalWeights = weightTable{SeverityHigh: 20, SeverityMedium: 15}
	guidelineWeights = weightTable{SeverityCritical: 30, SeverityHigh: 20}
	qualityWeights   = weightTable{SeverityMedium: 10}
	challengeWeights = weightTable{SeverityCritical: 30, SeverityHigh: 20, SeverityMedium: 10}

	// challengeScoreWeights is the heavier table used for the independent
	// challenge-specific score.
	challengeScoreWeights = weightTable{SeverityCritical: 40, SeverityHigh: 25, SeverityMedium: 15, SeverityLow: 5}
)

func deductions(issues []Issue, w weightTable) int {
	total := 0
	for _, issue := range issues {
		total += w[issue.Severity]
	}
	return total
}

// OverallScore computes the 0-100 readiness score from the five origin
// lists.
func OverallScore(basic, technical, guidelines, quality, challenge []Issue) int {
	score := 100
	score -= deductions(basic, basicWeights)
	score -= deductions(technical, technicalWeights)
	score -= deductions(guidelines, guidelineWeights)
	score -= deductions(quality, qualityWeights)
	score -= deductions(challenge, challengeWeights)
	if score < 0 {
		score = 0
	}
	return score
}

// ChallengeScore computes the independent 0-100 challenge-specific score.
// A challenge with no configured rules scores 0.
func ChallengeScore(challengeIssues []Issue, configured bool) int {
	if !configured {
		return 0
	}
	score := 100 - deductions(challengeIssues, challengeScoreWeights)
	if score < 0 {
		score = 0
	}
	return score
}

// IsValid reports whether the submission passed: no issue of kind "error".
func IsValid(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Kind == KindError {
			return false
		}
	}
	return true
}

// Readiness derives the readiness level from the score and the merged issue
// list. Any error or critical issue forces not-ready regardless of score.
func Readiness(score int, issues []Issue) ReadinessLevel {
	for _, issue := range issues {
		if issue.Kind == KindError || issue.Severity == SeverityCritical {
			return ReadinessNotReady
		}
	}
	switch {
	case score >= 90:
		return ReadinessExcellent
	case score >= 75:
		return ReadinessGood
	default:
		return ReadinessNeedsImprovement
	}
}
