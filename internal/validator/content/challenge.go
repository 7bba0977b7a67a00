package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"pulsar/internal/domain"
)

// RuleConfig is the decoded rule-type-specific payload of a challenge
// validation rule. Unknown keys are ignored; a malformed payload decodes to
// the zero value and the rule becomes a no-op.
type RuleConfig struct {
	MinLength    int      `json:"minLength"`
	RequiredTags []string `json:"requiredTags"`
}

func decodeRuleConfig(raw json.RawMessage) RuleConfig {
	var cfg RuleConfig
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &cfg)
	}
	return cfg
}

// mapRuleSeverity maps a rule's declared severity to an issue severity for
// required and description-length rules: error→high, warning→medium,
// info→low. Other checkers have their own mappings; do not reuse this one
// for them.
func mapRuleSeverity(s domain.RuleSeverity) Severity {
	switch s {
	case domain.RuleSeverityError:
		return SeverityHigh
	case domain.RuleSeverityWarning:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func mapRuleKind(s domain.RuleSeverity) IssueKind {
	switch s {
	case domain.RuleSeverityError:
		return KindError
	case domain.RuleSeverityWarning:
		return KindWarning
	default:
		return KindInfo
	}
}

// EvaluateRules applies a challenge's configured validation rules to the
// submission. Rule/field combinations the engine does not know how to
// evaluate are a deliberate no-op: the catalog may declare rules ahead of
// checker support.
func EvaluateRules(sub *Submission, rules []domain.ChallengeValidationRule) []Issue {
	var issues []Issue

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}

		switch {
		case rule.RuleType == domain.RuleTypeRequired:
			if issue, failed := checkRequiredField(sub, rule); failed {
				issues = append(issues, issue)
			}

		case rule.RuleType == domain.RuleTypeCustom && rule.Field == "description":
			cfg := decodeRuleConfig(rule.RuleConfig)
			if cfg.MinLength > 0 && len(sub.Description) < cfg.MinLength {
				kind := KindWarning
				if rule.Severity == domain.RuleSeverityError {
					kind = KindError
				}
				issues = append(issues, Issue{
					Kind:       kind,
					Category:   CategoryChallenge,
					Message:    ruleMessage(rule, fmt.Sprintf("Description must be at least %d characters for this challenge", cfg.MinLength)),
					Severity:   mapRuleSeverity(rule.Severity),
					Fixable:    true,
					Suggestion: fmt.Sprintf("Expand your description to at least %d characters", cfg.MinLength),
					RuleID:     ruleID(sub.ChallengeID, rule.Field),
				})
			}

		case rule.RuleType == domain.RuleTypeCustom && rule.Field == "tags":
			cfg := decodeRuleConfig(rule.RuleConfig)
			if len(cfg.RequiredTags) > 0 && !hasRequiredTag(sub.Tags, cfg.RequiredTags) {
				// Always a medium warning regardless of the rule's declared
				// severity.
				issues = append(issues, Issue{
					Kind:       KindWarning,
					Category:   CategoryChallenge,
					Message:    ruleMessage(rule, fmt.Sprintf("Submission should include one of the tags: %s", strings.Join(cfg.RequiredTags, ", "))),
					Severity:   SeverityMedium,
					Fixable:    true,
					Suggestion: fmt.Sprintf("Tag your submission with one of: %s", strings.Join(cfg.RequiredTags, ", ")),
					RuleID:     ruleID(sub.ChallengeID, rule.Field),
				})
			}
		}
	}

	return issues
}

func checkRequiredField(sub *Submission, rule domain.ChallengeValidationRule) (Issue, bool) {
	if strings.TrimSpace(fieldValue(sub, rule.Field)) != "" {
		return Issue{}, false
	}
	return Issue{
		Kind:     mapRuleKind(rule.Severity),
		Category: CategoryChallenge,
		Message:  ruleMessage(rule, fmt.Sprintf("%s is required for this challenge", rule.Field)),
		Severity: mapRuleSeverity(rule.Severity),
		Fixable:  true,
		RuleID:   ruleID(sub.ChallengeID, rule.Field),
	}, true
}

// fieldValue resolves a rule field against the submission: the three named
// document fields, tags, then custom fields.
func fieldValue(sub *Submission, field string) string {
	switch field {
	case "title":
		return sub.Title
	case "description":
		return sub.Description
	case "content":
		return sub.Content
	case "tags":
		return strings.Join(sub.Tags, ",")
	default:
		v, ok := sub.CustomFields[field]
		if !ok || v == nil {
			return ""
		}
		if s, isStr := v.(string); isStr {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
}

// hasRequiredTag reports whether any submission tag case-insensitively
// contains any required tag as a substring.
func hasRequiredTag(tags, required []string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, req := range required {
			if strings.Contains(lower, strings.ToLower(req)) {
				return true
			}
		}
	}
	return false
}

func ruleMessage(rule domain.ChallengeValidationRule, fallback string) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fallback
}

func ruleID(challengeID, field string) string {
	return challengeID + "-" + field
}

// CheckRequirements applies a challenge's content requirements to the
// submission. Issues come back labeled "technical"; the engine relabels them
// challenge-specific via AsChallengeIssues before merging.
func CheckRequirements(sub *Submission, reqs []domain.ContentRequirement) []Issue {
	var issues []Issue

	for _, req := range reqs {
		if req.AppliesToType != "any" && req.AppliesToType != string(sub.ContentType) {
			continue
		}

		if len(req.AllowedFormats) > 0 && sub.Metadata.Format != "" {
			format := strings.ToLower(sub.Metadata.Format)
			if !containsFold(req.AllowedFormats, format) {
				issues = append(issues, Issue{
					Kind:       KindError,
					Category:   CategoryTechnical,
					Message:    fmt.Sprintf("Format %q is not accepted by this challenge", format),
					Severity:   SeverityHigh,
					Fixable:    true,
					Suggestion: fmt.Sprintf("Use one of the challenge's accepted formats: %s", strings.Join(req.AllowedFormats, ", ")),
				})
			}
		}

		if req.MaxSizeBytes > 0 && sub.Metadata.FileSizeBytes != nil && *sub.Metadata.FileSizeBytes > req.MaxSizeBytes {
			issues = append(issues, Issue{
				Kind:       KindError,
				Category:   CategoryTechnical,
				Message:    fmt.Sprintf("File exceeds this challenge's %dMB size limit", req.MaxSizeBytes/(1024*1024)),
				Severity:   SeverityHigh,
				Fixable:    true,
				Suggestion: "Reduce your file size to meet the challenge limit",
			})
		}

		if req.MaxDurationSeconds != nil && sub.Metadata.Duration != nil && *sub.Metadata.Duration > float64(*req.MaxDurationSeconds) {
			issues = append(issues, Issue{
				Kind:       KindWarning,
				Category:   CategoryTechnical,
				Message:    fmt.Sprintf("Content is longer than this challenge's %ds limit", *req.MaxDurationSeconds),
				Severity:   SeverityMedium,
				Fixable:    true,
				Suggestion: fmt.Sprintf("Trim your content to %d seconds or less", *req.MaxDurationSeconds),
			})
		}

		if req.MinResolution != "" && sub.Metadata.Resolution != "" {
			minW, minH, minErr := ParseResolution(req.MinResolution)
			w, h, err := ParseResolution(sub.Metadata.Resolution)
			if minErr == nil && err == nil && (w < minW || h < minH) {
				// Resolution is a property of already-captured content; the
				// user cannot fix it without recreating the work.
				issues = append(issues, Issue{
					Kind:     KindWarning,
					Category: CategoryTechnical,
					Message:  fmt.Sprintf("Resolution is below this challenge's %s minimum", req.MinResolution),
					Severity: SeverityMedium,
					Fixable:  false,
				})
			}
		}
	}

	return issues
}
