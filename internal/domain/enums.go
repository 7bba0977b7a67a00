package domain

// ContentType is the kind of creative content a submission carries.
type ContentType string

const (
	ContentTypeImage ContentType = "image"
	ContentTypeVideo ContentType = "video"
	ContentTypeAudio ContentType = "audio"
	ContentTypeText  ContentType = "text"
)

// ValidContentTypes enumerates the four supported content types. Values
// outside this set are a defined edge case: per-type size and format
// constraints simply do not apply to them.
var ValidContentTypes = map[ContentType]bool{
	ContentTypeImage: true,
	ContentTypeVideo: true,
	ContentTypeAudio: true,
	ContentTypeText:  true,
}

// ChallengeStatus is the lifecycle state of a challenge.
type ChallengeStatus string

const (
	ChallengeStatusDraft     ChallengeStatus = "draft"
	ChallengeStatusActive    ChallengeStatus = "active"
	ChallengeStatusVoting    ChallengeStatus = "voting"
	ChallengeStatusCompleted ChallengeStatus = "completed"
)

// ValidChallengeStatuses enumerates the allowed challenge statuses.
var ValidChallengeStatuses = map[ChallengeStatus]bool{
	ChallengeStatusDraft:     true,
	ChallengeStatusActive:    true,
	ChallengeStatusVoting:    true,
	ChallengeStatusCompleted: true,
}

// SubmissionStatus is the lifecycle state of a submission.
type SubmissionStatus string

const (
	SubmissionStatusDraft        SubmissionStatus = "draft"
	SubmissionStatusSubmitted    SubmissionStatus = "submitted"
	SubmissionStatusDisqualified SubmissionStatus = "disqualified"
)

// RuleType classifies a challenge validation rule.
type RuleType string

const (
	RuleTypeRequired RuleType = "required"
	RuleTypeFormat   RuleType = "format"
	RuleTypeSize     RuleType = "size"
	RuleTypeCustom   RuleType = "custom"
)

// RuleSeverity is the severity a challenge rule is declared with. It is the
// input vocabulary of rule configuration; each checker maps it to an issue
// severity with its own table.
type RuleSeverity string

const (
	RuleSeverityError   RuleSeverity = "error"
	RuleSeverityWarning RuleSeverity = "warning"
	RuleSeverityInfo    RuleSeverity = "info"
)

// UserRole defines the platform role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)
