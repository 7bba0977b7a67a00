package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents a platform user. Authentication happens in an external
// identity provider; this row carries the profile the rest of the platform
// needs (display name for galleries and leaderboards, email for winner
// announcements).
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Challenge represents a timed creative challenge users submit content to.
type Challenge struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	Title        string          `db:"title" json:"title"`
	Description  string          `db:"description" json:"description"`
	Theme        string          `db:"theme" json:"theme"`
	Status       ChallengeStatus `db:"status" json:"status"`
	MinimumScore int             `db:"minimum_score" json:"minimum_score"`
	WinnerID     *uuid.UUID      `db:"winner_id" json:"winner_id"`
	StartsAt     time.Time       `db:"starts_at" json:"starts_at"`
	EndsAt       time.Time       `db:"ends_at" json:"ends_at"`
	CreatedBy    uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// ChallengeValidationRule is a configurable per-challenge validation rule.
// RuleConfig is a rule-type-specific payload, e.g. {"minLength": 50} or
// {"requiredTags": ["pulsar"]}.
type ChallengeValidationRule struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	ChallengeID uuid.UUID       `db:"challenge_id" json:"challenge_id"`
	Field       string          `db:"field" json:"field"`
	RuleType    RuleType        `db:"rule_type" json:"rule_type"`
	RuleConfig  json.RawMessage `db:"rule_config" json:"rule_config"`
	Message     string          `db:"message" json:"message"`
	Severity    RuleSeverity    `db:"severity" json:"severity"`
	IsActive    bool            `db:"is_active" json:"is_active"`
	CreatedBy   uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// ContentRequirement is a per-challenge technical requirement applied to
// submissions whose content type matches AppliesToType ("any" matches all).
// RequiredFields is declared and exposed for clients but not independently
// enforced beyond the presence checks the engine already runs.
type ContentRequirement struct {
	ID                 uuid.UUID   `db:"id" json:"id"`
	ChallengeID        uuid.UUID   `db:"challenge_id" json:"challenge_id"`
	AppliesToType      string      `db:"applies_to_type" json:"applies_to_type"`
	AllowedFormats     StringList  `db:"allowed_formats" json:"allowed_formats"`
	MaxSizeBytes       int64       `db:"max_size_bytes" json:"max_size_bytes"`
	MinResolution      string      `db:"min_resolution" json:"min_resolution"`
	MaxDurationSeconds *int        `db:"max_duration_seconds" json:"max_duration_seconds"`
	RequiredFields     StringList  `db:"required_fields" json:"required_fields"`
	CreatedAt          time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time   `db:"updated_at" json:"updated_at"`
}

// ChallengeValidationConfig bundles everything the validation engine needs
// for one challenge: its active rules, its content requirements, and the
// minimum readiness score required to submit.
type ChallengeValidationConfig struct {
	ChallengeID  uuid.UUID                 `json:"challenge_id"`
	Rules        []ChallengeValidationRule `json:"rules"`
	Requirements []ContentRequirement      `json:"requirements"`
	MinimumScore int                       `json:"minimum_score"`
}

// Submission represents a user's entry into a challenge.
type Submission struct {
	ID                uuid.UUID        `db:"id" json:"id"`
	ChallengeID       uuid.UUID        `db:"challenge_id" json:"challenge_id"`
	UserID            uuid.UUID        `db:"user_id" json:"user_id"`
	ContentType       ContentType      `db:"content_type" json:"content_type"`
	Title             string           `db:"title" json:"title"`
	Description       string           `db:"description" json:"description"`
	ContentKey        string           `db:"content_key" json:"content_key"`
	Metadata          json.RawMessage  `db:"metadata" json:"metadata"`
	Tags              StringList       `db:"tags" json:"tags"`
	CustomFields      json.RawMessage  `db:"custom_fields" json:"custom_fields"`
	Status            SubmissionStatus `db:"status" json:"status"`
	ValidationScore   int              `db:"validation_score" json:"validation_score"`
	ValidationResults json.RawMessage  `db:"validation_results" json:"validation_results"`
	SubmittedAt       *time.Time       `db:"submitted_at" json:"submitted_at"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updated_at"`
}

// Vote represents a user's vote for a submission. One vote per user per
// submission, enforced by a unique constraint.
type Vote struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SubmissionID uuid.UUID `db:"submission_id" json:"submission_id"`
	ChallengeID  uuid.UUID `db:"challenge_id" json:"challenge_id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// LeaderboardEntry is one ranked row of a challenge leaderboard.
type LeaderboardEntry struct {
	Rank            int       `db:"rank" json:"rank"`
	SubmissionID    uuid.UUID `db:"submission_id" json:"submission_id"`
	Title           string    `db:"title" json:"title"`
	ContentType     string    `db:"content_type" json:"content_type"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	DisplayName     string    `db:"display_name" json:"display_name"`
	Votes           int       `db:"votes" json:"votes"`
	ValidationScore int       `db:"validation_score" json:"validation_score"`
	SubmittedAt     time.Time `db:"submitted_at" json:"submitted_at"`
}

// StringList is a []string stored as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
}
