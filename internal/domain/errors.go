package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrRuleNotFound        = errors.New("validation rule not found")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrChallengeNotActive  = errors.New("challenge is not accepting submissions")
	ErrChallengeNotVoting  = errors.New("challenge is not open for voting")
	ErrChallengeCompleted  = errors.New("challenge is already completed")
	ErrInvalidTransition   = errors.New("invalid challenge status transition")
	ErrSubmissionNotReady  = errors.New("submission did not pass validation")
	ErrSubmissionNotDraft  = errors.New("submission is not editable")
	ErrSelfVote            = errors.New("cannot vote for your own submission")
	ErrVoteNotFound        = errors.New("vote not found")
	ErrNoSubmissions       = errors.New("challenge has no eligible submissions")
	ErrValidationFailed    = errors.New("validation failed")
	ErrGenerationFailed    = errors.New("content generation failed")
	ErrStorageFailed       = errors.New("object storage operation failed")
)
