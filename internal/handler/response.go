package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pulsar/internal/domain"
	"pulsar/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrChallengeNotFound):
		return http.StatusNotFound, "CHALLENGE_NOT_FOUND", "challenge not found"
	case errors.Is(err, domain.ErrSubmissionNotFound):
		return http.StatusNotFound, "SUBMISSION_NOT_FOUND", "submission not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "USER_NOT_FOUND", "user not found"
	case errors.Is(err, domain.ErrRuleNotFound):
		return http.StatusNotFound, "RULE_NOT_FOUND", "validation rule not found"
	case errors.Is(err, domain.ErrVoteNotFound):
		return http.StatusNotFound, "VOTE_NOT_FOUND", "vote not found"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already exists"
	case errors.Is(err, domain.ErrChallengeNotActive):
		return http.StatusConflict, "CHALLENGE_NOT_ACTIVE", "challenge is not accepting submissions"
	case errors.Is(err, domain.ErrChallengeNotVoting):
		return http.StatusConflict, "CHALLENGE_NOT_VOTING", "challenge is not open for voting"
	case errors.Is(err, domain.ErrChallengeCompleted):
		return http.StatusConflict, "CHALLENGE_COMPLETED", "challenge is already completed"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "INVALID_TRANSITION", "invalid challenge status transition"
	case errors.Is(err, domain.ErrSubmissionNotDraft):
		return http.StatusConflict, "SUBMISSION_NOT_DRAFT", "submission is no longer editable"
	case errors.Is(err, domain.ErrSubmissionNotReady):
		return http.StatusUnprocessableEntity, "SUBMISSION_NOT_READY", "submission did not pass validation; see validation results"
	case errors.Is(err, domain.ErrSelfVote):
		return http.StatusBadRequest, "SELF_VOTE", "cannot vote for your own submission"
	case errors.Is(err, domain.ErrNoSubmissions):
		return http.StatusConflict, "NO_SUBMISSIONS", "challenge has no eligible submissions"
	case errors.Is(err, domain.ErrValidationFailed):
		return http.StatusInternalServerError, "VALIDATION_FAILED", "validation could not be completed"
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway, "GENERATION_FAILED", "content generation failed"
	case errors.Is(err, domain.ErrStorageFailed):
		return http.StatusInternalServerError, "STORAGE_FAILED", "object storage operation failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// extractAuthContext extracts user ID and role from the request context.
// Returns false if auth context is missing (error response already written).
func extractAuthContext(c *gin.Context) (userID uuid.UUID, role domain.UserRole, ok bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, "", false
	}
	return userID, middleware.GetRole(c), true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
