package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pulsar/internal/domain"
	"pulsar/internal/port"
	"pulsar/internal/service"
	"pulsar/internal/validator/content"
)

// SubmissionHandler handles submission lifecycle endpoints.
type SubmissionHandler struct {
	submissionService service.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

type submissionRequest struct {
	ChallengeID  uuid.UUID              `json:"challenge_id" binding:"required"`
	ContentType  domain.ContentType     `json:"content_type" binding:"required"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	ContentKey   string                 `json:"content_key"`
	Metadata     content.Metadata       `json:"metadata"`
	Tags         []string               `json:"tags"`
	CustomFields map[string]interface{} `json:"custom_fields"`
}

// Create handles POST /api/v1/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "challenge_id and content_type are required")
		return
	}

	sub, err := h.submissionService.CreateDraft(c.Request.Context(), &service.CreateSubmissionInput{
		ChallengeID:  req.ChallengeID,
		UserID:       userID,
		ContentType:  req.ContentType,
		Title:        req.Title,
		Description:  req.Description,
		ContentKey:   req.ContentKey,
		Metadata:     req.Metadata,
		Tags:         req.Tags,
		CustomFields: req.CustomFields,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, sub)
}

// Update handles PUT /api/v1/submissions/:id
func (h *SubmissionHandler) Update(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid submission ID")
		return
	}

	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "challenge_id and content_type are required")
		return
	}

	sub, err := h.submissionService.UpdateDraft(c.Request.Context(), submissionID, userID, &service.UpdateSubmissionInput{
		Title:        req.Title,
		Description:  req.Description,
		ContentKey:   req.ContentKey,
		Metadata:     req.Metadata,
		Tags:         req.Tags,
		CustomFields: req.CustomFields,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, sub)
}

// Validate handles POST /api/v1/submissions/validate
// @Summary      Validate a submission
// @Description  Scores the submission document without persisting anything; the frontend calls this while the user edits
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Success      200 {object} validator.ValidationResult
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /submissions/validate [post]
func (h *SubmissionHandler) Validate(c *gin.Context) {
	var doc content.Submission
	if err := c.ShouldBindJSON(&doc); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed submission document")
		return
	}

	result, err := h.submissionService.Validate(c.Request.Context(), &doc)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"validation": result,
	})
}

// Submit handles POST /api/v1/submissions/:id/submit
// @Summary      Submit a draft
// @Description  Runs validation against the stored draft and marks it submitted when it clears the challenge minimum score
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission UUID"
// @Success      200 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Security     BearerAuth
// @Router       /submissions/{id}/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid submission ID")
		return
	}

	sub, result, err := h.submissionService.Submit(c.Request.Context(), submissionID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotReady) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success":    false,
				"error":      &APIError{Code: "SUBMISSION_NOT_READY", Message: "submission did not pass validation"},
				"validation": result,
			})
			return
		}
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"submission": sub,
		"validation": result,
	})
}

// Get handles GET /api/v1/submissions/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid submission ID")
		return
	}

	view, err := h.submissionService.Get(c.Request.Context(), submissionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// Gallery handles GET /api/v1/challenges/:id/submissions
func (h *SubmissionHandler) Gallery(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	filters := &port.SubmissionFilters{Tag: c.Query("tag")}
	if raw := c.Query("content_type"); raw != "" {
		ct := domain.ContentType(raw)
		if !domain.ValidContentTypes[ct] {
			RespondError(c, http.StatusBadRequest, "INVALID_CONTENT_TYPE", "allowed content types: image, video, audio, text")
			return
		}
		filters.ContentType = &ct
	}

	offset, limit := parsePagination(c)

	views, total, err := h.submissionService.ListGallery(c.Request.Context(), challengeID, filters, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, views, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListMine handles GET /api/v1/submissions/mine
func (h *SubmissionHandler) ListMine(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	subs, total, err := h.submissionService.ListByUser(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, subs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Delete handles DELETE /api/v1/submissions/:id
func (h *SubmissionHandler) Delete(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid submission ID")
		return
	}

	if err := h.submissionService.Delete(c.Request.Context(), submissionID, userID, role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
