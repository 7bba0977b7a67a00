package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pulsar/internal/service"
)

// VoteHandler handles voting endpoints.
type VoteHandler struct {
	voteService service.VoteService
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// Cast handles POST /api/v1/submissions/:id/vote
func (h *VoteHandler) Cast(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid submission ID")
		return
	}

	if err := h.voteService.Cast(c.Request.Context(), submissionID, userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"voted": true})
}

// Remove handles DELETE /api/v1/submissions/:id/vote
func (h *VoteHandler) Remove(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid submission ID")
		return
	}

	if err := h.voteService.Remove(c.Request.Context(), submissionID, userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"voted": false})
}

// Count handles GET /api/v1/submissions/:id/votes
func (h *VoteHandler) Count(c *gin.Context) {
	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid submission ID")
		return
	}

	count, err := h.voteService.Count(c.Request.Context(), submissionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"votes": count})
}
