package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pulsar/internal/export"
	"pulsar/internal/service"
)

// LeaderboardHandler handles leaderboard and export endpoints.
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
	challengeService   service.ChallengeService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService service.LeaderboardService, challengeService service.ChallengeService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		challengeService:   challengeService,
	}
}

// Standings handles GET /api/v1/challenges/:id/leaderboard
// @Summary      Challenge leaderboard
// @Description  Ranked standings for a challenge, ordered by votes then validation score
// @Tags         leaderboard
// @Produce      json
// @Param        id path string true "Challenge UUID"
// @Success      200 {object} APIResponse{data=[]domain.LeaderboardEntry}
// @Failure      404 {object} APIResponse
// @Router       /challenges/{id}/leaderboard [get]
func (h *LeaderboardHandler) Standings(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	entries, err := h.leaderboardService.Standings(c.Request.Context(), challengeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entries)
}

// ExportCSV handles GET /api/v1/challenges/:id/leaderboard/export
func (h *LeaderboardHandler) ExportCSV(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	challenge, err := h.challengeService.GetByID(c.Request.Context(), challengeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(challenge.Title, "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.leaderboardService.ExportCSV(c.Request.Context(), challengeID, c.Writer); err != nil {
		HandleError(c, err)
		return
	}
}

// ExportXLSX handles GET /api/v1/challenges/:id/leaderboard/export.xlsx
func (h *LeaderboardHandler) ExportXLSX(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	challenge, err := h.challengeService.GetByID(c.Request.Context(), challengeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(challenge.Title, "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.leaderboardService.ExportXLSX(c.Request.Context(), challengeID, c.Writer); err != nil {
		HandleError(c, err)
		return
	}
}
