package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pulsar/internal/domain"
	"pulsar/internal/service"
)

// ChallengeHandler handles challenge management endpoints.
type ChallengeHandler struct {
	challengeService service.ChallengeService
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(challengeService service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// Create handles POST /api/v1/challenges
func (h *ChallengeHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req struct {
		Title        string    `json:"title" binding:"required"`
		Description  string    `json:"description"`
		Theme        string    `json:"theme"`
		MinimumScore int       `json:"minimum_score"`
		StartsAt     time.Time `json:"starts_at" binding:"required"`
		EndsAt       time.Time `json:"ends_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title, starts_at and ends_at are required")
		return
	}

	challenge, err := h.challengeService.Create(c.Request.Context(), &service.CreateChallengeInput{
		Title:        req.Title,
		Description:  req.Description,
		Theme:        req.Theme,
		MinimumScore: req.MinimumScore,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		CreatedBy:    userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, challenge)
}

// List handles GET /api/v1/challenges
// @Summary      List challenges
// @Description  Lists challenges, optionally filtered by status
// @Tags         challenges
// @Produce      json
// @Param        status query string false "Challenge status" Enums(draft, active, voting, completed)
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.Challenge,meta=PagMeta}
// @Failure      400 {object} APIResponse
// @Router       /challenges [get]
func (h *ChallengeHandler) List(c *gin.Context) {
	var status *domain.ChallengeStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.ChallengeStatus(raw)
		if !domain.ValidChallengeStatuses[s] {
			RespondError(c, http.StatusBadRequest, "INVALID_STATUS", "allowed statuses: draft, active, voting, completed")
			return
		}
		status = &s
	}

	offset, limit := parsePagination(c)

	challenges, total, err := h.challengeService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, challenges, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/challenges/:id
func (h *ChallengeHandler) GetByID(c *gin.Context) {
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

	RespondOK(c, challenge)
}

// Update handles PUT /api/v1/challenges/:id
func (h *ChallengeHandler) Update(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	var req struct {
		Title        string    `json:"title" binding:"required"`
		Description  string    `json:"description"`
		Theme        string    `json:"theme"`
		MinimumScore int       `json:"minimum_score"`
		StartsAt     time.Time `json:"starts_at" binding:"required"`
		EndsAt       time.Time `json:"ends_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title, starts_at and ends_at are required")
		return
	}

	challenge, err := h.challengeService.Update(c.Request.Context(), challengeID, &service.UpdateChallengeInput{
		Title:        req.Title,
		Description:  req.Description,
		Theme:        req.Theme,
		MinimumScore: req.MinimumScore,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, challenge)
}

// Delete handles DELETE /api/v1/challenges/:id
func (h *ChallengeHandler) Delete(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	if err := h.challengeService.Delete(c.Request.Context(), challengeID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// UpdateStatus handles PATCH /api/v1/challenges/:id/status
// @Summary      Advance challenge status
// @Description  Moves a challenge along draft -> active -> voting -> completed; completion selects and announces the winner
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Param        id path string true "Challenge UUID"
// @Success      200 {object} APIResponse{data=domain.Challenge}
// @Failure      409 {object} APIResponse
// @Security     BearerAuth
// @Router       /challenges/{id}/status [patch]
func (h *ChallengeHandler) UpdateStatus(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	var req struct {
		Status domain.ChallengeStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !domain.ValidChallengeStatuses[req.Status] {
		RespondError(c, http.StatusBadRequest, "INVALID_STATUS", "allowed statuses: draft, active, voting, completed")
		return
	}

	challenge, err := h.challengeService.UpdateStatus(c.Request.Context(), challengeID, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, challenge)
}

// AddRule handles POST /api/v1/challenges/:id/rules
func (h *ChallengeHandler) AddRule(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	var req struct {
		Field      string          `json:"field" binding:"required"`
		RuleType   domain.RuleType `json:"rule_type" binding:"required"`
		RuleConfig json.RawMessage `json:"rule_config"`
		Message    string          `json:"message"`
		Severity   string          `json:"severity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "field and rule_type are required")
		return
	}

	severity := domain.RuleSeverity(req.Severity)
	if severity == "" {
		severity = domain.RuleSeverityWarning
	}

	rule := &domain.ChallengeValidationRule{
		ChallengeID: challengeID,
		Field:       req.Field,
		RuleType:    req.RuleType,
		RuleConfig:  req.RuleConfig,
		Message:     req.Message,
		Severity:    severity,
		CreatedBy:   userID,
	}
	if err := h.challengeService.AddRule(c.Request.Context(), rule); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rule)
}

// ListRules handles GET /api/v1/challenges/:id/rules
func (h *ChallengeHandler) ListRules(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	rules, err := h.challengeService.ListRules(c.Request.Context(), challengeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rules)
}

// DeleteRule handles DELETE /api/v1/challenges/:id/rules/:ruleId
func (h *ChallengeHandler) DeleteRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("ruleId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid rule ID")
		return
	}

	if err := h.challengeService.DeleteRule(c.Request.Context(), ruleID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// AddRequirement handles POST /api/v1/challenges/:id/requirements
func (h *ChallengeHandler) AddRequirement(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	var req struct {
		AppliesToType      string   `json:"applies_to_type" binding:"required"`
		AllowedFormats     []string `json:"allowed_formats"`
		MaxSizeBytes       int64    `json:"max_size_bytes"`
		MinResolution      string   `json:"min_resolution"`
		MaxDurationSeconds *int     `json:"max_duration_seconds"`
		RequiredFields     []string `json:"required_fields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "applies_to_type is required")
		return
	}

	requirement := &domain.ContentRequirement{
		ChallengeID:        challengeID,
		AppliesToType:      req.AppliesToType,
		AllowedFormats:     req.AllowedFormats,
		MaxSizeBytes:       req.MaxSizeBytes,
		MinResolution:      req.MinResolution,
		MaxDurationSeconds: req.MaxDurationSeconds,
		RequiredFields:     req.RequiredFields,
	}
	if err := h.challengeService.AddRequirement(c.Request.Context(), requirement); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, requirement)
}

// ListRequirements handles GET /api/v1/challenges/:id/requirements
func (h *ChallengeHandler) ListRequirements(c *gin.Context) {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid challenge ID")
		return
	}

	requirements, err := h.challengeService.ListRequirements(c.Request.Context(), challengeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, requirements)
}

// DeleteRequirement handles DELETE /api/v1/challenges/:id/requirements/:reqId
func (h *ChallengeHandler) DeleteRequirement(c *gin.Context) {
	reqID, err := uuid.Parse(c.Param("reqId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid requirement ID")
		return
	}

	if err := h.challengeService.DeleteRequirement(c.Request.Context(), reqID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
