package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulsar/internal/domain"
	"pulsar/internal/port"
	"pulsar/internal/service"
)

// GenerationHandler handles AI content generation endpoints.
type GenerationHandler struct {
	generationService service.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService service.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

// Generate handles POST /api/v1/generate
func (h *GenerationHandler) Generate(c *gin.Context) {
	if _, _, ok := extractAuthContext(c); !ok {
		return
	}

	var req struct {
		ContentType domain.ContentType `json:"content_type" binding:"required"`
		Prompt      string             `json:"prompt" binding:"required"`
		Style       string             `json:"style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "content_type and prompt are required")
		return
	}

	url, err := h.generationService.Generate(c.Request.Context(), &port.GenerateInput{
		ContentType: req.ContentType,
		Prompt:      req.Prompt,
		Style:       req.Style,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
