package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pulsar/internal/handler"
	"pulsar/internal/service"
	"pulsar/internal/validator"
)

func validateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := validator.NewEngine(validator.NewStaticCatalog())
	svc := service.NewSubmissionService(nil, nil, nil, engine, 0, 60, zap.NewNop())
	h := handler.NewSubmissionHandler(svc)

	r := gin.New()
	r.POST("/api/v1/submissions/validate", h.Validate)
	return r
}

func TestSubmissionHandler_Validate_CleanDocument(t *testing.T) {
	r := validateRouter()

	body := `{
		"contentType": "image",
		"title": "Golden Hour at the Pier",
		"description": "Captured just before sunset. The light made everything glow softly.",
		"content": "s3://pulsar/submissions/abc123",
		"challengeId": "b7f1f3c2-27a5-4f08-9a6e-1c4f4b15d20f",
		"metadata": {"format": "jpg", "fileSizeBytes": 5242880},
		"customFields": {"ridingExperience": "expert", "safetyGearUsed": true}
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success    bool `json:"success"`
		Validation struct {
			IsValid                bool     `json:"isValid"`
			Score                  int      `json:"score"`
			ReadinessLevel         string   `json:"readinessLevel"`
			ChallengeSpecificScore int      `json:"challengeSpecificScore"`
			Suggestions            []string `json:"suggestions"`
		} `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.True(t, resp.Validation.IsValid)
	assert.Equal(t, 100, resp.Validation.Score)
	assert.Equal(t, "excellent", resp.Validation.ReadinessLevel)
	assert.Equal(t, 0, resp.Validation.ChallengeSpecificScore)
	assert.NotEmpty(t, resp.Validation.Suggestions)
}

func TestSubmissionHandler_Validate_IncompleteDocument(t *testing.T) {
	r := validateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/validate", strings.NewReader(`{"title": "Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success    bool `json:"success"`
		Validation struct {
			IsValid        bool   `json:"isValid"`
			ReadinessLevel string `json:"readinessLevel"`
			Issues         []struct {
				Kind     string `json:"kind"`
				Category string `json:"category"`
			} `json:"issues"`
		} `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.False(t, resp.Validation.IsValid)
	assert.Equal(t, "not-ready", resp.Validation.ReadinessLevel)
	assert.NotEmpty(t, resp.Validation.Issues)
}

func TestSubmissionHandler_Validate_MalformedBody(t *testing.T) {
	r := validateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/validate", strings.NewReader(`{"title": `))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}
