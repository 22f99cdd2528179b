package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handsigned/handsigned/backend/internal/config"
	"github.com/handsigned/handsigned/backend/internal/scoring"
)

// Request bodies can carry embedded data: images; cap reads well above any
// reasonable payload but below anything pathological.
const maxScoreBodyBytes = 10 << 20 // 10MB

type ScoreHandler struct {
	svc *scoring.Service
	cfg *config.Config
}

func NewScoreHandler(svc *scoring.Service, cfg *config.Config) *ScoreHandler {
	return &ScoreHandler{svc: svc, cfg: cfg}
}

// Health reports the gateway's provider configuration. Always succeeds.
func (h *ScoreHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":               true,
		"provider":         h.cfg.Provider,
		"openaiConfigured": h.cfg.OpenAIAPIKey != "",
		"geminiConfigured": h.cfg.GeminiAPIKey != "",
		"openaiModel":      h.cfg.OpenAIModel,
		"geminiModel":      h.cfg.GeminiModel,
	})
}

// Score validates the request body and runs the fallback chain. The only
// error response is 400 for a malformed body; the chain itself always
// terminates in the offline scorer, so scoring cannot fail once validation
// passes.
func (h *ScoreHandler) Score(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxScoreBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "INVALID_REQUEST",
			"details": "failed to read request body",
		})
		return
	}

	req, err := scoring.ParseScoreRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "INVALID_REQUEST",
			"details": err.Error(),
		})
		return
	}

	// Bound total latency including the provider call and any image fetch.
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.ScoreTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.svc.Score(ctx, *req))
}
