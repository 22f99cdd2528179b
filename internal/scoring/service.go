package scoring

import (
	"context"

	"github.com/handsigned/handsigned/backend/internal/config"
	"github.com/handsigned/handsigned/backend/internal/metrics"
)

// providerScorer is the contract both backend adapters implement.
type providerScorer interface {
	Name() string
	Score(ctx context.Context, req ScoreRequest) (*Outcome, error)
}

// Service runs the fallback chain: the configured provider is attempted at
// most once, and any failure degrades straight to the deterministic offline
// scorer. No second provider is ever tried; that keeps worst-case latency at
// a single provider timeout.
type Service struct {
	provider string
	adapter  providerScorer
}

// NewService builds the scoring service from configuration. Only the selected
// provider's adapter is constructed, and only when its credential is present;
// otherwise every request flows to the offline scorer.
func NewService(cfg *config.Config) *Service {
	s := &Service{provider: cfg.Provider}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.ProviderAvailable(config.ProviderOpenAI) {
			s.adapter = newOpenAIScorer(cfg.OpenAIAPIKey, cfg.OpenAIModel, "")
		} else {
			infoLog("provider openai selected but OPENAI_API_KEY is not set; serving demo scores")
		}
	case config.ProviderGemini:
		if cfg.ProviderAvailable(config.ProviderGemini) {
			s.adapter = newGeminiScorer(cfg.GeminiAPIKey, cfg.GeminiModel, "")
		} else {
			infoLog("provider gemini selected but GEMINI_API_KEY is not set; serving demo scores")
		}
	}

	if s.adapter != nil {
		infoLog("scoring provider: %s", s.adapter.Name())
	} else {
		infoLog("scoring provider: demo (deterministic offline scorer)")
	}
	return s
}

// Score resolves a validated request to an Outcome. It never fails: the
// offline scorer is a pure function over the request text and is always
// available, so the scoring endpoint can only go down with the process.
func (s *Service) Score(ctx context.Context, req ScoreRequest) *Outcome {
	if s.adapter != nil {
		out, err := s.adapter.Score(ctx, req)
		if err == nil {
			metrics.ScoreRequestsTotal.WithLabelValues(out.Provider).Inc()
			return out
		}
		metrics.ProviderFallbacksTotal.WithLabelValues(s.adapter.Name()).Inc()
		infoLog("%s scoring failed, falling back to demo: %v", s.adapter.Name(), err)
	}

	metrics.ScoreRequestsTotal.WithLabelValues("demo").Inc()
	return &Outcome{
		Score:    offlineScore(req),
		Provider: "demo",
	}
}
