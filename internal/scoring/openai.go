package scoring

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/handsigned/handsigned/backend/internal/metrics"
)

// openAIScorer scores through the OpenAI chat completions API. OpenAI accepts
// images by reference, so remote URLs and embedded data: references are both
// attached verbatim with no local fetch.
type openAIScorer struct {
	client *openai.Client
	model  string
}

func newOpenAIScorer(apiKey, model, baseURL string) *openAIScorer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: providerTimeout}
	return &openAIScorer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *openAIScorer) Name() string { return "openai" }

func (s *openAIScorer) Score(ctx context.Context, req ScoreRequest) (*Outcome, error) {
	includeImage := isHTTPURL(req.ImageURL) || isDataURL(req.ImageURL)

	parts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: userPrompt(req)},
	}
	if includeImage {
		parts = append(parts, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: req.ImageURL},
		})
	}

	startTime := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
	})
	metrics.ProviderLatency.WithLabelValues("openai").Observe(time.Since(startTime).Seconds())
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("openai", "api").Inc()
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		metrics.ProviderErrorsTotal.WithLabelValues("openai", "empty").Inc()
		return nil, fmt.Errorf("no choices in response")
	}

	content := resp.Choices[0].Message.Content
	debugLog("openai response: model=%s len=%d", s.model, len(content))

	score, err := extractScore(content)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("openai", "score").Inc()
		return nil, err
	}

	return &Outcome{
		Score:     score,
		Provider:  "openai",
		Model:     s.model,
		UsedImage: &includeImage,
	}, nil
}
