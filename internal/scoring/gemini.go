package scoring

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/handsigned/handsigned/backend/internal/metrics"
)

const (
	geminiAPIURL    = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	providerTimeout = 15 * time.Second

	// imageFetchRate bounds how fast we pull remote images on Gemini's
	// behalf; the API wants inline bytes, so every remote reference costs
	// us a fetch against an arbitrary origin.
	imageFetchRate  = 5
	imageFetchBurst = 5
)

// geminiScorer scores through the Gemini generateContent API. Gemini wants
// image bytes inline rather than by reference, so remote URLs are fetched and
// base64-encoded here; embedded data: references already carry base64 and are
// passed through without re-encoding.
type geminiScorer struct {
	apiKey       string
	model        string
	baseURL      string
	httpClient   *http.Client
	fetchLimiter *rate.Limiter
}

// geminiRequest is the request body for the Gemini API.
type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// geminiAPIResponse is the response from the Gemini API.
type geminiAPIResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func newGeminiScorer(apiKey, model, baseURL string) *geminiScorer {
	if baseURL == "" {
		baseURL = geminiAPIURL
	}
	return &geminiScorer{
		apiKey:       apiKey,
		model:        model,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: providerTimeout},
		fetchLimiter: rate.NewLimiter(imageFetchRate, imageFetchBurst),
	}
}

func (s *geminiScorer) Name() string { return "gemini" }

func (s *geminiScorer) Score(ctx context.Context, req ScoreRequest) (*Outcome, error) {
	parts := []geminiPart{
		{Text: systemPrompt},
		{Text: userPrompt(req)},
	}

	usedImage := false
	if inline := s.resolveImage(ctx, req.ImageURL); inline != nil {
		parts = append(parts, geminiPart{InlineData: inline})
		usedImage = true
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
		GenerationConfig: geminiGenConfig{
			Temperature:     0.2,
			MaxOutputTokens: 100,
		},
	}

	reqJSON, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf(s.baseURL, s.model) + "?key=" + s.apiKey
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	debugLog("gemini request: model=%s, image=%v", s.model, usedImage)

	startTime := time.Now()
	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("gemini", "network").Inc()
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.ProviderLatency.WithLabelValues("gemini").Observe(time.Since(startTime).Seconds())

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("gemini", "read").Inc()
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrorsTotal.WithLabelValues("gemini", "api").Inc()
		debugLog("gemini API error: status=%d body=%s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var apiResp geminiAPIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("gemini", "parse").Inc()
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	if apiResp.Error != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("gemini", "api").Inc()
		return nil, fmt.Errorf("API error %d: %s", apiResp.Error.Code, apiResp.Error.Message)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		metrics.ProviderErrorsTotal.WithLabelValues("gemini", "empty").Inc()
		return nil, fmt.Errorf("no response from Gemini")
	}

	score, err := extractScore(apiResp.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("gemini", "score").Inc()
		return nil, err
	}

	return &Outcome{
		Score:     score,
		Provider:  "gemini",
		Model:     s.model,
		UsedImage: &usedImage,
	}, nil
}

// resolveImage turns an image reference into inline data, or nil when there
// is no usable image. A failed remote fetch logs a warning and returns nil;
// image absence degrades the request to text-only, it never fails it.
func (s *geminiScorer) resolveImage(ctx context.Context, ref string) *geminiInlineData {
	// Classify first: parseDataURL alone would also split references whose
	// media type is not a type/subtype pair, which classify as no-image.
	if isDataURL(ref) {
		if mediaType, data, ok := parseDataURL(ref); ok {
			return &geminiInlineData{MimeType: mediaType, Data: data}
		}
		return nil
	}
	if !isHTTPURL(ref) {
		return nil
	}

	inline, err := s.fetchImage(ctx, ref)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("gemini", "image_fetch").Inc()
		infoLog("failed to fetch image for Gemini, proceeding without image: %v", err)
		return nil
	}
	return inline
}

func (s *geminiScorer) fetchImage(ctx context.Context, url string) (*geminiInlineData, error) {
	if err := s.fetchLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("fetch limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// Best effort media type; if the origin declares none, assume JPEG.
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return &geminiInlineData{
		MimeType: contentType,
		Data:     base64.StdEncoding.EncodeToString(raw),
	}, nil
}
