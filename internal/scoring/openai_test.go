package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func openAIBackend(t *testing.T, content string, status int, captured *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
			return
		}
		resp := map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIScore(t *testing.T) {
	var captured map[string]interface{}
	srv := openAIBackend(t, `Here you go: {"score": 73}`, http.StatusOK, &captured)
	defer srv.Close()

	scorer := newOpenAIScorer("test-key", "gpt-4o-mini", srv.URL+"/v1")
	out, err := scorer.Score(context.Background(), ScoreRequest{
		Title:    "Sunset",
		ImageURL: "https://example.com/a.jpg",
	})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if out.Score != 73 {
		t.Errorf("score = %d, want 73", out.Score)
	}
	if out.Provider != "openai" || out.Model != "gpt-4o-mini" {
		t.Errorf("provider/model = %s/%s", out.Provider, out.Model)
	}
	if out.UsedImage == nil || !*out.UsedImage {
		t.Errorf("usedImage should be true for a remote reference")
	}

	// The remote reference must be attached verbatim, no local fetch.
	raw, _ := json.Marshal(captured["messages"])
	if !json.Valid(raw) {
		t.Fatal("messages did not round-trip")
	}
	var messages []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(raw, &messages); err != nil {
		t.Fatalf("failed to parse messages: %v", err)
	}
	if len(messages) != 2 || messages[0].Role != "system" || messages[1].Role != "user" {
		t.Fatalf("unexpected message layout: %+v", messages)
	}
	var userParts []struct {
		Type     string `json:"type"`
		ImageURL *struct {
			URL string `json:"url"`
		} `json:"image_url"`
	}
	if err := json.Unmarshal(messages[1].Content, &userParts); err != nil {
		t.Fatalf("user content is not multi-part: %v", err)
	}
	if len(userParts) != 2 || userParts[1].Type != "image_url" || userParts[1].ImageURL == nil ||
		userParts[1].ImageURL.URL != "https://example.com/a.jpg" {
		t.Errorf("image part not attached verbatim: %+v", userParts)
	}
}

func TestOpenAIScoreNoImageForPlainRef(t *testing.T) {
	srv := openAIBackend(t, `{"score": 50}`, http.StatusOK, nil)
	defer srv.Close()

	scorer := newOpenAIScorer("test-key", "gpt-4o-mini", srv.URL+"/v1")
	out, err := scorer.Score(context.Background(), ScoreRequest{Title: "x", ImageURL: "not-a-url"})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if out.UsedImage == nil || *out.UsedImage {
		t.Errorf("usedImage should be false for an unclassifiable reference")
	}
}

func TestOpenAIScoreFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		status  int
	}{
		{"auth error", "", http.StatusUnauthorized},
		{"no json in content", "seventy-ish", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := openAIBackend(t, tt.content, tt.status, nil)
			defer srv.Close()

			scorer := newOpenAIScorer("test-key", "gpt-4o-mini", srv.URL+"/v1")
			if _, err := scorer.Score(context.Background(), ScoreRequest{Title: "x"}); err == nil {
				t.Fatal("expected a provider error")
			}
		})
	}
}
