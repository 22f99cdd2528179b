package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/handsigned/handsigned/backend/internal/config"
)

type stubScorer struct {
	outcome *Outcome
	err     error
}

func (s *stubScorer) Name() string { return "stub" }

func (s *stubScorer) Score(ctx context.Context, req ScoreRequest) (*Outcome, error) {
	return s.outcome, s.err
}

func TestServiceUsesProviderOutcome(t *testing.T) {
	used := true
	want := &Outcome{Score: 42, Provider: "stub", Model: "m", UsedImage: &used}
	svc := &Service{provider: "stub", adapter: &stubScorer{outcome: want}}

	got := svc.Score(context.Background(), ScoreRequest{Title: "x"})
	if got != want {
		t.Errorf("Score = %+v, want provider outcome", got)
	}
}

func TestServiceFallsBackToDemoOnProviderError(t *testing.T) {
	svc := &Service{provider: "stub", adapter: &stubScorer{err: errors.New("auth failed")}}

	req := ScoreRequest{Title: "Sunset"}
	got := svc.Score(context.Background(), req)

	if got.Provider != "demo" {
		t.Errorf("provider = %q, want demo", got.Provider)
	}
	if got.Model != "" || got.UsedImage != nil {
		t.Errorf("demo outcome must omit model and usedImage: %+v", got)
	}
	if want := offlineScore(req); got.Score != want {
		t.Errorf("score = %d, want deterministic %d", got.Score, want)
	}
}

func TestNewServiceWithoutCredentialServesDemo(t *testing.T) {
	cfg := &config.Config{Provider: config.ProviderOpenAI} // identifier set, credential absent
	svc := NewService(cfg)

	if svc.adapter != nil {
		t.Fatal("adapter should not be constructed without a credential")
	}

	got := svc.Score(context.Background(), ScoreRequest{Title: "Sunset"})
	if got.Provider != "demo" {
		t.Errorf("provider = %q, want demo", got.Provider)
	}
}

func TestNewServiceDemoProvider(t *testing.T) {
	svc := NewService(&config.Config{Provider: config.ProviderDemo})
	if svc.adapter != nil {
		t.Fatal("demo mode must not construct any adapter")
	}
}

func TestServiceScoreIsDeterministicOffline(t *testing.T) {
	svc := NewService(&config.Config{Provider: config.ProviderDemo})
	req := ScoreRequest{Title: "Sunset", Description: "", ImageURL: ""}

	first := svc.Score(context.Background(), req)
	if first.Score < 50 || first.Score > 100 {
		t.Fatalf("offline score %d outside [50,100]", first.Score)
	}
	for i := 0; i < 5; i++ {
		if got := svc.Score(context.Background(), req); got.Score != first.Score {
			t.Fatalf("offline score not stable: %d then %d", first.Score, got.Score)
		}
	}
}
