package scoring

import (
	"errors"
	"strings"
	"testing"
)

func TestParseScoreRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		want        ScoreRequest
		wantErr     bool
		errContains string
	}{
		{"all fields", `{"title":"Sunset","description":"oil","imageUrl":"https://x/a.jpg"}`,
			ScoreRequest{Title: "Sunset", Description: "oil", ImageURL: "https://x/a.jpg"}, false, ""},
		{"empty object", `{}`, ScoreRequest{}, false, ""},
		{"empty body", ``, ScoreRequest{}, false, ""},
		{"empty strings accepted", `{"title":"Sunset","description":"","imageUrl":""}`,
			ScoreRequest{Title: "Sunset"}, false, ""},
		{"unknown fields ignored", `{"title":"t","extra":42}`, ScoreRequest{Title: "t"}, false, ""},
		{"title wrong type", `{"title":5}`, ScoreRequest{}, true, "title"},
		{"title null", `{"title":null}`, ScoreRequest{}, true, "title"},
		{"description null", `{"description":null}`, ScoreRequest{}, true, "description"},
		{"imageUrl null", `{"imageUrl":null}`, ScoreRequest{}, true, "imageUrl"},
		{"description wrong type", `{"description":[1]}`, ScoreRequest{}, true, "description"},
		{"imageUrl wrong type", `{"imageUrl":{"u":"x"}}`, ScoreRequest{}, true, "imageUrl"},
		{"not an object", `[1,2,3]`, ScoreRequest{}, true, "JSON object"},
		{"not json", `hello`, ScoreRequest{}, true, "JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScoreRequest([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseScoreRequest(%q) succeeded, want error", tt.body)
				}
				var invalid *InvalidRequestError
				if !errors.As(err, &invalid) {
					t.Fatalf("error type = %T, want *InvalidRequestError", err)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should name %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScoreRequest(%q) error: %v", tt.body, err)
			}
			if *got != tt.want {
				t.Errorf("ParseScoreRequest(%q) = %+v, want %+v", tt.body, *got, tt.want)
			}
		})
	}
}
