package scoring

// ScoreRequest is the validated form of a scoring call. ImageURL may be
// empty, a remote URL, or an embedded data: reference; it is classified at
// resolution time, not here.
type ScoreRequest struct {
	Title       string
	Description string
	ImageURL    string
}

// Outcome is the externally visible scoring result. Model and UsedImage are
// only populated when a real provider produced the score; the offline demo
// path omits both.
type Outcome struct {
	Score     int    `json:"score"`
	Provider  string `json:"provider"`
	Model     string `json:"model,omitempty"`
	UsedImage *bool  `json:"usedImage,omitempty"`
}
