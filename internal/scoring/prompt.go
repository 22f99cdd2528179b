package scoring

const systemPrompt = `You are an expert art authenticity reviewer. Score the likelihood that an artwork was created by a human without AI generation. Respond ONLY with a JSON object: {"score": number from 0 to 100}. Higher is more human-made. Consider brushwork irregularities, compositional artifacts, text rendering, patterns, and cues from the description.`

// userPrompt renders the artwork metadata shared by both providers.
func userPrompt(req ScoreRequest) string {
	title := req.Title
	if title == "" {
		title = "(untitled)"
	}
	description := req.Description
	if description == "" {
		description = "(none)"
	}
	return "Title: " + title + "\nDescription: " + description + "\nReturn strictly JSON with a numeric score field."
}
