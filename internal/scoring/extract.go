package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Providers are instructed to answer with strictly {"score": N}, but model
// output routinely arrives wrapped in prose or code fences. extractScore
// recovers the first brace-delimited object from the text and pulls a numeric
// score out of it. The match is single-object and non-nested; a stricter
// structured-output mode can replace this function without touching the
// adapter contract.
var jsonObjectPattern = regexp.MustCompile(`\{[^}]*\}`)

func extractScore(text string) (int, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return 0, fmt.Errorf("no JSON object in response text")
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(match), &obj); err != nil {
		return 0, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	score, err := coerceScore(obj["score"])
	if err != nil {
		return 0, err
	}
	return clamp(int(math.Round(score)), 0, 100), nil
}

func coerceScore(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, fmt.Errorf("score is not a number")
		}
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("score %q is not a number", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("response JSON has no numeric score field")
	}
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
