package scoring

import (
	"log"
	"os"
	"strings"
)

var scoringDebugEnabled = false

func init() {
	// Enable debug logging if SCORING_DEBUG=1 or SCORING_DEBUG=true
	if v := os.Getenv("SCORING_DEBUG"); v != "" {
		v = strings.ToLower(v)
		scoringDebugEnabled = v == "1" || v == "true" || v == "yes"
		if scoringDebugEnabled {
			log.Println("[SCORING] Debug logging: ENABLED")
		}
	}
}

// debugLog logs only when SCORING_DEBUG is enabled.
// Use this for verbose per-request details, prompt sizes, raw provider text, etc.
func debugLog(format string, args ...interface{}) {
	if scoringDebugEnabled {
		log.Printf("[SCORING DEBUG] "+format, args...)
	}
}

// infoLog always logs important scoring events.
// Use this for provider fallback triggers, API errors, startup state, etc.
func infoLog(format string, args ...interface{}) {
	log.Printf("[SCORING] "+format, args...)
}
