package scoring

import (
	"math"
	"unicode/utf16"
)

// The offline scorer is the guaranteed terminal path of the fallback chain:
// a pure function over the request text that needs no network and cannot
// fail. Scores land in [50,100] so demo listings always look plausible, and
// identical input always yields the identical score.

const seedPrefixLimit = 64

// SeededScore hashes the seed string with an FNV-1a-style rolling hash over
// its UTF-16 code units and maps the result onto [50,100]. The hash must stay
// bit-for-bit stable: scores are persisted on listings and replayed in demos.
func SeededScore(seed string) int {
	return scoreFromUnits(utf16.Encode([]rune(seed)))
}

func scoreFromUnits(units []uint16) int {
	h := uint32(2166136261)
	for _, c := range units {
		h ^= uint32(c)
		h += (h << 1) + (h << 4) + (h << 7) + (h << 8) + (h << 24)
	}
	rng := float64(h) / float64(0xffffffff)
	return int(math.Round(50 + rng*50))
}

// offlineScore runs the deterministic scorer over the request's seed units.
func offlineScore(req ScoreRequest) int {
	return scoreFromUnits(demoSeedUnits(req))
}

// demoSeedUnits joins the request fields into the hash input. Only the first
// 64 UTF-16 code units of the image reference participate, so huge embedded
// data: URLs hash in constant time. The truncation happens on the code-unit
// slice itself; converting a split surrogate pair back through a string would
// replace the lone surrogate with U+FFFD and change the hash.
func demoSeedUnits(req ScoreRequest) []uint16 {
	units := utf16.Encode([]rune(req.Title + "|" + req.Description + "|"))
	ref := utf16.Encode([]rune(req.ImageURL))
	if len(ref) > seedPrefixLimit {
		ref = ref[:seedPrefixLimit]
	}
	return append(units, ref...)
}
