package scoring

import "regexp"

// Image references come in two shapes: remote http(s) URLs and embedded
// data: URLs carrying a base64 payload. Classification is a literal prefix
// test; anything else means "no image". A malformed reference never fails a
// request, it just degrades to text-only scoring.

var (
	httpURLPattern = regexp.MustCompile(`(?i)^https?://`)
	dataURLPattern = regexp.MustCompile(`(?i)^data:\w+/.+;base64,`)
	dataURLParts   = regexp.MustCompile(`(?i)^data:([^;]+);base64,(.*)$`)
)

func isHTTPURL(ref string) bool {
	return httpURLPattern.MatchString(ref)
}

func isDataURL(ref string) bool {
	return dataURLPattern.MatchString(ref)
}

// parseDataURL splits a data:<mediaType>;base64,<payload> reference into its
// media type and still-encoded base64 payload. Decoding is left to the
// consumer; some providers accept base64 directly.
func parseDataURL(ref string) (mediaType, base64Data string, ok bool) {
	m := dataURLParts.FindStringSubmatch(ref)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
