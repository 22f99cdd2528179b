package scoring

import "testing"

func TestImageRefClassification(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		isHTTP bool
		isData bool
	}{
		{"remote https", "https://example.com/a.jpg", true, false},
		{"remote http", "http://example.com/a.jpg", true, false},
		{"uppercase scheme", "HTTPS://example.com/a.jpg", true, false},
		{"embedded png", "data:image/png;base64,QQ==", false, true},
		{"embedded uppercase", "DATA:IMAGE/PNG;BASE64,QQ==", false, true},
		{"plain text", "not-a-url", false, false},
		{"empty", "", false, false},
		{"missing base64 marker", "data:image/png,rawbytes", false, false},
		{"relative path", "/assets/images/art_101.svg", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHTTPURL(tt.ref); got != tt.isHTTP {
				t.Errorf("isHTTPURL(%q) = %v, want %v", tt.ref, got, tt.isHTTP)
			}
			if got := isDataURL(tt.ref); got != tt.isData {
				t.Errorf("isDataURL(%q) = %v, want %v", tt.ref, got, tt.isData)
			}
		})
	}
}

func TestParseDataURL(t *testing.T) {
	mediaType, data, ok := parseDataURL("data:image/png;base64,QQ==")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if mediaType != "image/png" {
		t.Errorf("mediaType = %q, want image/png", mediaType)
	}
	if data != "QQ==" {
		t.Errorf("data = %q, want QQ==", data)
	}

	// Malformed references resolve to no-image, never an error
	for _, ref := range []string{"", "not-a-url", "data:image/png,missing-marker", "https://example.com/a.jpg"} {
		if _, _, ok := parseDataURL(ref); ok {
			t.Errorf("parseDataURL(%q) should not parse", ref)
		}
	}
}
