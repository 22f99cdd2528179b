package scoring

import (
	"encoding/json"
	"fmt"
)

// InvalidRequestError describes a malformed scoring request. The message is
// returned verbatim to the caller in the 400 response body.
type InvalidRequestError struct {
	Details string
}

func (e *InvalidRequestError) Error() string {
	return e.Details
}

func invalidRequest(format string, args ...interface{}) error {
	return &InvalidRequestError{Details: fmt.Sprintf(format, args...)}
}

// ParseScoreRequest validates a raw request body into a ScoreRequest.
// All fields are optional; absent fields default to the empty string. A field
// that is present with the wrong type fails with a message naming the field.
// An empty or missing body is treated as an empty request.
func ParseScoreRequest(body []byte) (*ScoreRequest, error) {
	req := &ScoreRequest{}
	if len(body) == 0 {
		return req, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, invalidRequest("body must be a JSON object")
	}

	if v, ok := raw["title"]; ok {
		if err := stringField(v, &req.Title); err != nil {
			return nil, invalidRequest("title must be a string")
		}
	}
	if v, ok := raw["description"]; ok {
		if err := stringField(v, &req.Description); err != nil {
			return nil, invalidRequest("description must be a string")
		}
	}
	if v, ok := raw["imageUrl"]; ok {
		if err := stringField(v, &req.ImageURL); err != nil {
			return nil, invalidRequest("imageUrl must be a string")
		}
	}

	return req, nil
}

// stringField unmarshals a JSON value that must be a string. A literal null
// is present-but-wrong-type, not absent: json.Unmarshal treats null as a
// no-op on a string target, so it has to be rejected explicitly.
func stringField(v json.RawMessage, dst *string) error {
	var s *string
	if err := json.Unmarshal(v, &s); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("null is not a string")
	}
	*dst = *s
	return nil
}
