package model

import (
	"bytes"
	"encoding/json"
)

// envelope is the backend's optional response wrapper: { "data": X }.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// UnwrapEnvelope decodes a response body into target, accepting both wire
// shapes the backend uses: a body of `{"data": X}` yields X, a bare X yields
// X directly. Callers never see which shape was on the wire.
func UnwrapEnvelope(body []byte, target any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err == nil && len(bytes.TrimSpace(env.Data)) > 0 {
		return json.Unmarshal(env.Data, target)
	}

	return json.Unmarshal(trimmed, target)
}
