package domain

import (
	"encoding/json"
	"fmt"
)

// Status is the success/failure marker of an explorer envelope.
type Status string

// Upstream status markers. The explorer API encodes these as the strings
// "1" and "0" in the standard envelope.
const (
	StatusSuccess Status = "1"
	StatusFailure Status = "0"
)

// Envelope is the uniform reply shape returned by every explorer
// operation: standard-style upstream bodies already carry it, and
// proxy-style (JSON-RPC) bodies are folded into it by the normalizer.
//
// A dispatch call returns exactly one Envelope or raises a classified
// error, never both and never a partially-filled value.
type Envelope struct {
	// Status is the success marker. A returned Envelope always carries
	// StatusSuccess; failure envelopes are raised as ApplicationError
	// instead of being returned.
	Status Status `json:"status"`

	// Message is the upstream message, "OK" for synthesized proxy replies.
	Message string `json:"message"`

	// Result is the operation-specific payload, passed through unmodified.
	// Its schema varies per operation; use DecodeResult to obtain the
	// typed value.
	Result json.RawMessage `json:"result"`
}

// DecodeResult unmarshals an envelope's result into the operation's typed
// shape. The envelope itself is never reinterpreted - this only gives the
// caller a typed view of the pass-through payload.
func DecodeResult[T any](e *Envelope) (T, error) {
	var result T
	if e == nil {
		return result, fmt.Errorf("decoding result: nil envelope")
	}

	if err := json.Unmarshal(e.Result, &result); err != nil {
		return result, fmt.Errorf("decoding result: %w", err)
	}

	return result, nil
}

// StringResult returns the envelope result as a plain string. Upstream
// scalar results (balances, supplies, status flags) arrive as JSON strings;
// hex results from the proxy family arrive the same way.
func (e *Envelope) StringResult() (string, error) {
	return DecodeResult[string](e)
}
