package etherscan

import (
	"bytes"
	"encoding/json"

	"github.com/evmscan/explorer-gateway/internal/domain"
)

// maxDiagnosticBytes bounds the raw-body fragment embedded in classified
// errors. Enough to debug without re-running the call, small enough not to
// flood logs.
const maxDiagnosticBytes = 512

// proxyReply is the raw JSON-RPC proxy reply shape: either a result field
// (which may be the literal null) or a nested error object, with no
// status/message fields. Transient - folded into a domain.Envelope and
// discarded.
type proxyReply struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// proxyError is the nested error object of a failed proxy reply.
type proxyError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Normalize reconciles a raw upstream body into the uniform envelope, or
// raises a classified error. It never returns a partially-filled envelope.
//
// Standard-style bodies already carry {status,message,result}; a failure
// status raises domain.ApplicationError even when a result value is also
// present, because the upstream sometimes returns placeholder data
// alongside a failure. Proxy-style bodies are synthesized into an envelope
// from their result field, or raised from their error object.
func Normalize(body []byte, proxyStyle bool) (*domain.Envelope, error) {
	trimmed := bytes.TrimSpace(body)

	// Anything that is not a JSON object is malformed regardless of style.
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, domain.NewProtocolError("response is not a JSON object", truncate(trimmed))
	}

	if proxyStyle {
		return normalizeProxy(trimmed)
	}

	return normalizeStandard(trimmed)
}

// normalizeStandard handles the {status,message,result} envelope shape.
func normalizeStandard(body []byte) (*domain.Envelope, error) {
	var env domain.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, domain.NewProtocolError("invalid envelope: "+err.Error(), truncate(body))
	}

	if env.Status == "" {
		return nil, domain.NewProtocolError("missing status field", truncate(body))
	}

	// Failure takes precedence over presence of data.
	if env.Status == domain.StatusFailure {
		return nil, domain.NewApplicationError(env.Message, resultDetail(env.Result))
	}

	return &env, nil
}

// normalizeProxy handles the JSON-RPC reply shape.
func normalizeProxy(body []byte) (*domain.Envelope, error) {
	var reply proxyReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, domain.NewProtocolError("invalid proxy reply: "+err.Error(), truncate(body))
	}

	// A present result key counts as success even when its value is null;
	// absence of both keys is an unrecognized shape.
	switch {
	case reply.Error != nil:
		var perr proxyError
		_ = json.Unmarshal(reply.Error, &perr)

		return nil, domain.NewApplicationError(perr.Message, truncate(reply.Error))

	case reply.Result != nil:
		return &domain.Envelope{
			Status:  domain.StatusSuccess,
			Message: "OK",
			Result:  reply.Result,
		}, nil

	default:
		return nil, domain.NewProtocolError("unexpected proxy response shape", truncate(body))
	}
}

// resultDetail extracts the diagnostic detail from a failure envelope's
// result field. Upstream usually puts a plain string there; anything else
// is embedded raw.
func resultDetail(result json.RawMessage) string {
	if len(result) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(result, &s); err == nil {
		return s
	}

	return truncate(result)
}

// truncate bounds a raw body fragment for inclusion in error messages.
func truncate(body []byte) string {
	if len(body) <= maxDiagnosticBytes {
		return string(body)
	}

	return string(body[:maxDiagnosticBytes]) + "...(truncated)"
}
