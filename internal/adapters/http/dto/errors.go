// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import "net/http"

// ErrorResponse is the standard error envelope for all error responses.
// It provides a consistent structure for API error handling.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "UNSUPPORTED_CHAIN").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details provides additional context about the error.
	// For validation errors, this contains field-level error messages.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeValidation indicates request validation failed.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeUnsupportedChain indicates the requested chain has no
	// configured explorer endpoint.
	ErrorCodeUnsupportedChain = "UNSUPPORTED_CHAIN"

	// ErrorCodeUpstreamRejected indicates the explorer processed the
	// request and reported a failure (bad parameters, rate limit, no
	// verified source).
	ErrorCodeUpstreamRejected = "UPSTREAM_REJECTED"

	// ErrorCodeUpstreamUnreachable indicates no usable response was
	// received from the explorer (connection failure, timeout).
	ErrorCodeUpstreamUnreachable = "UPSTREAM_UNREACHABLE"

	// ErrorCodeUpstreamHTTP indicates the explorer answered with a
	// non-success HTTP status.
	ErrorCodeUpstreamHTTP = "UPSTREAM_HTTP_ERROR"

	// ErrorCodeUpstreamProtocol indicates the explorer's response body
	// did not match any recognized shape.
	ErrorCodeUpstreamProtocol = "UPSTREAM_PROTOCOL_ERROR"

	// ErrorCodeUnauthorized indicates authentication is required.
	ErrorCodeUnauthorized = "UNAUTHORIZED"

	// ErrorCodeForbidden indicates the operation is not permitted.
	ErrorCodeForbidden = "FORBIDDEN"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"

	// ErrorCodeTimeout indicates the request timed out.
	ErrorCodeTimeout = "TIMEOUT"

	// ErrorCodeBadRequest indicates the request was malformed.
	ErrorCodeBadRequest = "BAD_REQUEST"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeValidation, ErrorCodeUnsupportedChain, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUpstreamRejected:
		return http.StatusUnprocessableEntity
	case ErrorCodeUpstreamUnreachable, ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrorCodeUpstreamHTTP, ErrorCodeUpstreamProtocol:
		return http.StatusBadGateway
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
