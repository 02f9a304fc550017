// Package domain contains business logic types and errors.
// Domain errors represent classified upstream-call failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for use with errors.Is().
// Every failure an explorer call can produce is tagged with exactly one of
// these kinds. Errors are created at the point of detection and surfaced to
// the caller unchanged - never retried, never downgraded to a default value.
var (
	// ErrUnsupportedChain indicates the chain identifier has no known endpoint.
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrValidation indicates a precondition failed before any network call.
	ErrValidation = errors.New("validation failed")

	// ErrNetwork indicates no response was received (timeout, DNS, reset).
	ErrNetwork = errors.New("network failure")

	// ErrHTTP indicates a non-2xx response was received from the upstream.
	ErrHTTP = errors.New("unexpected http status")

	// ErrProtocol indicates a 2xx response whose body shape is unrecognized.
	ErrProtocol = errors.New("malformed upstream response")

	// ErrApplication indicates the upstream envelope itself reported failure.
	ErrApplication = errors.New("upstream reported failure")
)

// UnsupportedChainError is raised when a chain identifier is not in the
// fixed endpoint table. It lists the full supported set so the caller can
// self-correct without consulting documentation.
type UnsupportedChainError struct {
	ChainID   int64
	Supported []int64
}

// Error implements the error interface.
func (e *UnsupportedChainError) Error() string {
	ids := make([]string, 0, len(e.Supported))
	for _, id := range e.Supported {
		ids = append(ids, fmt.Sprintf("%d", id))
	}

	return fmt.Sprintf("chain %d is not supported (supported: %s)", e.ChainID, strings.Join(ids, ", "))
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnsupportedChainError) Unwrap() error {
	return ErrUnsupportedChain
}

// NewUnsupportedChainError creates an unsupported chain error.
// The supported set is copied and sorted for a stable message.
func NewUnsupportedChainError(chainID int64, supported []int64) error {
	ids := make([]int64, len(supported))
	copy(ids, supported)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return &UnsupportedChainError{ChainID: chainID, Supported: ids}
}

// ValidationError provides context for precondition failures.
// No network call is made when one of these is raised.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NetworkError wraps a transport failure where no response was received.
// The cause is preserved so errors.Is(err, context.DeadlineExceeded) and
// similar checks keep working.
type NetworkError struct {
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("network failure during %s: %v", e.Operation, e.Cause)
	}

	return fmt.Sprintf("network failure: %v", e.Cause)
}

// Unwrap returns the sentinel and the underlying cause.
func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Cause}
}

// NewNetworkError creates a network error with the originating cause.
func NewNetworkError(operation string, cause error) error {
	return &NetworkError{Operation: operation, Cause: cause}
}

// HTTPError is raised when the upstream answered with a non-2xx status.
// Body carries a bounded fragment of the response for diagnosis - since
// there is no retry, this is the only evidence available.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
	}

	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *HTTPError) Unwrap() error {
	return ErrHTTP
}

// NewHTTPError creates an HTTP status error with the raw body fragment.
func NewHTTPError(statusCode int, body string) error {
	return &HTTPError{StatusCode: statusCode, Body: body}
}

// ProtocolError is raised when a 2xx body does not match either the
// standard explorer envelope or the JSON-RPC proxy reply shape.
type ProtocolError struct {
	Reason string
	Body   string
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("malformed upstream response: %s: %s", e.Reason, e.Body)
	}

	return "malformed upstream response: " + e.Reason
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ProtocolError) Unwrap() error {
	return ErrProtocol
}

// NewProtocolError creates a protocol error embedding the offending body.
func NewProtocolError(reason, body string) error {
	return &ProtocolError{Reason: reason, Body: body}
}

// ApplicationError is raised when the upstream envelope reports failure.
// Message is the upstream message field (e.g. "NOTOK"); Detail carries the
// upstream result string or serialized error object, which is often the
// actual diagnostic (e.g. "Invalid address format").
type ApplicationError struct {
	Message string
	Detail  string
}

// Error implements the error interface.
func (e *ApplicationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream reported failure: %s: %s", e.Message, e.Detail)
	}

	return "upstream reported failure: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ApplicationError) Unwrap() error {
	return ErrApplication
}

// NewApplicationError creates an application error from the upstream
// message and its diagnostic detail.
func NewApplicationError(message, detail string) error {
	return &ApplicationError{Message: message, Detail: detail}
}

// IsUnsupportedChain checks if an error is an unsupported chain error.
func IsUnsupportedChain(err error) bool {
	return errors.Is(err, ErrUnsupportedChain)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNetwork checks if an error is a network error.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsHTTP checks if an error is an HTTP status error.
func IsHTTP(err error) bool {
	return errors.Is(err, ErrHTTP)
}

// IsProtocol checks if an error is a protocol error.
func IsProtocol(err error) bool {
	return errors.Is(err, ErrProtocol)
}

// IsApplication checks if an error is an upstream application error.
func IsApplication(err error) bool {
	return errors.Is(err, ErrApplication)
}
