package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/evmscan/explorer-gateway/internal/domain"
	"github.com/evmscan/explorer-gateway/internal/platform/logging"
)

// GetTraceID extracts the OpenTelemetry trace ID from the request context,
// or returns an empty string when no span is recording.
func GetTraceID(c *gin.Context) string {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.SpanContext().HasTraceID() {
		return ""
	}

	return span.SpanContext().TraceID().String()
}

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())
		// Extract field details if available
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsUnsupportedChain(err):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeUnsupportedChain, err.Error())

	case domain.IsApplication(err):
		return http.StatusUnprocessableEntity, NewErrorResponse(ErrorCodeUpstreamRejected, err.Error())

	case domain.IsNetwork(err):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeUpstreamUnreachable, err.Error())

	case domain.IsHTTP(err):
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeUpstreamHTTP, err.Error())

	case domain.IsProtocol(err):
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeUpstreamProtocol, err.Error())

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// HandleError writes a domain error to the response, mapping it to the
// appropriate HTTP status and error code. Internal errors are logged with
// their full details before the generic response goes out.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	errResp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("internal error",
			"error", err.Error(),
			"trace_id", errResp.TraceID,
		)
	}

	c.JSON(status, errResp)
}

// HandleValidationError writes a 400 response for a request binding or
// validation failure, including per-field messages when available.
func HandleValidationError(c *gin.Context, err error) {
	var errResp *ErrorResponse
	if IsValidationError(err) {
		errResp = NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			ValidationErrors(err),
		)
	} else {
		errResp = NewErrorResponse(ErrorCodeBadRequest, err.Error())
	}
	errResp.TraceID = GetTraceID(c)

	c.JSON(http.StatusBadRequest, errResp)
}
