package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
)

// Gin keys checked when no span is active. requestIDKey matches the key
// the request ID middleware sets.
const (
	traceIDKey   = "trace_id"
	requestIDKey = "request_id"
)

// GetTraceID returns the id that ties a response to its logs: the active
// span's trace id, then a "trace_id" gin value, then the request ID.
func GetTraceID(c *gin.Context) string {
	if id := telemetry.TraceID(c.Request.Context()); id != "" {
		return id
	}

	if v, ok := c.Get(traceIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	if id := c.GetString(requestIDKey); id != "" {
		return id
	}

	return c.GetHeader("X-Request-ID")
}

// MapError maps a failed operation to an HTTP status and error envelope.
// A request deadline maps to 504. Anything else becomes 500 with a generic
// message so storage details never leak. Not-found never reaches here;
// handlers answer it with an empty 404.
func MapError(err error) (int, *ErrorResponse) {
	if errors.Is(err, context.DeadlineExceeded) {
		return HTTPStatusFromCode(ErrorCodeTimeout), NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")
	}

	return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, InternalErrorMessage)
}

// HandleError writes the error envelope for err. Internal errors are
// logged in full at ERROR level with the trace id.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// RespondBadRequest writes a 400 BAD_REQUEST envelope.
func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, NewErrorResponse(ErrorCodeBadRequest, message).WithTraceID(GetTraceID(c)))
}
