package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/forecast-api/internal/platform/logger"
	"github.com/phrazzld/forecast-api/internal/redact"
)

// ErrorResponse defines the standard JSON error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// InternalErrorResponse is the body of every 500 response.
type InternalErrorResponse struct {
	Message        string `json:"message"`
	SupportContact string `json:"support_contact"`
}

// InternalErrorMessage is the only detail a client sees for a 500.
const InternalErrorMessage = "Internal Server Error"

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithText writes a plain-text response. The gatekeeping messages
// ("Unauthorized client." and the like) use this form.
func RespondWithText(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		logger.FromContext(r.Context()).Debug("failed to write text response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithInternalError writes the generic 500 body and logs err after
// redaction. Nothing from err reaches the client.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, supportContact string, err error) {
	LogError(r, http.StatusInternalServerError, InternalErrorMessage, err)
	RespondWithJSON(w, r, http.StatusInternalServerError, InternalErrorResponse{
		Message:        InternalErrorMessage,
		SupportContact: supportContact,
	})
}

// LogError logs a failed request with the redacted error.
//
// Log level strategy:
// - 5xx errors: ERROR
// - 429 Too Many Requests and 403 Forbidden: WARN (operational concern)
// - Other 4xx: DEBUG
func LogError(r *http.Request, status int, userMessage string, err error) {
	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status == http.StatusTooManyRequests, status == http.StatusForbidden:
		level = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "API error response", logAttrs...)
}
