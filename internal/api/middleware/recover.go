package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/platform/logger"
	"github.com/phrazzld/forecast-api/internal/redact"
)

// Recover turns a panic in any later stage into the generic 500 response.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recover(supportContact string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// ALLOW-PANIC: net/http handles this sentinel itself
					panic(rec)
				}

				logger.FromContext(r.Context()).Error("panic recovered",
					"panic", redact.String(fmt.Sprint(rec)),
					"stack", redact.String(string(debug.Stack())),
					"path", r.URL.Path,
					"method", r.Method)

				shared.RespondWithJSON(w, r, http.StatusInternalServerError, shared.InternalErrorResponse{
					Message:        shared.InternalErrorMessage,
					SupportContact: supportContact,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
