package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"neuralink-backend/internal/transport"
)

// Recoverer turns a handler panic into the fixed 500 body. The panic value
// and stack go to the log only.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
				transport.WriteInternalError(w)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
