package middleware

import (
	"log/slog"
	"net/http"

	"memopad/internal/api/shared"
	"memopad/internal/platform/logger"
)

// Trace adds a trace ID and a trace-scoped logger to the request context.
// This middleware should be applied early in the middleware chain so that
// all subsequent handlers and stores log with the trace ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
