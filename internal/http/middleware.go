package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/factory-management/internal/logger"
	"github.com/rogerio-castellano/factory-management/internal/metrics"
)

// RequestLogger attaches a request-scoped zerolog logger to the context,
// logs one line per request once the response is written and records the
// request in the metrics registry.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithFields(r.Context(), map[string]any{
			"request_id": middleware.GetReqID(r.Context()),
		})
		r = r.WithContext(ctx)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			elapsed := time.Since(start)
			var route string
			if rctx := chi.RouteContext(ctx); rctx != nil {
				route = rctx.RoutePattern()
			}
			metrics.ObserveRequest(r.Method, route, ww.Status(), elapsed)

			logger.L(ctx).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", route).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", elapsed).
				Msg("request")
		}()

		next.ServeHTTP(ww, r)
	})
}
