package server

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/metrics"
)

// requestID tags every request with a fresh id and binds a request-scoped
// logger carrying it, so every log line of one request can be correlated.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		log := logger.FromContext(r.Context()).With("request_id", id)
		ctx := logger.WithLogger(r.Context(), log)

		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger logs one line per request with method, route, status and
// duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.FromContext(r.Context()).Info("request handled",
			"method", r.Method,
			"route", routePattern(r),
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// recoverer turns a handler panic into an INTERNAL error response instead
// of tearing the connection down.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context()).Error("handler panicked",
					"panic", rec,
					"stack", string(debug.Stack()))
				respondError(w, r, domainErrors.NewAppError(domainErrors.TypeInternal, "internal server error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// observeRequests feeds the Prometheus request counter and latency
// histogram.
func observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		metrics.ObserveRequest(routePattern(r), r.Method, ww.Status(), time.Since(start))
	})
}
