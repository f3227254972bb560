package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"coachpad/internal/models"

	"go.uber.org/zap"
)

type contextKey string

const coachContextKey contextKey = "coach"

// coachFromContext returns the authenticated coach set by Authenticate.
func coachFromContext(ctx context.Context) *models.Coach {
	coach, _ := ctx.Value(coachContextKey).(*models.Coach)
	return coach
}

// Authenticate resolves the bearer token to a coach and stores it in
// the request context. A missing token is a 401; a token that does not
// verify or does not resolve to a coach is a 403.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "access token required")
			return
		}

		coachID, err := h.authService.Verify(token)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid token")
			return
		}
		coach, err := h.authService.GetCoach(r.Context(), coachID)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), coachContextKey, coach)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs every request with method, path, status and
// duration.
func RequestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
