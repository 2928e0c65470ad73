package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const tooManyRequests = "Too many requests"

// RateLimitMiddleware applies one token bucket to every request.
type RateLimitMiddleware struct {
	logs    *zap.SugaredLogger
	limiter *rate.Limiter
}

// NewRateLimitMiddleware returns nil when rps is not positive, which
// disables limiting.
func NewRateLimitMiddleware(logger *zap.SugaredLogger, rps float64, burst int) *RateLimitMiddleware {
	if rps <= 0 {
		return nil
	}
	return &RateLimitMiddleware{
		logs:    logger,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (m *RateLimitMiddleware) RateLimit(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow() {
			requestId, _ := r.Context().Value(RequestIDKey).(string)
			m.logs.Warnw("rate limit exceeded",
				"path", r.URL.Path,
				"request_id", requestId)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": tooManyRequests})
			return
		}
		next.ServeHTTP(w, r)
	})
}
