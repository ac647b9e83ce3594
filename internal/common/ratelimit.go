package common

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per caller, keyed by viewer id or client IP.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	idle    time.Duration
}

// NewRateLimiter allows perHour requests per caller per hour.
func NewRateLimiter(perHour int, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		entries: make(map[string]*limiterEntry),
		limit:   rate.Limit(float64(perHour) / time.Hour.Seconds()),
		burst:   burst,
		idle:    time.Hour,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	e, ok := rl.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.entries[key] = e
	}
	e.lastSeen = now

	if len(rl.entries) > 1024 {
		for k, v := range rl.entries {
			if now.Sub(v.lastSeen) > rl.idle {
				delete(rl.entries, k)
			}
		}
	}
	return e.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ViewerID(r.Context())
		if key == "" {
			key = clientIP(r)
		}
		if !rl.Allow(key) {
			w.Header().Set("Retry-After", "60")
			WriteJSON(w, http.StatusTooManyRequests, map[string]interface{}{
				"success": false,
				"error":   map[string]string{"kind": "RATE_LIMITED", "message": "too many requests"},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimits groups the per-route-family limiters shared by the HTTP handlers.
type RateLimits struct {
	Publications *RateLimiter
	Comments     *RateLimiter
	Likes        *RateLimiter
	Social       *RateLimiter
	Search       *RateLimiter
}

func NewRateLimits(publications, comments, likes, social, search, burst int) *RateLimits {
	return &RateLimits{
		Publications: NewRateLimiter(publications, burst),
		Comments:     NewRateLimiter(comments, burst),
		Likes:        NewRateLimiter(likes, burst),
		Social:       NewRateLimiter(social, burst),
		Search:       NewRateLimiter(search, burst),
	}
}
