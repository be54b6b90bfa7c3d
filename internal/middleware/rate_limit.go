package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"fleet-management/fleetboard/internal/metrics"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	limiterTTL     = 10 * time.Minute
	limiterCleanup = 5 * time.Minute
)

// RateLimiter hands out one token bucket per client IP. Buckets for idle
// clients expire from the table.
type RateLimiter struct {
	limiters *cache.Cache
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
	exempt   map[string]bool
	metrics  *metrics.MetricsRegistry
}

func NewRateLimiter(rps float64, burst int, metricsReg *metrics.MetricsRegistry, exemptIPs ...string) *RateLimiter {
	exempt := make(map[string]bool, len(exemptIPs))
	for _, ip := range exemptIPs {
		exempt[ip] = true
	}
	return &RateLimiter{
		limiters: cache.New(limiterTTL, limiterCleanup),
		rps:      rate.Limit(rps),
		burst:    burst,
		exempt:   exempt,
		metrics:  metricsReg,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, found := rl.limiters.Get(ip); found {
		limiter := v.(*rate.Limiter)
		rl.limiters.SetDefault(ip, limiter)
		return limiter
	}
	limiter := rate.NewLimiter(rl.rps, rl.burst)
	rl.limiters.SetDefault(ip, limiter)
	return limiter
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if rl.exempt[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(ip).Allow() {
			if rl.metrics != nil {
				rl.metrics.RateLimitedTotal.Inc()
			}
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
