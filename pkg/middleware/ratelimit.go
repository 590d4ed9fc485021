package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"movie-theater/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const clientIdleTimeout = 5 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit gives every client IP its own token bucket. Idle clients are
// forgotten after five minutes.
func RateLimit(config utils.RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	var (
		mu        sync.Mutex
		clients   = make(map[string]*client)
		lastSweep = time.Now()
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		if now.Sub(lastSweep) > clientIdleTimeout {
			for key, c := range clients {
				if now.Sub(c.lastSeen) > clientIdleTimeout {
					delete(clients, key)
				}
			}
			lastSweep = now
		}

		c, ok := clients[ip]
		if !ok {
			c = &client{limiter: rate.NewLimiter(rate.Limit(config.RPS), config.Burst)}
			clients[ip] = c
		}
		c.lastSeen = now
		return c.limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiterFor(ip).Allow() {
				logger.Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", r.URL.Path))
				utils.ResponseTooManyRequests(w, "Rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
