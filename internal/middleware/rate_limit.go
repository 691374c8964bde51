package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"concierge-router/pkg/response"
)

const (
	defaultRateLimitPerMin = 60
	defaultMaxClients      = 1000
	defaultClientTTL       = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg Config) *rateLimiter {
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = defaultRateLimitPerMin
	}
	maxClients := cfg.MaxClients
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}
	ttl := cfg.ClientTTL
	if ttl <= 0 {
		ttl = defaultClientTTL
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = max(perMin/10, 1)
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, ttl),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects clients that exceed their per-minute budget with 429.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.limiter.allow(c.ClientIP()) {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
