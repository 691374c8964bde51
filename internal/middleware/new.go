package middleware

import (
	"time"

	"concierge-router/pkg/log"
)

// Config configures the shared middleware.
type Config struct {
	RateLimitPerMin int
	RateLimitBurst  int
	MaxClients      int
	ClientTTL       time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg),
	}
}
