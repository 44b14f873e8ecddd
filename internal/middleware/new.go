package middleware

import (
	"pharmacy-inventory-console/internal/session"
	"pharmacy-inventory-console/pkg/log"
)

type Middleware struct {
	l       log.Logger
	session *session.Session
	limiter *rateLimiter
}

// New creates the middleware set. rateLimitPerMin <= 0 disables the
// per-IP limiter.
func New(l log.Logger, sess *session.Session, rateLimitPerMin int) Middleware {
	var limiter *rateLimiter
	if rateLimitPerMin > 0 {
		limiter = newRateLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:       l,
		session: sess,
		limiter: limiter,
	}
}
