package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/job-portal/internal/config"
)

const loginRateScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// LoginRateLimiter throttles login attempts per key using a fixed window
// counter in Redis. Redis failures fail open so an outage never locks
// everyone out.
type LoginRateLimiter struct {
	client *redis.Client
	script *redis.Script
	limit  int
	window time.Duration
}

// NewLoginRateLimiter builds a limiter from auth config. Returns nil when
// the client is missing or throttling is disabled; a nil limiter allows
// every attempt.
func NewLoginRateLimiter(client *redis.Client, cfg config.AuthConfig) *LoginRateLimiter {
	if client == nil || cfg.LoginRateLimit <= 0 || cfg.LoginRateWindow() <= 0 {
		return nil
	}
	return &LoginRateLimiter{
		client: client,
		script: redis.NewScript(loginRateScript),
		limit:  cfg.LoginRateLimit,
		window: cfg.LoginRateWindow(),
	}
}

// AllowLogin reports whether another attempt for key fits in the window.
func (l *LoginRateLimiter) AllowLogin(key string) bool {
	if l == nil || l.client == nil || key == "" {
		return true
	}
	ttl := l.window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{"login_rate:" + key}, ttl, l.limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}
