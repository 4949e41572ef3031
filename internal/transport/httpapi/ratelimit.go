package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type windowCounter interface {
	// Incr bumps the counter for key and returns the new count. The counter
	// resets window after its first increment.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter is a fixed-window limiter keyed by client IP. Every server
// instance shares the same Redis counters.
type RateLimiter struct {
	counter  windowCounter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	log      *slog.Logger
}

func NewRateLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string, log *slog.Logger) *RateLimiter {
	return newRateLimiter(redisCounter{rdb: rdb}, limit, window, prefix, log)
}

func newRateLimiter(counter windowCounter, limit int, window time.Duration, prefix string, log *slog.Logger) *RateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	if log == nil {
		log = slog.Default()
	}
	return &RateLimiter{counter: counter, limit: limit, window: window, prefix: prefix, failOpen: true, log: log}
}

// Middleware rejects requests over the limit with 429. When Redis is
// unreachable requests pass through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.prefix + ":" + c.FullPath() + ":" + c.ClientIP()
		count, err := rl.counter.Incr(c.Request.Context(), key, rl.window)
		if err != nil {
			rl.log.Warn("redis rate limiter error", slog.Any("err", err))
			if rl.failOpen {
				c.Next()
				return
			}
			writeError(c, http.StatusServiceUnavailable, "rate_limiter_unavailable", "rate limiter unavailable")
			return
		}
		if count > int64(rl.limit) {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			writeError(c, http.StatusTooManyRequests, "rate_limited", "Too many requests. Try again shortly.")
			return
		}
		c.Next()
	}
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

type redisCounter struct {
	rdb redis.Scripter
}

func (r redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	ms := window.Milliseconds()
	if ms <= 0 {
		ms = time.Minute.Milliseconds()
	}
	res, err := fixedWindowScript.Run(ctx, r.rdb, []string{key}, ms).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
