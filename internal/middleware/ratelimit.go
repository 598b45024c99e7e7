package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP. With a Redis client it
// uses a shared fixed window so limits hold across replicas; without
// one it falls back to in-process token buckets.
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	logger *slog.Logger

	redis *redis.Client

	mu      sync.Mutex
	buckets map[string]*clientBucket

	done     chan struct{}
	stopOnce sync.Once
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(perSecond float64, burst int, rdb *redis.Client, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		logger:  logger,
		redis:   rdb,
		buckets: make(map[string]*clientBucket),
		done:    make(chan struct{}),
	}
	go rl.evictStale()
	return rl
}

// Stop halts the background bucket janitor. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		// The Redis window decides when a client is configured; local
		// buckets only count requests Redis never saw.
		var allowed bool
		if rl.redis != nil {
			ok, err := rl.allowRedis(c.Request.Context(), key)
			if err != nil {
				// Redis being down must not take the API with it
				rl.logger.Warn("rate limiter redis check failed", "error", err)
				allowed = rl.allowLocal(key)
			} else {
				allowed = ok
			}
		} else {
			allowed = rl.allowLocal(key)
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "request was throttled"})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allowLocal(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = time.Now()
	return b.limiter.Allow()
}

// allowRedis counts requests in a one second fixed window. The key
// expires on its own so idle clients leave nothing behind.
func (rl *RateLimiter) allowRedis(ctx context.Context, key string) (bool, error) {
	window := time.Now().Unix()
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, window)

	count, err := rl.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.redis.Expire(ctx, redisKey, 2*time.Second).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(rl.burst), nil
}

func (rl *RateLimiter) evictStale() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key, b := range rl.buckets {
				if time.Since(b.lastSeen) > 3*time.Minute {
					delete(rl.buckets, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
