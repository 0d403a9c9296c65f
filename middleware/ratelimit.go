package middleware

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"main/utils"
)

// RateLimiter counts requests per client key within a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// MemoryLimiter is the in-process fallback when no Redis is configured.
type MemoryLimiter struct {
	mu    sync.Mutex
	store map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{store: make(map[string]*window)}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string, limit int, windowSize time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	w, ok := m.store[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(windowSize)}
		m.store[key] = w
	}

	if w.count >= limit {
		return false, nil
	}
	w.count++
	return true, nil
}

// RedisLimiter shares the window counters across instances.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(redisURL string) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisLimiter{client: client}, nil
}

func (r *RedisLimiter) Allow(ctx context.Context, key string, limit int, windowSize time.Duration) (bool, error) {
	count, err := r.client.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		r.client.Expire(ctx, "ratelimit:"+key, windowSize)
	}
	return count <= int64(limit), nil
}

// NewRateLimiter picks the Redis limiter when a URL is configured and
// reachable, the in-memory limiter otherwise.
func NewRateLimiter(redisURL string) RateLimiter {
	if redisURL != "" {
		limiter, err := NewRedisLimiter(redisURL)
		if err == nil {
			log.Println("Rate limiting backed by Redis")
			return limiter
		}
		log.Printf("Redis unavailable, falling back to in-memory rate limiting: %v", err)
	}
	return NewMemoryLimiter()
}

// RateLimitMiddleware rejects clients that exceed limit requests within the
// window, keyed by client IP. Limiter errors fail open.
func RateLimitMiddleware(limiter RateLimiter, limit int, windowSize time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP(), limit, windowSize)
		if err != nil {
			log.Printf("Rate limiter error: %v", err)
			c.Next()
			return
		}
		if !allowed {
			utils.TooManyRequests(c, "Too many requests, please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
