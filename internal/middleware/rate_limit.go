package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"devconnector/dto"
	"devconnector/internal/logger"
)

type RateLimiterConfig struct {
	Rate            rate.Limit
	Burst           int
	CleanupInterval time.Duration
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	config RateLimiterConfig
	log    *zap.Logger

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimiter starts a background loop that forgets idle clients.
func NewRateLimiter(config RateLimiterConfig, log *zap.Logger) *RateLimiter {
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}
	rl := &RateLimiter{
		config:   config,
		log:      logger.OrNop(log),
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.IP()
		if rl.limiterFor(key).Allow() {
			return c.Next()
		}
		rl.log.Warn("rate limit exceeded", zap.String("client", key), zap.String("path", c.Path()))
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(rl.retryAfter()))
		return c.Status(fiber.StatusTooManyRequests).
			JSON(dto.ErrorResponse{Msg: "Too many requests, please try again later"})
	}
}

// Len reports how many clients are tracked.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.limiters[key] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter
}

// retryAfter is the number of seconds until one token is refilled.
func (rl *RateLimiter) retryAfter() int {
	if rl.config.Rate <= 0 {
		return 1
	}
	sec := int(math.Ceil(1.0 / float64(rl.config.Rate)))
	if sec < 1 {
		sec = 1
	}
	return sec
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops clients idle for more than two cleanup intervals.
func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.config.CleanupInterval * 2
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}
