package web

import (
	"sync"
	"time"

	"birdfeed/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RateLimiter tracks upstream fetches per client IP within a sliding window.
type RateLimiter struct {
	fetches map[string][]time.Time
	mu      sync.Mutex
	limit   int
	window  time.Duration
	stop    chan struct{}
}

// NewRateLimiter creates a rate limiter allowing limit fetches per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		fetches: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
		stop:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Allow records a fetch for ip and reports whether it stays within the
// limit.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.window)
	var recent []time.Time
	for _, t := range rl.fetches[ip] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= rl.limit {
		rl.fetches[ip] = recent
		return false
	}
	rl.fetches[ip] = append(recent, time.Now())
	return true
}

// Close stops the cleanup loop.
func (rl *RateLimiter) Close() {
	close(rl.stop)
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-rl.window)
			for ip, timestamps := range rl.fetches {
				var recent []time.Time
				for _, t := range timestamps {
					if t.After(cutoff) {
						recent = append(recent, t)
					}
				}
				if len(recent) == 0 {
					delete(rl.fetches, ip)
				} else {
					rl.fetches[ip] = recent
				}
			}
			rl.mu.Unlock()
		}
	}
}

// RequestIDConfig configures Fiber's requestid middleware: honors an
// incoming X-Request-ID, generates a UUID otherwise.
func RequestIDConfig() requestid.Config {
	return requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: "requestid",
		Generator:  uuid.NewString,
	}
}

// RequestIDToContextMiddleware bridges Fiber's requestid into pkg/log
// context. Must run after requestid.New().
func RequestIDToContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals("requestid").(string); ok && id != "" {
			c.SetUserContext(log.WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}

// RequestLoggerMiddleware logs each request through pkg/log. Must run after
// RequestIDToContextMiddleware.
func RequestLoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.IP(),
		}
		if err != nil {
			fields = append(fields, "error", err.Error())
		}

		ctx := c.UserContext()
		switch {
		case status >= 500:
			log.GlobalErrorCtx(ctx, "request", fields...)
		case status >= 400:
			log.GlobalWarnCtx(ctx, "request", fields...)
		default:
			log.GlobalInfoCtx(ctx, "request", fields...)
		}
		return err
	}
}
