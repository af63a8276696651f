package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"jobconnect-backend/internal/config"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/pkg/models"
)

// clientLimiter tracks one caller's limiter and when it was last used so
// idle entries can be evicted.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles LLM-backed endpoints per client address.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	clients  map[string]*clientLimiter
	mu       sync.Mutex
	logger   logging.Logger
	stopOnce sync.Once
	stop     chan struct{}
}

// NewRateLimiter builds a limiter from the configured requests-per-minute
// budget and starts the idle-entry cleanup loop.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rl := &RateLimiter{
		limit:   rate.Limit(float64(cfg.RateLimit.RequestsPerMinute) / 60.0),
		burst:   cfg.RateLimit.Burst,
		clients: make(map[string]*clientLimiter),
		logger:  logging.GetGlobalLogger(),
		stop:    make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow reports whether the client may proceed.
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.clients[clientIP]
	if !exists {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientIP] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// Stop terminates the cleanup loop.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-10 * time.Minute)
			for ip, entry := range rl.clients {
				if entry.lastSeen.Before(cutoff) {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Middleware rejects over-limit requests with 429.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientIP := c.RealIP()
			if !rl.Allow(clientIP) {
				rl.logger.Warn("Request rejected by rate limiter", map[string]interface{}{
					"client_ip":  clientIP,
					"request_id": requestID(c),
					"path":       c.Request().URL.Path,
				})
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limited",
					Message:   "Too many requests, slow down",
					RequestID: requestID(c),
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}
