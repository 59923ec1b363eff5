package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Blazehunterx/ironmatch-sub000/internal/database"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/logger"
)

// IPRateLimiter manages rate limiters for each IP
type IPRateLimiter struct {
	ips   map[string]*rateLimiterEntry
	mu    sync.RWMutex
	r     rate.Limit
	burst int
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a new IP-based rate limiter.
// r = requests per second, burst = max burst size
func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	rl := &IPRateLimiter{
		ips:   make(map[string]*rateLimiterEntry),
		r:     r,
		burst: burst,
	}

	// Cleanup old entries every minute
	go rl.cleanup()

	return rl
}

func (rl *IPRateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for ip, entry := range rl.ips {
			if time.Since(entry.lastSeen) > 3*time.Minute {
				delete(rl.ips, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.ips[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.r, rl.burst)
		rl.ips[ip] = &rateLimiterEntry{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	entry.lastSeen = time.Now()
	return entry.limiter
}

var (
	generalLimiter *IPRateLimiter
	authLimiter    *IPRateLimiter
	limiterOnce    sync.Once
)

func initLimiters() {
	limiterOnce.Do(func() {
		generalLimiter = NewIPRateLimiter(20, 40)
		authLimiter = NewIPRateLimiter(1, 5)
	})
}

func limit(rl *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.getLimiter(ip).Allow() {
			logger.Warn().Str("ip", ip).Str("path", c.Request.URL.Path).Msg("rate limit exceeded")
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GeneralRateLimit protects the whole API surface.
func GeneralRateLimit() gin.HandlerFunc {
	initLimiters()
	return limit(generalLimiter)
}

// AuthRateLimit is a tighter limit for login/register.
func AuthRateLimit() gin.HandlerFunc {
	initLimiters()
	return limit(authLimiter)
}

// UserRateLimit caps write actions per authenticated user via the shared
// Redis counter, complementing the in-process IP limiter across replicas.
// Fails open when Redis is unavailable. Must run after AuthMiddleware.
func UserRateLimit(max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := c.Get("userId")
		if !ok {
			c.Next()
			return
		}

		allowed, err := database.CheckRateLimit(userId.(string), max, window)
		if err != nil {
			logger.Warn().Err(err).Msg("user rate limit check failed")
			c.Next()
			return
		}
		if !allowed {
			logger.Warn().Str("user_id", userId.(string)).Str("path", c.Request.URL.Path).Msg("user rate limit exceeded")
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down"})
			c.Abort()
			return
		}
		c.Next()
	}
}
