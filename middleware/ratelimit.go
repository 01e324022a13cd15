package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a per-IP token bucket.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     map[string]float64
	lastRefill map[string]time.Time
	rate       float64 // tokens per second
	bucketSize float64
}

// NewRateLimiter returns a limiter allowing rate requests per second with
// bursts up to bucketSize.
func NewRateLimiter(rate, bucketSize float64) *RateLimiter {
	return &RateLimiter{
		tokens:     make(map[string]float64),
		lastRefill: make(map[string]time.Time),
		rate:       rate,
		bucketSize: bucketSize,
	}
}

// RateLimit rejects requests from IPs that have exhausted their bucket.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		now := time.Now()

		if _, exists := rl.lastRefill[ip]; !exists {
			rl.tokens[ip] = rl.bucketSize
			rl.lastRefill[ip] = now
		}

		elapsed := now.Sub(rl.lastRefill[ip])
		rl.tokens[ip] = min(rl.bucketSize, rl.tokens[ip]+elapsed.Seconds()*rl.rate)
		rl.lastRefill[ip] = now

		if rl.tokens[ip] < 1 {
			rl.mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		rl.tokens[ip]--
		rl.mu.Unlock()

		c.Next()
	}
}

// Prune drops buckets idle longer than maxIdle. Call it periodically to
// keep the maps from growing without bound.
func (rl *RateLimiter) Prune(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for ip, last := range rl.lastRefill {
		if last.Before(cutoff) {
			delete(rl.tokens, ip)
			delete(rl.lastRefill, ip)
		}
	}
}
