package middleware

import (
	"net/http"
	"sync"
	"time"

	"slotify/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// clientLimiters tracks one token bucket per caller IP.
type clientLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

var limiters = &clientLimiters{buckets: make(map[string]*rate.Limiter)}

func (l *clientLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.buckets[ip]; ok {
		return lim
	}
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 100
	}
	lim := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
	l.buckets[ip] = lim
	return lim
}

// RateLimitMiddleware rejects callers exceeding the configured per-IP request
// rate with 429. Availability polling from booking widgets is the expected
// hot path, so the burst equals the full per-minute budget.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !limiters.get(ip).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, try again later"})
			return
		}
		c.Next()
	}
}
