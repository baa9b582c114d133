package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/AwwwRyan/coverletter-gen/internal/auth"
)

const minIdleTTL = 10 * time.Minute

type userBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserRateLimiter hands out one token bucket per authenticated user. Buckets
// idle longer than idleTTL have refilled completely, so they are dropped and
// recreated on the next request.
type UserRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*userBucket
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewUserRateLimiter(perMinute, burst int) *UserRateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	interval := time.Minute / time.Duration(perMinute)
	idle := interval * time.Duration(burst)
	if idle < minIdleTTL {
		idle = minIdleTTL
	}
	return &UserRateLimiter{
		buckets:   make(map[string]*userBucket),
		limit:     rate.Every(interval),
		burst:     burst,
		idleTTL:   idle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *UserRateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &userBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// sweep must be called with mu held.
func (l *UserRateLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// Middleware keys buckets by Firebase UID, or client IP when no identity is set.
func (l *UserRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := auth.UserFirebaseUID(c)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !l.limiter(key).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many generation requests, try again shortly"})
			return
		}
		c.Next()
	}
}
