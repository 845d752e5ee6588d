package server

import (
	"net/http"
	"sync"
	"time"

	"barbershop/internal/api"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiters tracks one token bucket per client IP. Entries that have
// been idle longer than ttl are evicted so the map does not grow unbounded.
type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*clientEntry
	limit   rate.Limit
	burst   int
	ttl     time.Duration
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiters(rps float64, burst int, ttl time.Duration) *clientLimiters {
	cl := &clientLimiters{
		clients: make(map[string]*clientEntry),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}

	go cl.evictIdle()

	return cl
}

func (cl *clientLimiters) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cl.mu.Lock()
		for ip, entry := range cl.clients {
			if time.Since(entry.lastSeen) > cl.ttl {
				delete(cl.clients, ip)
			}
		}
		cl.mu.Unlock()
	}
}

func (cl *clientLimiters) allow(ip string) bool {
	cl.mu.Lock()
	entry, ok := cl.clients[ip]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[ip] = entry
	}
	entry.lastSeen = time.Now()
	cl.mu.Unlock()

	return entry.limiter.Allow()
}

// RateLimitMiddleware rejects clients that exceed rps sustained requests
// per second, allowing short bursts up to burst.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiters := newClientLimiters(rps, burst, 3*time.Minute)

	return func(c *gin.Context) {
		if !limiters.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{
				Error: "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
