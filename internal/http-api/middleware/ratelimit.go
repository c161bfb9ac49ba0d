package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const clientIdleTimeout = 3 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter applies a per-client-IP token bucket. A background
// sweep evicts entries idle past clientIdleTimeout; Stop shuts it down.
type ClientRateLimiter struct {
	rps   float64
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stop chan struct{}
	done chan struct{}
}

func NewClientRateLimiter(rps float64, burst int) *ClientRateLimiter {
	rl := &ClientRateLimiter{
		rps:     rps,
		burst:   burst,
		clients: make(map[string]*clientLimiter),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

func (rl *ClientRateLimiter) sweep() {
	defer close(rl.done)
	ticker := time.NewTicker(clientIdleTimeout)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for ip, cl := range rl.clients {
				if time.Since(cl.lastSeen) > clientIdleTimeout {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// Stop terminates the eviction sweep. The middleware itself keeps working
// after Stop; only the idle-entry cleanup ends.
func (rl *ClientRateLimiter) Stop() {
	close(rl.stop)
	<-rl.done
}

func (rl *ClientRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.rps), rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

func (rl *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
