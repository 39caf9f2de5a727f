package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserLimiter keeps one token bucket per authenticated user, or per client ip before auth.
// Buckets untouched for limiterIdleTTL are dropped on the next sweep.
type UserLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	r         rate.Limit
	b         int
	lastSweep time.Time
	now       func() time.Time
}

func NewUserRateLimiter(r rate.Limit, b int) *UserLimiter {
	return &UserLimiter{
		clients: make(map[string]*clientLimiter),
		r:       r,
		b:       b,
		now:     time.Now,
	}
}

func (u *UserLimiter) getLimiter(key string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	if now.Sub(u.lastSweep) > limiterIdleTTL {
		for k, c := range u.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(u.clients, k)
			}
		}
		u.lastSweep = now
	}

	c, ok := u.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(u.r, u.b)}
		u.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

func (u *UserLimiter) size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.clients)
}

func clientKey(r *http.Request) string {
	if userID, ok := GetUserID(r.Context()); ok {
		return "user:" + userID.String()
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}

// RateLimitMiddleware answers 429 with a Retry-After hint once the caller's bucket is empty.
func RateLimitMiddleware(limiter *UserLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := limiter.getLimiter(clientKey(r))
			if !l.Allow() {
				if l.Limit() > 0 && l.Limit() != rate.Inf {
					retry := math.Ceil(1 / float64(l.Limit()))
					w.Header().Set("Retry-After", strconv.Itoa(int(retry)))
				}
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
