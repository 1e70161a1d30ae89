package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const evictAfter = 5 * time.Minute

type visitor struct {
	windowStart time.Time
	count       int
}

// RateLimiter enforces a fixed-window per-IP request limit. Entries for
// idle clients are evicted by a background loop that runs until Stop.
type RateLimiter struct {
	limit    int
	mu       sync.Mutex
	visitors map[string]*visitor
	done     chan struct{}
}

// NewRateLimiter starts a limiter allowing requestsPerMinute per client IP.
// Call Stop on shutdown to release the eviction goroutine.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		limit:    requestsPerMinute,
		visitors: make(map[string]*visitor),
		done:     make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

// Wrap rejects requests over the limit with 429.
func (rl *RateLimiter) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists || now.Sub(v.windowStart) > time.Minute {
		rl.visitors[ip] = &visitor{windowStart: now, count: 1}
		return true
	}

	if v.count >= rl.limit {
		return false
	}

	v.count++
	return true
}

// Stop terminates the eviction loop.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(evictAfter)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.evictIdle(time.Now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if now.Sub(v.windowStart) > evictAfter {
			delete(rl.visitors, ip)
		}
	}
}

// clientIP extracts the originating IP, honouring proxy headers.
func clientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
