package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func limitedHandler(t *testing.T, limit int) (*RateLimiter, http.Handler) {
	t.Helper()
	rl := NewRateLimiter(limit)
	t.Cleanup(rl.Stop)
	return rl, rl.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doRequest(h http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	_, h := limitedHandler(t, 3)

	for i := 0; i < 3; i++ {
		if code := doRequest(h, "10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, code, http.StatusOK)
		}
	}

	if code := doRequest(h, "10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Errorf("over-limit status = %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	_, h := limitedHandler(t, 1)

	if code := doRequest(h, "10.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("first client: status = %d, want %d", code, http.StatusOK)
	}
	if code := doRequest(h, "10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("second client: status = %d, want %d", code, http.StatusOK)
	}
	if code := doRequest(h, "10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Errorf("first client again: status = %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	rl, h := limitedHandler(t, 1)

	doRequest(h, "10.0.0.1:5000")
	rl.evictIdle(time.Now().Add(evictAfter + time.Minute))

	rl.mu.Lock()
	n := len(rl.visitors)
	rl.mu.Unlock()
	if n != 0 {
		t.Errorf("visitors = %d after eviction, want 0", n)
	}
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if ip := clientIP(req); ip != "203.0.113.7" {
		t.Errorf("clientIP = %q, want %q", ip, "203.0.113.7")
	}
}
