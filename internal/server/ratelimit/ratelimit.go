// Package ratelimit provides per-client token bucket rate limiting for the gateway service.
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// Rule limits one method and path. Limit requests are allowed per Window
// with up to Burst in a row.
type Rule struct {
	Method string
	Path   string
	Limit  int
	Window time.Duration
	Burst  int
}

// DefaultRules limits the write and model endpoints. Other routes are unlimited.
func DefaultRules() []Rule {
	return []Rule{
		{Method: http.MethodPost, Path: "/ai-enhance", Limit: 30, Window: time.Minute, Burst: 5},
		{Method: http.MethodPost, Path: "/save-resume", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

// Info describes the bucket state after a request.
type Info struct {
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type bucket struct {
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
}

func (b *bucket) take(now time.Time) bool {
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now
	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Limiter tracks a bucket per client and rule.
type Limiter struct {
	rules []Rule
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// New creates a limiter for rules. Buckets idle for an hour are dropped.
func New(rules []Rule) *Limiter {
	return &Limiter{
		rules:   rules,
		idle:    time.Hour,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

func (l *Limiter) match(method, path string) *Rule {
	for i := range l.rules {
		if l.rules[i].Method == method && l.rules[i].Path == path {
			return &l.rules[i]
		}
	}
	return nil
}

// Allow consumes a token for client on method and path.
func (l *Limiter) Allow(client, method, path string) (bool, Info) {
	rule := l.match(method, path)
	if rule == nil || rule.Limit <= 0 || rule.Window <= 0 {
		return true, Info{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	key := client + " " + method + " " + path
	b, ok := l.buckets[key]
	if !ok {
		capacity := rule.Burst
		if capacity <= 0 {
			capacity = rule.Limit
		}
		b = &bucket{
			capacity:   float64(capacity),
			refillRate: float64(rule.Limit) / rule.Window.Seconds(),
			tokens:     float64(capacity),
			lastRefill: now,
		}
		l.buckets[key] = b
	}

	allowed := b.take(now)
	info := Info{Limit: rule.Limit, Remaining: int(b.tokens)}
	if !allowed {
		info.RetryAfter = time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second))
	}
	return allowed, info
}

func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if now.Sub(b.lastRefill) > l.idle {
			delete(l.buckets, key)
		}
	}
}

// Middleware rejects requests over their limit with 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := l.Allow(clientID(r), r.Method, r.URL.Path)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		}
		if !allowed {
			seconds := int(info.RetryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprintf(w, `{"error":"rate limit exceeded","retry_after":%d}`+"\n", seconds)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID uses the remote IP. Forwarded headers are not trusted.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
