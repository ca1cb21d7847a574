package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(rules []Rule) (*Limiter, *time.Time) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(rules)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiter_BurstThenRefill(t *testing.T) {
	l, now := newTestLimiter([]Rule{{Method: "POST", Path: "/ai-enhance", Limit: 60, Window: time.Minute, Burst: 2}})

	ok, info := l.Allow("1.2.3.4", "POST", "/ai-enhance")
	assert.True(t, ok)
	assert.Equal(t, 60, info.Limit)
	assert.Equal(t, 1, info.Remaining)

	ok, _ = l.Allow("1.2.3.4", "POST", "/ai-enhance")
	assert.True(t, ok)

	ok, info = l.Allow("1.2.3.4", "POST", "/ai-enhance")
	assert.False(t, ok)
	assert.Greater(t, info.RetryAfter, time.Duration(0))

	// Another client has its own bucket
	ok, _ = l.Allow("5.6.7.8", "POST", "/ai-enhance")
	assert.True(t, ok)

	*now = now.Add(time.Second)
	ok, _ = l.Allow("1.2.3.4", "POST", "/ai-enhance")
	assert.True(t, ok)
}

func TestLimiter_UnmatchedIsUnlimited(t *testing.T) {
	l, _ := newTestLimiter(DefaultRules())
	for i := 0; i < 1000; i++ {
		ok, info := l.Allow("1.2.3.4", "GET", "/health")
		require.True(t, ok)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_SweepsIdleBuckets(t *testing.T) {
	l, now := newTestLimiter([]Rule{{Method: "POST", Path: "/save-resume", Limit: 1, Window: time.Minute}})
	l.Allow("a", "POST", "/save-resume")
	require.Len(t, l.buckets, 1)

	*now = now.Add(2 * time.Hour)
	l.Allow("b", "POST", "/save-resume")
	assert.Len(t, l.buckets, 1)
	_, ok := l.buckets["b POST /save-resume"]
	assert.True(t, ok)
}

func TestMiddleware(t *testing.T) {
	l, _ := newTestLimiter([]Rule{{Method: "POST", Path: "/save-resume", Limit: 1, Window: time.Hour, Burst: 1}})
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/save-resume", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}
