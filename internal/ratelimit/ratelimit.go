package ratelimit

import (
	"sync"
	"time"
)

// Config interface for rate limiting configuration
type Config interface {
	GetDisableRateLimit() bool
}

// RateLimitResult contains the result of a rate limit check
type RateLimitResult struct {
	ShouldBlock   bool
	RemainingTime time.Duration
	Reason        string
}

// Limiter applies a sliding-window submission limit per client. Extraction
// runs are cheap but unbounded OCR uploads are not; the limiter keeps one
// noisy client from starving the rest.
type Limiter struct {
	cfg    Config
	limit  int
	window time.Duration

	mu   sync.Mutex
	hits map[string][]time.Time
}

// NewLimiter creates a limiter allowing limit requests per window per client
func NewLimiter(cfg Config, limit int, window time.Duration) *Limiter {
	return &Limiter{
		cfg:    cfg,
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
	}
}

// Check records a request for the client and reports whether it should be
// blocked. Blocked requests are not recorded.
func (l *Limiter) Check(clientIP string) RateLimitResult {
	if l.cfg.GetDisableRateLimit() {
		return RateLimitResult{
			ShouldBlock: false,
			Reason:      "rate_limiting_disabled",
		}
	}

	now := time.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.hits[clientIP][:0]
	for _, hit := range l.hits[clientIP] {
		if hit.After(cutoff) {
			recent = append(recent, hit)
		}
	}

	if len(recent) >= l.limit {
		l.hits[clientIP] = recent
		// The oldest surviving hit decides when capacity frees up
		return RateLimitResult{
			ShouldBlock:   true,
			RemainingTime: l.window - now.Sub(recent[0]),
			Reason:        "rate_limit_active",
		}
	}

	l.hits[clientIP] = append(recent, now)
	return RateLimitResult{
		ShouldBlock: false,
		Reason:      "under_limit",
	}
}

// Reset forgets all recorded hits for a client
func (l *Limiter) Reset(clientIP string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.hits, clientIP)
}
