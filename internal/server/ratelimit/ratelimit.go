// Package ratelimit throttles API clients with per-rule token buckets. The
// expensive resource here is the completion tier: one allowed request can
// hold a model call open for tens of seconds, so completion-backed endpoints
// meter a shared hourly budget per client while cheap session and skill
// operations ride looser tiers (see config.go).
package ratelimit

import (
	"sync"
	"time"
)

// bucket holds one client's token balance for one rate limit rule. Tokens
// refill continuously at refillRate; a request consumes one whole token.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	refilledAt time.Time
	lastSeen   time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		refilledAt: now,
		lastSeen:   now,
	}
}

// take attempts to consume one token. It reports the balance after the
// attempt, when the bucket is full again (the reset header), and, on denial,
// how long until the next single token is available (the retry header).
// Retry is the shorter wait: the client may send one request then, it just
// cannot burst.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time, retry time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.refilledAt).Seconds()*b.refillRate)
	b.refilledAt = now
	b.lastSeen = now

	if b.tokens >= 1.0 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		deficit := b.capacity - b.tokens
		reset = now.Add(time.Duration(deficit / b.refillRate * float64(time.Second)))
	}
	if !allowed {
		retry = time.Duration((1.0 - b.tokens) / b.refillRate * float64(time.Second))
	}
	return allowed, remaining, reset, retry
}

// idleSince reports whether the bucket has gone unused since the cutoff.
func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info carries the outcome of a rate limit check for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter meters clients against the endpoint tiers. Buckets are keyed by
// client and matched rule rather than raw request path: the completion
// tier's prefix rule covers the analysis endpoints of every session, so a
// client cannot stretch its hourly completion budget by opening fresh
// sessions with new IDs.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	ticker  *time.Ticker
	stop    chan struct{}
}

// NewLimiter creates a rate limiter over the given configuration. A nil
// config gets permissive defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow checks one request from the given client against the tier matching
// the request path and method. A zero-valued Info with Allowed set means the
// request is not metered (limiter disabled, whitelisted client, or an
// unlimited endpoint such as the health check).
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	rule := MatchEndpoint(path, method, l.config.EndpointConfigs)

	key := clientID + "|default"
	limit := l.config.DefaultLimit
	window := l.config.DefaultWindow
	burst := l.config.DefaultLimit
	if rule != nil {
		if rule.Limit <= 0 {
			return true, Info{Allowed: true}
		}
		key = clientID + "|" + rule.Method + " " + rule.Path
		limit = rule.Limit
		window = rule.Window
		burst = rule.Burst
		if burst <= 0 {
			burst = rule.Limit
		}
	}

	allowed, remaining, reset, retry := l.bucketFor(key, limit, window, burst).take()

	return allowed, Info{
		Allowed:    allowed,
		Limit:      limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retry,
	}
}

// bucketFor returns the bucket for a client+rule key, creating it with the
// rule's budget on first use.
func (l *Limiter) bucketFor(key string, limit int, window time.Duration, burst int) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	b := newBucket(burst, float64(limit)/window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.dropIdle(time.Now().Add(-time.Hour))
		case <-l.stop:
			return
		}
	}
}

// dropIdle removes buckets unused since the cutoff so one-off clients do
// not accumulate without bound.
func (l *Limiter) dropIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop ends the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
