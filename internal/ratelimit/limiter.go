package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter hands out one token bucket per client key.
type ClientLimiter struct {
	clients map[string]*clientEntry
	mu      sync.RWMutex
	config  RateLimitConfig
	now     func() time.Time
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
	// Buckets idle longer than this are dropped when the table is swept.
	IdleTTL    time.Duration
	MaxClients int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		IdleTTL:           10 * time.Minute,
		MaxClients:        10000,
	}
}

func NewClientLimiter(config RateLimitConfig) *ClientLimiter {
	return &ClientLimiter{
		clients: make(map[string]*clientEntry),
		config:  config,
		now:     time.Now,
	}
}

func (l *ClientLimiter) GetLimiter(client string) *rate.Limiter {
	l.mu.RLock()
	entry, exists := l.clients[client]
	l.mu.RUnlock()

	if exists {
		l.touch(entry)
		return entry.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, exists = l.clients[client]; exists {
		entry.lastSeen = l.now()
		return entry.limiter
	}

	if l.config.MaxClients > 0 && len(l.clients) >= l.config.MaxClients {
		l.sweepLocked()
	}

	entry = &clientEntry{
		limiter:  rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.BurstSize),
		lastSeen: l.now(),
	}
	l.clients[client] = entry
	return entry.limiter
}

func (l *ClientLimiter) touch(entry *clientEntry) {
	l.mu.Lock()
	entry.lastSeen = l.now()
	l.mu.Unlock()
}

func (l *ClientLimiter) sweepLocked() {
	cutoff := l.now().Add(-l.config.IdleTTL)
	for key, entry := range l.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}

func (l *ClientLimiter) Allow(client string) bool {
	return l.GetLimiter(client).Allow()
}
