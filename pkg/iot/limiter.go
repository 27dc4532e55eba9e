package iot

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore holds one token bucket per resolved device identifier
// (e.g. "hostname:box"). Buckets are created on first use with the store
// defaults and live for the life of the process.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(identifier string) *rate.Limiter {
	s.mu.RLock()
	limiter, exists := s.limiters[identifier]
	s.mu.RUnlock()
	if exists {
		return limiter
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if limiter, exists = s.limiters[identifier]; !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[identifier] = limiter
	}
	return limiter
}

// SetLimiter replaces the bucket of identifier with a full one.
func (s *RateLimiterStore) SetLimiter(identifier string, deviceRate rate.Limit, deviceBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[identifier] = rate.NewLimiter(deviceRate, deviceBurst)
}

// Allow takes one token for identifier. A nil store allows everything.
func (s *RateLimiterStore) Allow(identifier string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(identifier).Allow()
}
