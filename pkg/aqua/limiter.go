package aqua

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore hands out one token bucket per client key (remote IP or peer address).
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
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

// GetLimiter returns the bucket for clientKey, creating one at the default rate and
// burst the first time a client is seen.
func (s *RateLimiterStore) GetLimiter(clientKey string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[clientKey]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[clientKey] = limiter
	}
	return limiter
}

// SetLimiter replaces the bucket for one client, e.g. to lift a trusted address above the default.
func (s *RateLimiterStore) SetLimiter(clientKey string, clientRate rate.Limit, clientBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[clientKey] = rate.NewLimiter(clientRate, clientBurst)
}

// Allow reports whether clientKey may proceed. A nil store lets everything through.
func (s *RateLimiterStore) Allow(clientKey string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(clientKey).Allow()
}

func (s *RateLimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
