package aqua

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRateLimiterStore_Basic(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter("127.0.0.1")
	if limiter == nil {
		t.Fatal("expected limiter, got nil")
	}
	if limiter.Limit() != 1 {
		t.Errorf("expected limit 1, got %v", limiter.Limit())
	}
}

func TestRateLimiterStore_CustomLimit(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	store.SetLimiter("10.0.0.2", 5, 10)
	limiter := store.GetLimiter("10.0.0.2")

	if limiter.Limit() != 5 {
		t.Errorf("expected limit 5, got %v", limiter.Limit())
	}
	if limiter.Burst() != 10 {
		t.Errorf("expected burst 10, got %v", limiter.Burst())
	}
}

func TestRateLimiterStore_Concurrency(t *testing.T) {
	store := NewRateLimiterStore(10, 5)
	clientKey := uuid.NewString()

	var wg sync.WaitGroup

	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.GetLimiter(clientKey) == nil {
				t.Error("expected limiter, got nil")
			}
		}()
	}

	wg.Wait()

	if store.Len() != 1 {
		t.Errorf("expected a single limiter for one client, got %d", store.Len())
	}
}

func TestRateLimiter_Enforcement(t *testing.T) {
	store := NewRateLimiterStore(2, 2) // 2 events/sec

	clientKey := uuid.NewString()

	if !store.Allow(clientKey) || !store.Allow(clientKey) {
		t.Fatal("expected first two calls to be allowed")
	}

	if store.Allow(clientKey) {
		t.Error("expected third call to be rate limited")
	}

	if !store.Allow(uuid.NewString()) {
		t.Error("expected another client to have its own bucket")
	}

	time.Sleep(600 * time.Millisecond)
	if !store.Allow(clientKey) {
		t.Error("expected one token to be available after refill")
	}
}

func TestRateLimiter_NilStoreAllows(t *testing.T) {
	var store *RateLimiterStore
	for range 10 {
		if !store.Allow("anyone") {
			t.Fatal("nil store must not limit")
		}
	}
}
