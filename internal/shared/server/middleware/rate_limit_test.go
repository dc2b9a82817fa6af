package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsBurstThenRefills(t *testing.T) {
	current := time.Unix(0, 0)
	limiter := NewRateLimiter(func() time.Time { return current })

	rule := RateLimitRule{Rate: 1, Burst: 2}

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow("u1|DEFAULT", rule); !ok {
			t.Fatalf("request %d within burst should pass", i+1)
		}
	}

	ok, retryAfter := limiter.Allow("u1|DEFAULT", rule)
	if ok {
		t.Fatal("expected limit after burst")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %v", retryAfter)
	}

	current = current.Add(time.Second)
	if ok, _ := limiter.Allow("u1|DEFAULT", rule); !ok {
		t.Fatal("expected refill after one second")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	current := time.Unix(0, 0)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if ok, _ := limiter.Allow("a|X", rule); !ok {
		t.Fatal("first key should pass")
	}
	if ok, _ := limiter.Allow("a|X", rule); ok {
		t.Fatal("first key should now be limited")
	}
	if ok, _ := limiter.Allow("b|X", rule); !ok {
		t.Fatal("second key should be unaffected")
	}
}

func TestRateLimiterZeroRuleIsUnlimited(t *testing.T) {
	limiter := NewRateLimiter(nil)
	for i := 0; i < 100; i++ {
		if ok, _ := limiter.Allow("k", RateLimitRule{}); !ok {
			t.Fatal("empty rule should never limit")
		}
	}
}
