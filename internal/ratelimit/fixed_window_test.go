package ratelimit

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestFixedWindowLimiterRedis(t *testing.T) {
	redis := miniredis.RunT(t)
	limiter, err := NewRedisFixedWindowLimiter(redis.Addr(), "", "test:ratelimit", 2, time.Second)
	if err != nil {
		t.Fatalf("new redis limiter: %v", err)
	}
	if !limiter.Allow("user-1") {
		t.Fatalf("first request should pass")
	}
	if !limiter.Allow("user-1") {
		t.Fatalf("second request should pass")
	}
	if limiter.Allow("user-1") {
		t.Fatalf("third request should be blocked")
	}
}

func TestFixedWindowLimiterRedisFailClosed(t *testing.T) {
	redis := miniredis.RunT(t)
	limiter, err := NewRedisFixedWindowLimiter(redis.Addr(), "", "test:ratelimit", 1, time.Second)
	if err != nil {
		t.Fatalf("new redis limiter: %v", err)
	}
	redis.Close()
	if limiter.Allow("user-1") {
		t.Fatalf("limiter should fail closed on redis errors")
	}
}

func TestFixedWindowLimiterRequiresRedisAddr(t *testing.T) {
	limiter, err := NewRedisFixedWindowLimiter("", "", "test:ratelimit", 1, time.Second)
	if err == nil || limiter != nil {
		t.Fatalf("expected constructor error for empty redis addr")
	}
}

func TestFixedWindowLimiterMemory(t *testing.T) {
	limiter, err := NewMemoryFixedWindowLimiter(2, time.Minute)
	if err != nil {
		t.Fatalf("new memory limiter: %v", err)
	}
	if !limiter.Allow("user-1") || !limiter.Allow("user-1") {
		t.Fatalf("requests within quota should pass")
	}
	if limiter.Allow("user-1") {
		t.Fatalf("over-quota request should be blocked")
	}
	if !limiter.Allow("user-2") {
		t.Fatalf("other keys should have their own quota")
	}
}

func TestFixedWindowLimiterMemoryRequiresPositiveLimit(t *testing.T) {
	if _, err := NewMemoryFixedWindowLimiter(0, time.Minute); err == nil {
		t.Fatalf("expected constructor error for zero limit")
	}
}
