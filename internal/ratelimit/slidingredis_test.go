package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestLimiterAllowSlidingWindow(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	limiter := Limiter{Client: client, Prefix: "rl:"}
	ctx := context.Background()
	window := time.Second

	for i := 0; i < 3; i++ {
		allowed, _, _, err := limiter.Allow(ctx, "ip:127.0.0.1", window, 3)
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	allowed, remaining, _, err := limiter.Allow(ctx, "ip:127.0.0.1", window, 3)
	if err != nil {
		t.Fatalf("allow over limit: %v", err)
	}
	if allowed {
		t.Fatal("fourth request should be rejected")
	}
	if remaining != 0 {
		t.Fatalf("expected remaining 0, got %d", remaining)
	}

	mr.FastForward(2 * time.Second)

	allowed, _, _, err = limiter.Allow(ctx, "ip:127.0.0.1", window, 3)
	if err != nil {
		t.Fatalf("allow after window: %v", err)
	}
	if !allowed {
		t.Fatal("request after window should be allowed")
	}
}

func TestLimiterNilClientDisablesLimiting(t *testing.T) {
	limiter := Limiter{}
	for i := 0; i < 10; i++ {
		allowed, _, _, err := limiter.Allow(context.Background(), "ip:10.0.0.1", time.Second, 1)
		if err != nil {
			t.Fatalf("allow: %v", err)
		}
		if !allowed {
			t.Fatal("nil client must never reject")
		}
	}
}
