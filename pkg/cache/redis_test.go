package cache

import (
	"context"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestKey(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"session", "abc"}, "wardrobe:session:abc"},
		{[]string{"item", "o", "i"}, "wardrobe:item:o:i"},
		{nil, "wardrobe:"},
	}
	for _, tt := range tests {
		if got := Key(tt.parts...); got != tt.want {
			t.Errorf("Key(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "not-a-valid-url"); err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "redis://localhost:19999"); err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// newTestClient connects to REDIS_URL, or to an in-process Redis when it
// is unset.
func newTestClient(t *testing.T) *RedisClient {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://" + miniredis.RunT(t).Addr()
	}
	rc, err := NewRedisClient(context.Background(), url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })
	return rc
}

func TestRedisClient_Ping(t *testing.T) {
	rc := newTestClient(t)

	if err := rc.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if rc.Client() == nil {
		t.Fatal("expected non-nil underlying client")
	}
}
