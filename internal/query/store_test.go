package query

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// exerciseStore runs the behavior every Store must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("Get(missing) = %v, %v", ok, err)
	}

	if err := s.Set(ctx, "a", []byte("1"), 0); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "b", []byte("2"), time.Minute); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get(ctx, "a")
	if err != nil || !ok || string(v) != "1" {
		t.Fatalf("Get(a) = %q, %v, %v", v, ok, err)
	}

	if err := s.Delete(ctx, "a", "never-set"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Error("a should be deleted")
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "b"); ok {
		t.Error("b should be cleared")
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Get(ctx, "a"); err == nil {
		t.Error("Get after Close should fail")
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Minute, 0))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute, 0)
	s.Set(ctx, "short", []byte("x"), 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	if _, ok, _ := s.Get(ctx, "short"); ok {
		t.Error("entry should have expired")
	}
}

// TestRedisStore runs against a live server when GALLERY_TEST_REDIS_ADDR
// is set.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("GALLERY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("GALLERY_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	prefix := "gallery-test:" + uuid.NewString() + ":"
	s := NewRedisStore(client, WithRedisPrefix(prefix), WithRedisTTL(time.Minute))
	if s.Prefix() != prefix {
		t.Errorf("Prefix() = %q", s.Prefix())
	}
	exerciseStore(t, s)
}

func TestValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{KeyCategories, true},
		{CategoryKey("c1"), true},
		{ComponentKey("button"), true},
		{"component:", false},
		{"category:", false},
		{"sessions", false},
	}
	for _, tt := range tests {
		if got := ValidKey(tt.key); got != tt.want {
			t.Errorf("ValidKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
