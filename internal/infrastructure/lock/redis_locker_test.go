package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeservices_crm/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

func TestAcquire_UnreachableRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	release, err := NewRedisLocker(rdb).Acquire(ctx, "lock:job:j1", time.Second)
	if err == nil {
		release()
		t.Fatalf("expected error when redis is unreachable")
	}
	if errors.Is(err, interfaces.ErrLockNotObtained) {
		t.Fatalf("connection failure must not be reported as contention: %v", err)
	}
	if release != nil {
		t.Fatalf("expected nil release on failure")
	}
	if err := Ping(ctx, rdb); err == nil {
		t.Fatalf("expected ping error")
	}
}
