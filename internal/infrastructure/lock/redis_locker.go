package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	retryBackoff = 100 * time.Millisecond
	retryLimit   = 3
)

// RedisLocker hands out per-key leases backed by redislock.
type RedisLocker struct {
	client *redislock.Client
	log    *logrus.Entry
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 100,
	})
}

func NewRedisLocker(rdb redis.UniversalClient) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(rdb),
		log:    logger.For("lock", "infrastructure"),
	}
}

// Ping reports whether redis is reachable. Called once at startup.
func Ping(ctx context.Context, rdb redis.UniversalClient) error {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Acquire obtains key for ttl, retrying briefly before giving up with
// interfaces.ErrLockNotObtained. The returned release is safe to defer.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	lk, err := l.client.Obtain(ctx, key, ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(retryBackoff), retryLimit),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, interfaces.ErrLockNotObtained
	}
	if err != nil {
		logger.LogError(l.log, "Acquire", map[string]string{"key": key}, err)
		return nil, err
	}

	return func() {
		// Release on a fresh context so a cancelled request still frees the key.
		if err := lk.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			logger.LogError(l.log, "Release", map[string]string{"key": key}, err)
		}
	}, nil
}
