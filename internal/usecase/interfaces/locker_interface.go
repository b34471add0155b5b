package interfaces

import (
	"context"
	"errors"
	"time"
)

var ErrLockNotObtained = errors.New("lock not obtained")

// ILocker serializes work on a single key across service instances.
// Acquire returns ErrLockNotObtained when another holder owns the key.
type ILocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}
