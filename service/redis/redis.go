package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketplace/base/ctx"
)

const (
	// Forever means the key never expires
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil

	// ErrExpireNotExistOrTimeout is returned by Expire when the key does
	// not exist or the timeout could not be set
	ErrExpireNotExistOrTimeout = errors.New("key not exist or timeout could not be set")
)

// Service wraps a redigo pool with metrics
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// SetNX sets the key only if it does not already exist
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	Del(context ctx.Ctx, keys ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)

	// TTL returns remaining ttl in seconds, -1 if no expire, -2 if no key
	TTL(context ctx.Ctx, key string) (int, error)

	Expire(context ctx.Ctx, key string, ttl time.Duration) error
	Incr(context ctx.Ctx, key string) (int64, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
