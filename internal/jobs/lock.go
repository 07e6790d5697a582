package jobs

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Locker gives one instance the right to run a job for a key.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(url string) (*RedisLocker, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisLocker{client: redis.NewClient(opts)}, nil
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

func (l *RedisLocker) Close() error {
	return l.client.Close()
}

// NoopLocker always grants the lock (single instance deployments).
type NoopLocker struct{}

func (NoopLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return true, nil
}
