package mirror

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis: satu string key per koleksi, tanpa TTL.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

func NewRedis(rdb *redis.Client, prefix string) *Redis {
	return &Redis{rdb: rdb, prefix: prefix}
}

func (r *Redis) Read(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: read %q: %w", key, err)
	}
	return b, true, nil
}

func (r *Redis) Write(ctx context.Context, key string, snapshot []byte) error {
	if err := r.rdb.Set(ctx, r.prefix+key, snapshot, 0).Err(); err != nil {
		return fmt.Errorf("redis: write %q: %w", key, err)
	}
	return nil
}

// Close tidak menutup client; pemiliknya main().
func (r *Redis) Close() error { return nil }
