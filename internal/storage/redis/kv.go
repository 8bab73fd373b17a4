// Package redis persists key-value entries in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/honeycarbs/jobboard/internal/repository"
)

const defaultPrefix = "jobboard:"

var _ repository.KV = (*KV)(nil)

type KV struct {
	rdb    goredis.Cmdable
	prefix string
}

// NewKV namespaces every key with prefix; an empty prefix uses "jobboard:"
func NewKV(rdb goredis.Cmdable, prefix string) *KV {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &KV{rdb: rdb, prefix: prefix}
}

func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis kv: get %q: %w", key, err)
	}
	return val, nil
}

func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis kv: set %q: %w", key, err)
	}
	return nil
}
