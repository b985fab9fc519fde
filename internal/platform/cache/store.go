package cache

import (
	"context"
	"errors"
	"time"

	"canonforces/internal/common"

	"github.com/redis/go-redis/v9"
)

// Store adapts a redis client to the small Get/Set surface the services
// consume, translating redis.Nil into common.ErrNotFound.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}
