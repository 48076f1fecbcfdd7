package attempts

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login_attempts:"

// RedisStore keeps failure counters in Redis. INCR gives an atomic
// increment-and-return, so concurrent failures for the same identity never
// produce overlapping before/after pairs.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) RecordFailure(ctx context.Context, identity string) (int, int, error) {
	after, err := s.client.Incr(ctx, keyPrefix+identity).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("incr login attempts: %w", err)
	}
	return int(after) - 1, int(after), nil
}

func (s *RedisStore) Clear(ctx context.Context, identity string) (int, bool, error) {
	val, err := s.client.GetDel(ctx, keyPrefix+identity).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("getdel login attempts: %w", err)
	}
	return val, true, nil
}
