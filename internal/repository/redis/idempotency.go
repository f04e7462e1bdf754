package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idemLock      = "LOCK"
	idemResPrefix = "RES:"
)

// IdempotencyStore remembers the response of a completed request under its
// Idempotency-Key. A key holds either "LOCK" while the first request runs or
// "RES:<json>" once it has finished.
type IdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

// Begin claims key for a new request.
//
// Returns:
//   - payload, true, _, nil: the request already completed; replay payload.
//   - "", false, true, nil: the caller owns the key and must Save or Release.
//   - "", false, false, nil: another request holds the key.
func (s *IdempotencyStore) Begin(
	ctx context.Context,
	key string,
	lockTTL time.Duration,
) (payload string, done bool, acquired bool, err error) {
	if payload, done, err = s.result(ctx, key); err != nil || done {
		return payload, done, false, err
	}

	acquired, err = s.rdb.SetNX(ctx, key, idemLock, lockTTL).Result()
	if err != nil || acquired {
		return "", false, acquired, err
	}

	// Lost the race: the winner may have finished in between.
	payload, done, err = s.result(ctx, key)
	return payload, done, false, err
}

func (s *IdempotencyStore) Save(ctx context.Context, key string, jsonPayload string) error {
	return s.rdb.Set(ctx, key, idemResPrefix+jsonPayload, s.ttl).Err()
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *IdempotencyStore) result(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if strings.HasPrefix(v, idemResPrefix) {
		return strings.TrimPrefix(v, idemResPrefix), true, nil
	}

	return "", false, nil
}
