package spacelock

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mall-space-booking/internal/pkg/errs"
)

const redisKeyPrefix = "mall:space-lock:"

const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`

// RedisLocker is a SETNX token lock shared by every instance pointing at the same Redis.
// TTL bounds how long a crashed holder can block a space.
type RedisLocker struct {
	R            *redis.Client
	TTL          time.Duration
	RetryBackoff time.Duration
}

func NewRedisLocker(client *redis.Client, ttl, retry time.Duration) *RedisLocker {
	return &RedisLocker{R: client, TTL: ttl, RetryBackoff: retry}
}

func (l *RedisLocker) WithLock(ctx context.Context, spaceID string, fn func(ctx context.Context) error) error {
	if l.R == nil {
		return errs.Mark(errors.New("redis client not configured"), errs.ErrLockUnavailable)
	}
	ttl := l.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	retry := l.RetryBackoff
	if retry <= 0 {
		retry = 50 * time.Millisecond
	}

	key := redisKeyPrefix + spaceID
	token := uuid.NewString()

	for {
		ok, err := l.R.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return errs.Mark(errs.Wrap(err, "acquire space lock"), errs.ErrLockUnavailable)
		}
		if ok {
			defer l.release(key, token)
			return fn(ctx)
		}
		timer := time.NewTimer(retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errs.Mark(ctx.Err(), errs.ErrLockUnavailable)
		case <-timer.C:
		}
	}
}

// release runs on a fresh context so a cancelled request still frees the key.
func (l *RedisLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := l.R.Eval(ctx, releaseScript, []string{key}, token).Err()
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "unknown command") {
		err = l.R.Del(ctx, key).Err()
	}
	if err != nil {
		slog.Warn("failed to release space lock; it expires with its ttl",
			"key", key, "ttl", l.TTL, "error", err.Error())
	}
}
