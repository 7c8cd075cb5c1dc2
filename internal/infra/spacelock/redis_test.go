package spacelock

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-space-booking/internal/pkg/errs"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLocker_Ordering(t *testing.T) {
	_, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Second, 5*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var order []string
	var mu sync.Mutex
	firstDone := make(chan struct{})
	releaseFirst := make(chan struct{})

	go func() {
		err := locker.WithLock(ctx, "S-1", func(context.Context) error {
			mu.Lock()
			order = append(order, "first")
			mu.Unlock()
			close(firstDone)
			<-releaseFirst
			return nil
		})
		assert.NoError(t, err)
	}()

	<-firstDone

	go func() {
		err := locker.WithLock(ctx, "S-1", func(context.Context) error {
			mu.Lock()
			order = append(order, "second")
			mu.Unlock()
			return nil
		})
		assert.NoError(t, err)
	}()

	close(releaseFirst)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 2
	}, time.Second, 10*time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRedisLocker_ReleasesKey(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Second, 5*time.Millisecond)

	err := locker.WithLock(context.Background(), "S-1", func(context.Context) error {
		assert.True(t, mr.Exists(redisKeyPrefix+"S-1"))
		return nil
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists(redisKeyPrefix+"S-1"))
}

func TestRedisLocker_DoesNotReleaseForeignToken(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Second, 5*time.Millisecond)

	err := locker.WithLock(context.Background(), "S-1", func(context.Context) error {
		// Simulate expiry and takeover by another holder.
		require.NoError(t, mr.Set(redisKeyPrefix+"S-1", "someone-else"))
		return nil
	})
	require.NoError(t, err)

	got, err := mr.Get(redisKeyPrefix + "S-1")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLocker_TimesOutWhileHeld(t *testing.T) {
	mr, client := newTestRedis(t)
	require.NoError(t, mr.Set(redisKeyPrefix+"S-1", "held"))
	locker := NewRedisLocker(client, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := locker.WithLock(ctx, "S-1", func(context.Context) error {
		t.Fatal("callback must not run")
		return nil
	})
	assert.True(t, errs.Is(err, errs.ErrLockUnavailable))
}

func TestRedisLocker_RedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()
	locker := NewRedisLocker(client, time.Second, 5*time.Millisecond)

	err := locker.WithLock(context.Background(), "S-1", func(context.Context) error { return nil })
	assert.True(t, errs.Is(err, errs.ErrLockUnavailable))

	var nilClient RedisLocker
	err = nilClient.WithLock(context.Background(), "S-1", func(context.Context) error { return nil })
	assert.True(t, errs.Is(err, errs.ErrLockUnavailable))
}

func TestRedisLocker_LogsFailedRelease(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Minute, 5*time.Millisecond)

	err := locker.WithLock(context.Background(), "S-1", func(context.Context) error {
		mr.Close()
		return nil
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "failed to release space lock")
	assert.Contains(t, buf.String(), redisKeyPrefix+"S-1")
}
