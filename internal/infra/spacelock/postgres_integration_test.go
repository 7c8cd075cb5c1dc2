//go:build integration

package spacelock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-space-booking/internal/testutil/pgtest"
)

func TestPostgresLocker_SerializesSameSpace(t *testing.T) {
	pool, _ := pgtest.NewPool(t)
	locker := NewPostgresLocker(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	var inside, overlaps int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := locker.WithLock(ctx, "S-1", func(context.Context) error {
				if atomic.AddInt32(&inside, 1) > 1 {
					atomic.AddInt32(&overlaps, 1)
				}
				time.Sleep(20 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&overlaps))
}

func TestPostgresLocker_DifferentSpacesDoNotBlock(t *testing.T) {
	pool, _ := pgtest.NewPool(t)
	locker := NewPostgresLocker(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	holding := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = locker.WithLock(ctx, "S-1", func(context.Context) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	err := locker.WithLock(ctx, "S-2", func(context.Context) error { return nil })
	require.NoError(t, err)
	close(release)
}
