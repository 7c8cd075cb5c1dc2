// Package spacelock provides the per-space single-writer locks used by the booking ledger.
package spacelock

import (
	"context"
	"sync"

	"mall-space-booking/internal/pkg/errs"
)

// LocalLocker serializes writers within one process. Idle keys are dropped
// once nobody holds or waits for them.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]*slot)}
}

func (l *LocalLocker) WithLock(ctx context.Context, spaceID string, fn func(ctx context.Context) error) error {
	s := l.ref(spaceID)
	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(spaceID, s)
		return errs.Mark(ctx.Err(), errs.ErrLockUnavailable)
	}
	defer func() {
		<-s.ch
		l.unref(spaceID, s)
	}()

	return fn(ctx)
}

func (l *LocalLocker) ref(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *LocalLocker) unref(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

func (l *LocalLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
