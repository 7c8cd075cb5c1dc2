package spacelock

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"mall-space-booking/internal/pkg/errs"
)

// PostgresLocker takes a session advisory lock keyed by the space id on a
// dedicated pooled connection, so every instance sharing the database serializes.
type PostgresLocker struct {
	pool *pgxpool.Pool
}

func NewPostgresLocker(pool *pgxpool.Pool) *PostgresLocker {
	return &PostgresLocker{pool: pool}
}

func (l *PostgresLocker) WithLock(ctx context.Context, spaceID string, fn func(ctx context.Context) error) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "acquire lock connection"), errs.ErrLockUnavailable)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock(hashtextextended('space:' || $1, 0))`, spaceID); err != nil {
		return errs.Mark(errs.Wrap(err, "pg_advisory_lock"), errs.ErrLockUnavailable)
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := conn.Exec(unlockCtx, `SELECT pg_advisory_unlock(hashtextextended('space:' || $1, 0))`, spaceID); err != nil {
			// A connection that cannot unlock must not go back to the pool holding the lock.
			slog.Error("failed to release advisory lock", "space_id", spaceID, "error", err.Error())
			_ = conn.Conn().Close(unlockCtx)
		}
	}()

	return fn(ctx)
}
