package components

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"mall-space-booking/internal/infra/memstore"
	"mall-space-booking/internal/infra/messaging"
	"mall-space-booking/internal/infra/pgstore"
	"mall-space-booking/internal/infra/spacelock"
	"mall-space-booking/internal/pkg/config"
	"mall-space-booking/internal/usecase/shared"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewReservationStore,
		func(s shared.ReservationStore) shared.ReservationReader { return s },
		NewSpaceLocker,
		NewEventPublisher,
	),
)

func NewReservationStore(cfg config.Config, pool *pgxpool.Pool) shared.ReservationStore {
	if cfg.Ledger.Store == config.StorePostgres {
		return pgstore.NewReservationStore(pool)
	}
	return memstore.NewReservationStore()
}

func NewSpaceLocker(cfg config.Config, pool *pgxpool.Pool, client *redis.Client, logger *slog.Logger) shared.SpaceLocker {
	if cfg.Ledger.Lock == config.LockLocal && cfg.Ledger.Store == config.StorePostgres {
		logger.Warn("local space lock with a shared postgres store; overlapping bookings are only prevented on a single instance",
			"ledger_store", cfg.Ledger.Store, "ledger_lock", cfg.Ledger.Lock)
	}
	switch cfg.Ledger.Lock {
	case config.LockRedis:
		return spacelock.NewRedisLocker(client, cfg.Ledger.LockTTL, cfg.Ledger.LockRetry)
	case config.LockPostgres:
		return spacelock.NewPostgresLocker(pool)
	default:
		return spacelock.NewLocalLocker()
	}
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.Ledger.Publisher != config.PublisherAMQP {
		return messaging.NewLogPublisher(logger), nil
	}

	pub, err := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	logger.Info("amqp publisher ready", "queue", cfg.AMQP.Queue)
	return pub, nil
}
