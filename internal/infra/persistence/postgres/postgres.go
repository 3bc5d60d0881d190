// Package postgres keeps console session records and store settings in
// PostgreSQL through gorm.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/lifecycle"
	"backoffice/internal/errors"
	"backoffice/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	meterName = "backoffice/postgres"

	// poolWaitWarnThreshold is the average wait per acquisition that gets logged.
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config        *config.Config
	Logger        *slog.Logger
	MeterProvider metric.MeterProvider
}

// New opens the pool, migrates the two console tables on start and exports
// pool statistics as gauges.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through the transaction manager.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	registration, err := registerPoolGauges(params.MeterProvider.Meter(meterName), sqlDB, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			return errors.Wrap(db.WithContext(ctx).AutoMigrate(model.All()...), "failed to migrate console tables")
		},
		OnStop: func(_ context.Context) error {
			_ = registration.Unregister()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolObserver turns sql.DBStats into gauges on each collection and logs
// when acquisitions started waiting noticeably since the previous one.
type poolObserver struct {
	db     *sql.DB
	logger *slog.Logger
	prev   sql.DBStats
}

func registerPoolGauges(meter metric.Meter, db *sql.DB, logger *slog.Logger) (metric.Registration, error) {
	open, err := meter.Int64ObservableGauge("db.pool.connections",
		metric.WithDescription("Connections in the pool by state"))
	if err != nil {
		return nil, errors.Wrap(err, "create pool connections gauge")
	}
	waits, err := meter.Int64ObservableCounter("db.pool.wait_count",
		metric.WithDescription("Acquisitions that had to wait for a free connection"))
	if err != nil {
		return nil, errors.Wrap(err, "create pool wait counter")
	}

	observer := &poolObserver{db: db, logger: logger}

	registration, err := meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		stats := observer.collect(ctx)
		o.ObserveInt64(open, int64(stats.InUse), metric.WithAttributes(attribute.String("state", "in_use")))
		o.ObserveInt64(open, int64(stats.Idle), metric.WithAttributes(attribute.String("state", "idle")))
		o.ObserveInt64(waits, stats.WaitCount)

		return nil
	}, open, waits)

	return registration, errors.Wrap(err, "register pool callback")
}

func (p *poolObserver) collect(ctx context.Context) sql.DBStats {
	cur := p.db.Stats()
	waitDelta := cur.WaitCount - p.prev.WaitCount
	if waitDelta > 0 {
		avg := (cur.WaitDuration - p.prev.WaitDuration) / time.Duration(waitDelta)
		if avg >= poolWaitWarnThreshold {
			p.logger.WarnContext(ctx, "Postgres pool wait detected",
				slog.Int64("waitCountDelta", waitDelta),
				slog.Duration("avgWait", avg),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("inUseConns", cur.InUse),
			)
		}
	}
	p.prev = cur

	return cur
}
