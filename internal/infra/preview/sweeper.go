package preview

import (
	"context"
	"log/slog"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/service"

	"go.uber.org/fx"
)

// SweeperParams defines the required parameters
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Previews service.PreviewStore
}

// Sweeper frees previews abandoned by closed dialogs and expired sessions.
type Sweeper struct {
	previews service.PreviewStore
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewSweeper starts the sweep loop with the application and stops it on shutdown.
func NewSweeper(params SweeperParams) *Sweeper {
	sweeper := &Sweeper{
		previews: params.Previews,
		ttl:      params.Config.Previews.TTL,
		interval: params.Config.Previews.SweepInterval,
		logger:   params.Logger,
		now:      time.Now,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})

	return sweeper
}

// Run sweeps every interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce frees previews older than the TTL.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	swept, err := s.previews.Sweep(ctx, s.now().Add(-s.ttl))
	if err != nil {
		s.logger.ErrorContext(ctx, "Preview sweep failed", slog.Any("error", err))

		return swept
	}

	if swept > 0 {
		s.logger.InfoContext(ctx, "Expired previews released",
			slog.Int("count", swept),
			slog.Duration("ttl", s.ttl),
		)
	}

	return swept
}
