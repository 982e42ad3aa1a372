package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/campusmart/campusmart/internal/clock"
	obsmetrics "github.com/campusmart/campusmart/internal/observability/metrics"
	syncdomain "github.com/campusmart/campusmart/internal/sync/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("scheduler: invalid configuration")

type Params struct {
	fx.In

	Log     *zap.Logger
	SyncSvc syncdomain.Service
	Clock   clock.Clock
	Config  Config `optional:"true"`
}

// Scheduler triggers a full reconciliation run on a fixed interval. Each run
// gets its own deadline; a run that overlaps the previous one is dropped by
// the engine's guard rather than queued.
type Scheduler struct {
	log     *zap.Logger
	cfg     Config
	clock   clock.Clock
	syncSvc syncdomain.Service
}

func New(p Params) (*Scheduler, error) {
	if p.Log == nil || p.SyncSvc == nil || p.Clock == nil {
		return nil, ErrInvalidConfig
	}
	return &Scheduler{
		log:     p.Log.Named("scheduler"),
		cfg:     p.Config.withDefaults(),
		clock:   p.Clock,
		syncSvc: p.SyncSvc,
	}, nil
}

func (s *Scheduler) RunOnce(parent context.Context) error {
	start := s.clock.Now()
	ctx, cancel := context.WithTimeout(parent, s.cfg.RunTimeout)
	defer cancel()

	_, err := s.syncSvc.SyncAll(ctx, syncdomain.TriggerScheduled)
	if err == nil {
		return nil
	}
	if errors.Is(err, syncdomain.ErrSyncAlreadyRunning) {
		s.log.Warn("sync still running, skipping scheduled run")
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		obsmetrics.Sync().IncTimeout()
		s.log.Warn("scheduled sync timed out",
			zap.Duration("timeout", s.cfg.RunTimeout),
			zap.Duration("elapsed", s.clock.Now().Sub(start)),
			zap.Error(err),
		)
		return nil
	}
	return err
}

func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		if err := s.RunOnce(ctx); err != nil {
			s.log.Warn("scheduled sync failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
