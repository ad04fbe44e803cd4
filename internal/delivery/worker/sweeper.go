package worker

import (
	"context"
	"log/slog"
	"time"

	"landmarket/config"
	"landmarket/internal/delivery"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/lifecycle"
	"landmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const defaultSweepSchedule = "@daily"

// SweeperParams holds dependencies for the evidence sweeper
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	SweepUC usecase.SweepUsecase
}

// EvidenceSweeper periodically removes evidence left behind by deleted listings.
type EvidenceSweeper struct {
	schedule string
	enabled  bool
	logger   *slog.Logger
	sweepUC  usecase.SweepUsecase
	cron     *cron.Cron
}

// NewEvidenceSweeper creates the sweeper delivery. The schedule is validated here
// so a bad cron spec fails at startup.
func NewEvidenceSweeper(params SweeperParams) (delivery.Delivery, error) {
	schedule := defaultSweepSchedule
	enabled := false
	if params.Cfg.Sweep != nil {
		enabled = params.Cfg.Sweep.Enabled
		if params.Cfg.Sweep.Schedule != "" {
			schedule = params.Cfg.Sweep.Schedule
		}
	}

	s := &EvidenceSweeper{
		schedule: schedule,
		enabled:  enabled,
		logger:   params.Logger,
		sweepUC:  params.SweepUC,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}

	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, errors.Wrapf(err, "invalid sweep schedule %q", schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve registers the job and starts the scheduler. It returns immediately.
func (s *EvidenceSweeper) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Evidence sweeper disabled")

		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, func() { s.RunOnce(ctx) }); err != nil {
		return errors.Wrapf(err, "invalid sweep schedule %q", s.schedule)
	}

	s.logger.Info("Starting evidence sweeper", slog.String("schedule", s.schedule))
	s.cron.Start()

	return nil
}

// RunOnce performs a single sweep with its own request id.
func (s *EvidenceSweeper) RunOnce(ctx context.Context) {
	requestID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("job", "evidence_sweep"))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	start := time.Now()
	removed, err := s.sweepUC.SweepOrphanedEvidence(ctx)
	if err != nil {
		logger.Error("Evidence sweep failed", slog.Int("removed", removed), slog.Any("error", err))

		return
	}

	logger.Info("Evidence sweep completed", slog.Int("removed", removed), slog.Duration("took", time.Since(start)))
}

func (s *EvidenceSweeper) stop(ctx context.Context) error {
	stopped := s.cron.Stop()

	select {
	case <-stopped.Done():
		return nil
	case <-time.After(lifecycle.DefaultTimeout):
		return errors.New("evidence sweep still running at shutdown")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
