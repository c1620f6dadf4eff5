// Package relay drains the notification outbox on a cron schedule.
package relay

import (
	"context"
	"log/slog"

	"proptrust/config"
	"proptrust/internal/delivery"
	"proptrust/internal/domain/lifecycle"
	"proptrust/internal/errors"
	"proptrust/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params holds dependencies for the relay, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	Dispatcher usecase.NotificationDispatcher
}

type relay struct {
	cron       *cron.Cron
	dispatcher usecase.NotificationDispatcher
	logger     *slog.Logger
	schedule   string

	// cancels in-flight runs on shutdown
	runCtx    context.Context
	cancelRun context.CancelFunc
}

// NewRelay schedules DeliverPending. A run still in progress when the next one is due is
// skipped, so at most one relay pass touches the outbox at a time.
func NewRelay(params Params) (delivery.Delivery, error) {
	schedule := config.DefaultOutboxSchedule
	if params.Cfg.Outbox != nil && params.Cfg.Outbox.Schedule != "" {
		schedule = params.Cfg.Outbox.Schedule
	}

	logger := params.Logger.With(slog.String("component", "outbox_relay"))
	cronLog := cronLogger{logger: logger}
	runCtx, cancelRun := context.WithCancel(context.Background())

	r := &relay{
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		dispatcher: params.Dispatcher,
		logger:     logger,
		schedule:   schedule,
		runCtx:     runCtx,
		cancelRun:  cancelRun,
	}

	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		cancelRun()

		return nil, errors.Wrapf(err, "invalid outbox schedule %q", schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r, nil
}

// Serve starts the scheduler and returns immediately.
func (r *relay) Serve(_ context.Context) error {
	r.logger.Info("Starting outbox relay", slog.String("schedule", r.schedule))
	r.cron.Start()

	return nil
}

func (r *relay) run() {
	ctx, cancel := context.WithTimeout(r.runCtx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := r.dispatcher.DeliverPending(ctx); err != nil {
		r.logger.Error("Outbox relay run failed", slog.Any("error", err))
	}
}

func (r *relay) stop(ctx context.Context) error {
	r.logger.Info("Stopping outbox relay")
	done := r.cron.Stop()
	// Abort the in-flight run; undelivered rows stay due for the next start.
	r.cancelRun()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// cronLogger routes cron's internal logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
