// Package background runs the periodic loops of the application.
package background

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Runner schedules cancellable periodic jobs. Jobs never terminate the
// runner: panics are recovered and logged, and the loops stop only when
// Stop is called at process shutdown.
type Runner struct {
	cron   *cron.Cron
	logger zerolog.Logger
	ctx    context.Context
}

// NewRunner returns a runner whose jobs log through the given logger.
func NewRunner(logger zerolog.Logger) *Runner {
	c := cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(&logger))))

	return &Runner{
		cron:   c,
		logger: logger,
		ctx:    logger.WithContext(context.Background()),
	}
}

// AddEvery registers job to run on the given fixed interval.
func (r *Runner) AddEvery(interval time.Duration, name string, job func(ctx context.Context)) error {
	if interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive", name)
	}

	schedule := fmt.Sprintf("@every %s", interval)

	_, err := r.cron.AddFunc(schedule, func() {
		job(r.ctx)
	})
	if err != nil {
		return fmt.Errorf("job %s: %w", name, err)
	}

	r.logger.Info().Str("job", name).Str("schedule", schedule).Msg("scheduled background job")

	return nil
}

// Start starts all registered jobs in their own goroutines.
func (r *Runner) Start() {
	r.cron.Start()
}

// Stop stops scheduling new runs and returns a context that is done
// once the in-flight jobs have drained.
func (r *Runner) Stop() context.Context {
	return r.cron.Stop()
}
