package counterJobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	counterService "go-closures/internal/pkg/counter/service"
	"go-closures/internal/shared/logger"
)

// CounterTickJob advances a fixed set of counters once per run
type CounterTickJob struct {
	schedule  string
	instances []*counterService.Instance
	logger    *logger.Logger
}

// NewCounterTickJob creates a new tick job over instances
func NewCounterTickJob(schedule string, instances []*counterService.Instance, logger *logger.Logger) *CounterTickJob {
	return &CounterTickJob{
		schedule:  schedule,
		instances: instances,
		logger:    logger.Named("tick-job"),
	}
}

// Name returns the name of the job
func (j *CounterTickJob) Name() string {
	return "counter-tick"
}

// Schedule returns the cron schedule expression
func (j *CounterTickJob) Schedule() string {
	return j.schedule
}

// Description returns a description of what the job does
func (j *CounterTickJob) Description() string {
	return "Invokes every tracked counter once"
}

// Timeout returns the maximum time the job should run
func (j *CounterTickJob) Timeout() time.Duration {
	return 10 * time.Second
}

// Run executes the tick job
func (j *CounterTickJob) Run(ctx context.Context) error {
	for _, inst := range j.instances {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("tick interrupted: %w", err)
		}

		j.logger.Info("Counter ticked",
			zap.String("counter_id", inst.ID()),
			zap.Int("value", inst.Next()))
	}
	return nil
}
