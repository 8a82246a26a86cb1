package counterJobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	counterService "go-closures/internal/pkg/counter/service"
	"go-closures/internal/shared/logger"
)

func TestCounterTickJob_Run(t *testing.T) {
	svc := counterService.NewCounterService(logger.NewNop(), nil)
	a, b := svc.Create(), svc.Create()
	job := NewCounterTickJob("@every 1s", []*counterService.Instance{a, b}, logger.NewNop())

	require.NoError(t, job.Run(context.Background()))
	require.NoError(t, job.Run(context.Background()))

	assert.Equal(t, 3, a.Next())
	assert.Equal(t, 3, b.Next())
	assert.Equal(t, "@every 1s", job.Schedule())
	assert.Equal(t, "counter-tick", job.Name())
}

func TestCounterTickJob_Cancelled(t *testing.T) {
	svc := counterService.NewCounterService(logger.NewNop(), nil)
	a := svc.Create()
	job := NewCounterTickJob("@every 1s", []*counterService.Instance{a}, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, job.Run(ctx), context.Canceled)
	assert.Equal(t, 1, a.Next(), "cancelled run must not touch counters")
}
