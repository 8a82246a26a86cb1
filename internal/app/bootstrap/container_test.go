package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-closures/internal/app/config"
)

func TestNewContainer(t *testing.T) {
	dir := t.TempDir()
	body := "environment: test\ntick_counters: 3\ntick_schedule: \"@every 1m\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	c, err := NewContainer(ContainerOptions{ConfigPath: dir})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "test", c.Config.Environment)
	assert.Len(t, c.Instances, 3)
	assert.Len(t, c.CounterService.IDs(), 3)
	assert.Equal(t, []string{"counter-tick"}, c.Scheduler.GetRegisteredJobs())
	assert.NotNil(t, c.Metrics)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), c.Loader.File())
}

func TestNewContainer_MetricsDisabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("metrics_enabled: false\n"), 0o644))

	c, err := NewContainer(ContainerOptions{ConfigPath: dir})
	require.NoError(t, err)

	assert.Nil(t, c.Metrics)
	assert.Equal(t, 1, c.Instances[0].Next())
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tick_counters: 0\n"), 0o644))

	_, err := NewContainer(ContainerOptions{ConfigPath: dir})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
