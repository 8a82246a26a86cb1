package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.False(t, cfg.LogToFile)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 3, cfg.DemoInvocations)
	assert.Equal(t, "@every 1s", cfg.TickSchedule)
	assert.Equal(t, 2, cfg.TickCounters)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "environment: production\ndemo_invocations: 5\ntick_schedule: \"*/5 * * * *\"\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 5, cfg.DemoInvocations)
	assert.Equal(t, "*/5 * * * *", cfg.TickSchedule)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "demo_invocations: 5\n")
	t.Setenv("CLOSURES_DEMO_INVOCATIONS", "7")
	t.Setenv("CLOSURES_ENVIRONMENT", "test")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.DemoInvocations)
	assert.Equal(t, "test", cfg.Environment)
}

func TestLoadConfig_Invalid(t *testing.T) {
	table := []string{
		"demo_invocations: 0\n",
		"tick_counters: -1\n",
		"tick_schedule: \"not a schedule\"\n",
		"environment: staging\n",
		"log_to_file: true\nlog_dir: \"\"\n",
	}
	for _, body := range table {
		dir := t.TempDir()
		writeConfig(t, dir, body)

		_, err := LoadConfig(dir)
		assert.ErrorIs(t, err, ErrInvalidConfig, body)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "demo_invocations: [\n")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoader_WatchWithoutFile(t *testing.T) {
	l := NewLoader(t.TempDir())
	_, err := l.Load()
	require.NoError(t, err)

	assert.Empty(t, l.File())
	assert.Error(t, l.Watch(func(*Config, error) {}))
}

func TestLoader_Watch(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "tick_counters: 2\n")

	l := NewLoader(dir)
	_, err := l.Load()
	require.NoError(t, err)

	changes := make(chan *Config, 16)
	require.NoError(t, l.Watch(func(cfg *Config, err error) {
		if err == nil {
			select {
			case changes <- cfg:
			default:
			}
		}
	}))

	writeConfig(t, dir, "tick_counters: 4\n")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.TickCounters == 4 {
				return
			}
		case <-timeout:
			t.Fatal("config change was not observed")
		}
	}
}
