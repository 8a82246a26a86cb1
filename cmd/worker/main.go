package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"go-closures/internal/app/bootstrap"
	"go-closures/internal/app/config"
	"go-closures/internal/shared/logger"
)

func main() {
	startTime := time.Now()

	// Initialize all dependencies
	container, err := bootstrap.NewContainer(bootstrap.ContainerOptions{ConfigPath: "./configs"})
	if err != nil {
		log.Fatalf("Failed to initialize worker: %v", err)
	}
	defer container.Close()

	appLogger := container.Logger
	cfg := container.Config

	// Watch the config file; the running schedule is not swapped
	if container.Loader.File() != "" {
		err := container.Loader.Watch(func(next *config.Config, err error) {
			if err != nil {
				appLogger.Warn("Ignoring invalid config change", zap.Error(err))
				return
			}
			if next.TickSchedule != cfg.TickSchedule {
				appLogger.Info("Tick schedule changed, restart the worker to apply it",
					zap.String("current", cfg.TickSchedule),
					zap.String("configured", next.TickSchedule))
			}
		})
		if err != nil {
			appLogger.Warn("Config watch disabled", zap.Error(err))
		}
	}

	// Start the cron scheduler
	container.Scheduler.Start()

	// Set up graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	appLogger.Info("Worker is running",
		zap.String("environment", cfg.Environment),
		zap.Strings("counters", container.CounterService.IDs()))

	// Wait for interrupt signal
	<-done
	appLogger.Info("Worker is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Wait for scheduler to stop or timeout
	select {
	case <-container.Scheduler.Stop().Done():
		appLogger.Info("Cron scheduler stopped gracefully")
	case <-shutdownCtx.Done():
		appLogger.Warn("Cron scheduler shutdown timed out")
	}

	container.Metrics.RecordUptime(time.Since(startTime))
	logMetrics(appLogger, container.Registry)

	appLogger.Info("Worker gracefully stopped")
}

// logMetrics writes the final value of every gathered metric to the log
func logMetrics(appLogger *logger.Logger, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		appLogger.Warn("Failed to gather metrics", zap.Error(err))
		return
	}

	for _, family := range families {
		for _, m := range family.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}

			fields := []zap.Field{zap.String("metric", family.GetName()), zap.Float64("value", value)}
			for _, label := range m.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			appLogger.Info("Final metric", fields...)
		}
	}
}
