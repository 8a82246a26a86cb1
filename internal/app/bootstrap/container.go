package bootstrap

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	cron "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-closures/internal/app/config"
	counterService "go-closures/internal/pkg/counter/service"
	"go-closures/internal/scheduler"
	services "go-closures/internal/scheduler/services"
	"go-closures/internal/shared/logger"
	"go-closures/internal/shared/metrics"
)

// Container holds all application dependencies
type Container struct {
	// Configuration and Infrastructure
	Config   *config.Config
	Loader   *config.Loader
	Logger   *logger.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	// Services
	CounterService *counterService.DefaultCounterService
	Instances      []*counterService.Instance

	// Jobs
	Scheduler *scheduler.Scheduler
}

// ContainerOptions defines configuration options for the container
type ContainerOptions struct {
	ConfigPath string
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts ContainerOptions) (*Container, error) {
	container := &Container{}

	// Load configuration first
	container.Loader = config.NewLoader(opts.ConfigPath)
	cfg, err := container.Loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	container.Config = cfg

	// Initialize logger
	appLogger, err := logger.New(logger.Options{
		Environment: cfg.Environment,
		LogDir:      cfg.LogDir,
		ToFile:      cfg.LogToFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	container.Logger = appLogger

	// Initialize metrics if enabled
	container.Registry = prometheus.NewRegistry()
	if cfg.MetricsEnabled {
		container.Metrics = metrics.New(container.Registry, appLogger)
	}

	// Initialize services
	container.initServices()

	// Initialize scheduler
	if err := container.initScheduler(); err != nil {
		return nil, fmt.Errorf("failed to initialize scheduler: %w", err)
	}

	// Validate container
	if err := container.validate(); err != nil {
		return nil, fmt.Errorf("container validation failed: %w", err)
	}

	container.Logger.Info("Container initialized successfully")
	return container, nil
}

// initServices creates the counter service and the counters the worker ticks
func (c *Container) initServices() {
	c.CounterService = counterService.NewCounterService(c.Logger, c.Metrics)

	c.Instances = make([]*counterService.Instance, 0, c.Config.TickCounters)
	for i := 0; i < c.Config.TickCounters; i++ {
		c.Instances = append(c.Instances, c.CounterService.Create())
	}

	c.Logger.Info("Services initialized successfully", zap.Int("counters", len(c.Instances)))
}

// initScheduler creates the scheduler and registers its jobs
func (c *Container) initScheduler() error {
	c.Scheduler = scheduler.NewScheduler(cron.New(), c.Logger, c.Metrics)

	return c.Scheduler.RegisterJobs(
		services.NewCounterTickJob(c.Config.TickSchedule, c.Instances, c.Logger),
	)
}

// validate checks that every dependency was created
func (c *Container) validate() error {
	if c.Config == nil {
		return errors.New("config is not initialized")
	}
	if c.Logger == nil {
		return errors.New("logger is not initialized")
	}
	if c.CounterService == nil {
		return errors.New("counter service is not initialized")
	}
	if c.Scheduler == nil {
		return errors.New("scheduler is not initialized")
	}
	return nil
}

// Close flushes the logger
func (c *Container) Close() error {
	c.Logger.Info("Closing container")
	// Sync on stdout returns EINVAL on some platforms; nothing to recover
	_ = c.Logger.Sync()
	return nil
}
