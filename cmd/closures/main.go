package main

import (
	"log"

	"go.uber.org/zap"

	"go-closures/internal/app/config"
	"go-closures/internal/shared/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(logger.Options{
		Environment: cfg.Environment,
		LogDir:      cfg.LogDir,
		ToFile:      cfg.LogToFile,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	appLogger.Info("=== Testing Closures ===", zap.Int("invocations", cfg.DemoInvocations))

	demoGlobal(appLogger.Named("global"), cfg.DemoInvocations)
	demoLocal(appLogger.Named("local"), cfg.DemoInvocations)
	demoClosure(appLogger.Named("closure"), cfg.DemoInvocations)

	appLogger.Info("=== End Testing Closures ===")
}
