package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zap.Logger to provide structured logging
type Logger struct {
	*zap.Logger
}

// Options controls where and how the logger writes
type Options struct {
	Environment string
	LogDir      string
	ToFile      bool
}

// New creates a new logger instance based on the environment
func New(opts Options) (*Logger, error) {
	level := zapcore.DebugLevel
	var consoleEncoder zapcore.Encoder

	if opts.Environment == "production" {
		// Production config (structured JSON logs)
		level = zapcore.InfoLevel
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		// Development config (human-readable colored logs)
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level)

	if opts.ToFile {
		if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		// No colors for files
		fileEncoderConfig := zap.NewProductionEncoderConfig()
		fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

		core = zapcore.NewTee(
			core,
			zapcore.NewCore(
				zapcore.NewJSONEncoder(fileEncoderConfig),
				zapcore.AddSync(rotating(filepath.Join(opts.LogDir, "app.log"))),
				level,
			),
			zapcore.NewCore(
				zapcore.NewJSONEncoder(fileEncoderConfig),
				zapcore.AddSync(rotating(filepath.Join(opts.LogDir, "error.log"))),
				zapcore.ErrorLevel,
			),
		)
	}

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{
		Logger: logger,
	}, nil
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{
		Logger: zap.NewNop(),
	}
}

// Wrap returns a Logger around an existing zap logger
func Wrap(l *zap.Logger) *Logger {
	return &Logger{
		Logger: l,
	}
}

func rotating(filename string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    100, // megabytes
		MaxBackups: 30,
		MaxAge:     30, // days
		Compress:   true,
	}
}

// Named returns a named logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		Logger: l.Logger.Named(name),
	}
}

// With creates a child logger with the given fields
func (l *Logger) With(fields ...zapcore.Field) *Logger {
	return &Logger{
		Logger: l.Logger.With(fields...),
	}
}

// Sugar returns a sugared logger
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.Logger.Sugar()
}
