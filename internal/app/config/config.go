package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	validator "github.com/go-playground/validator/v10"
	cron "github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment override, e.g. CLOSURES_DEMO_INVOCATIONS
const EnvPrefix = "CLOSURES"

// Config holds all configuration for the application
type Config struct {
	// Environment (development, production, test)
	Environment string `mapstructure:"environment" validate:"oneof=development production test"`

	// Logging configuration
	LogDir    string `mapstructure:"log_dir" validate:"required_if=LogToFile true"`
	LogToFile bool   `mapstructure:"log_to_file"`

	// Metrics configuration
	MetricsEnabled bool `mapstructure:"metrics_enabled"`

	// Demo configuration
	DemoInvocations int `mapstructure:"demo_invocations" validate:"min=1"`

	// Worker configuration
	TickSchedule string `mapstructure:"tick_schedule" validate:"required,cron"`
	TickCounters int    `mapstructure:"tick_counters" validate:"min=1"`
}

// Loader reads configuration from a directory and the environment
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader for config.yaml under path
func NewLoader(path string) *Loader {
	v := viper.New()

	// Set default values
	v.SetDefault("environment", "development")
	v.SetDefault("log_dir", "logs")
	v.SetDefault("log_to_file", false)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("demo_invocations", 3)
	v.SetDefault("tick_schedule", "@every 1s")
	v.SetDefault("tick_counters", 2)

	// Set config file path
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Override with environment variables if they exist
	// Convert format: CLOSURES_TICK_SCHEDULE -> tick_schedule
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig reads configuration from file or environment variables
func LoadConfig(path string) (*Config, error) {
	return NewLoader(path).Load()
}

// Load reads the config file, if any, and returns the validated config
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, continue with environment variables
	}

	return l.decode()
}

// Watch calls onChange with the reloaded config every time the config file
// changes. Load must have found a config file first.
func (l *Loader) Watch(onChange func(*Config, error)) error {
	if l.v.ConfigFileUsed() == "" {
		return errors.New("no config file to watch")
	}

	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(l.decode())
	})
	l.v.WatchConfig()

	return nil
}

// File returns the config file in use, or "" when running on defaults
func (l *Loader) File() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) decode() (*Config, error) {
	var config Config
	if err := l.v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required configuration
	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks cfg against its struct tags
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.RegisterValidation("cron", validateCron); err != nil {
		return err
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func validateCron(fl validator.FieldLevel) bool {
	_, err := cron.ParseStandard(fl.Field().String())
	return err == nil
}
