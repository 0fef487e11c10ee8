package app

import (
	"context"
	"io"
	"log/slog"

	"fsutil/internal/config"
	"fsutil/internal/domain"
	configsvc "fsutil/internal/services/config"
)

// App contains all application dependencies.
type App struct {
	// Filesystem facade used by every file command
	Files domain.FileOperations

	// Configuration dependencies
	ConfigRepo     *configsvc.Repository
	ConfigProvider domain.ConfigProvider

	// Raw filesystem access
	FileSystem domain.FileSystemAdapter

	// I/O dependencies
	Confirmer domain.Confirmer

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	Settings    config.Settings
	Verbose     bool
	Development bool

	// ConfigPath overrides the default configuration file location.
	ConfigPath string

	// LogOutput defaults to stderr.
	LogOutput io.Writer
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithSettings replaces the default settings.
func WithSettings(settings config.Settings) Option {
	return func(cfg *Config) {
		cfg.Settings = settings
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
	}
}

// WithDevelopment turns on development diagnostics: debug level and source
// locations on every log record.
func WithDevelopment(development bool) Option {
	return func(cfg *Config) {
		cfg.Development = development
	}
}

// WithConfigPath points the app at a specific configuration file.
func WithConfigPath(path string) Option {
	return func(cfg *Config) {
		cfg.ConfigPath = path
	}
}

// WithLogOutput redirects log output.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		Settings: config.Defaults(),
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
