package app

import (
	"context"
	"os"

	"fsutil/internal/adapters/filesystem"
	"fsutil/internal/adapters/terminal"
	"fsutil/internal/logging"
	configsvc "fsutil/internal/services/config"
	"fsutil/internal/services/fsops"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	// Create logger. Development mode is applied here, once, for the whole process.
	logCfg := cfg.Settings.LoggingConfig()
	if cfg.Verbose {
		logCfg.Level = logging.LevelDebug
	}
	if cfg.Development {
		logCfg.Development = true
	}
	if cfg.LogOutput != nil {
		logCfg.Output = cfg.LogOutput
	}
	logger := logging.NewLogger(logCfg).Logger

	// Create filesystem adapter and the facade on top of it.
	fs := filesystem.New()
	files := fsops.NewService(fs, cfg.Settings.Options(), logger)

	// Create confirmation prompt with environment variable support.
	confirmer := terminal.NewAdapter(os.Stdin, os.Stderr)

	// Create config services.
	configProvider := configsvc.NewProvider(fs)
	configPath := cfg.ConfigPath
	if configPath == "" {
		var err error
		configPath, err = configProvider.GetConfigPath()
		if err != nil {
			return nil, err
		}
	}
	configRepo := configsvc.NewRepository(fs, configPath, logger)

	logger.DebugContext(ctx, "Initializing fsutil with configuration",
		"logLevel", string(logCfg.Level),
		"verbose", cfg.Verbose,
		"development", logCfg.Development,
		"atomicWrites", cfg.Settings.AtomicWrites,
		"configPath", configPath)

	return &App{
		Files:          files,
		ConfigRepo:     configRepo,
		ConfigProvider: configProvider,
		FileSystem:     fs,
		Confirmer:      confirmer,
		Logger:         logger,
		Config:         cfg,
	}, nil
}
