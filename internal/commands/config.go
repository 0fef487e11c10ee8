package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fsutil/internal/config"
)

// SettingsStore persists settings to the configuration file.
type SettingsStore interface {
	Path() string
	Init(ctx context.Context, settings config.Settings, overwrite bool) error
	Load(ctx context.Context) (config.Settings, bool, error)
}

// ConfigInitCommand writes a configuration file.
type ConfigInitCommand struct {
	store  SettingsStore
	logger *slog.Logger
}

// NewConfigInitCommand creates a new config init command.
func NewConfigInitCommand(store SettingsStore, logger *slog.Logger) *ConfigInitCommand {
	return &ConfigInitCommand{
		store:  store,
		logger: logger,
	}
}

// ConfigInitRequest contains the parameters for the config init command.
type ConfigInitRequest struct {
	Settings config.Settings
	Force    bool
}

// Execute writes req.Settings and returns the file path.
func (c *ConfigInitCommand) Execute(ctx context.Context, req ConfigInitRequest) (string, error) {
	if err := req.Settings.Validate(); err != nil {
		return "", err
	}

	if err := c.store.Init(ctx, req.Settings, req.Force); err != nil {
		return "", fmt.Errorf("failed to initialize configuration: %w", err)
	}

	c.logger.InfoContext(ctx, "Configuration initialized", "path", c.store.Path())
	return c.store.Path(), nil
}

// ConfigMigrateCommand upgrades an older configuration file in place.
type ConfigMigrateCommand struct {
	store  SettingsStore
	logger *slog.Logger
}

// NewConfigMigrateCommand creates a new config migrate command.
func NewConfigMigrateCommand(store SettingsStore, logger *slog.Logger) *ConfigMigrateCommand {
	return &ConfigMigrateCommand{
		store:  store,
		logger: logger,
	}
}

// ConfigMigrateResult reports what the migration did.
type ConfigMigrateResult struct {
	Path     string
	Migrated bool
	Settings config.Settings
}

// Execute runs the config migrate command.
func (c *ConfigMigrateCommand) Execute(ctx context.Context) (*ConfigMigrateResult, error) {
	settings, migrated, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration %s: %w", c.store.Path(), err)
	}

	return &ConfigMigrateResult{
		Path:     c.store.Path(),
		Migrated: migrated,
		Settings: settings,
	}, nil
}
