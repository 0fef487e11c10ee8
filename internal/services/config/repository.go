// Package config persists fsutil settings and locates the configuration file.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fsutil/internal/config"
	"fsutil/internal/domain"
	"fsutil/internal/migrations"
)

const (
	dirPermissions  = 0o700 // Owner-only access
	filePermissions = 0o600 // Read/write owner only
)

// ErrConfigExists is returned by Init when the file is present and overwrite
// was not requested.
var ErrConfigExists = errors.New("configuration file already exists")

// Repository handles configuration persistence.
type Repository struct {
	fs         domain.FileSystemAdapter
	configPath string
	migrator   migrations.ConfigMigrator
	logger     *slog.Logger
}

// NewRepository creates a new configuration repository.
func NewRepository(
	fs domain.FileSystemAdapter,
	configPath string,
	logger *slog.Logger,
) *Repository {
	return &Repository{
		fs:         fs,
		configPath: configPath,
		migrator:   migrations.NewMigrator(logger),
		logger:     logger,
	}
}

// Path returns the configuration file location.
func (r *Repository) Path() string {
	return r.configPath
}

// Exists reports whether the configuration file is present.
func (r *Repository) Exists(ctx context.Context) (bool, error) {
	_, err := r.fs.Stat(r.configPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		r.logger.DebugContext(ctx, "Configuration file does not exist", "path", r.configPath)
		return false, nil
	}
	return false, fmt.Errorf("failed to stat configuration file: %w", err)
}

// Init writes settings to a new configuration file. An existing file is only
// replaced when overwrite is set.
func (r *Repository) Init(ctx context.Context, settings config.Settings, overwrite bool) error {
	exists, err := r.Exists(ctx)
	if err != nil {
		return err
	}
	if exists && !overwrite {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, r.configPath)
	}

	return r.Save(ctx, settings)
}

// Save writes settings to the configuration file, creating its directory.
func (r *Repository) Save(ctx context.Context, settings config.Settings) error {
	if err := r.fs.MkdirAll(filepath.Dir(r.configPath), dirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	settings.Version = config.Version
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if writeErr := r.fs.WriteFile(r.configPath, data, filePermissions); writeErr != nil {
		return fmt.Errorf("failed to write configuration file: %w", writeErr)
	}

	r.logger.DebugContext(ctx, "Configuration saved", "path", r.configPath)
	return nil
}

// Load reads the configuration file, migrating it in place when it was
// written by an older version. It returns os.ErrNotExist when the file is
// absent. The boolean reports whether a migration happened.
func (r *Repository) Load(ctx context.Context) (config.Settings, bool, error) {
	data, err := r.fs.ReadFile(r.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.DebugContext(ctx, "Configuration file does not exist", "path", r.configPath)
			return config.Settings{}, false, os.ErrNotExist
		}
		return config.Settings{}, false, fmt.Errorf("failed to read configuration file: %w", err)
	}

	settings, migrated, migrationErr := r.migrator.Migrate(ctx, data, config.Version)
	if migrationErr != nil {
		return config.Settings{}, false, fmt.Errorf("failed to migrate configuration: %w", migrationErr)
	}

	if migrated {
		if saveErr := r.Save(ctx, settings); saveErr != nil {
			return config.Settings{}, false, fmt.Errorf("failed to save migrated configuration: %w", saveErr)
		}
		if permErr := r.migrator.FixPermissionsPostMigration(ctx, r.configPath, r.fs); permErr != nil {
			r.logger.WarnContext(ctx, "Failed to fix permissions during migration", "error", permErr)
		}
		r.logger.InfoContext(ctx, "Configuration migrated and loaded",
			"path", r.configPath,
			"version", config.Version)
		return settings, true, nil
	}

	settings = config.Defaults()
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return config.Settings{}, false, fmt.Errorf("failed to unmarshal configuration: %w", unmarshalErr)
	}
	if validateErr := settings.Validate(); validateErr != nil {
		return config.Settings{}, false, validateErr
	}

	r.logger.DebugContext(ctx, "Configuration loaded",
		"path", r.configPath,
		"version", settings.Version)
	return settings, false, nil
}
