package migrations

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fsutil/internal/config"
	"fsutil/internal/domain"
)

// ConfigMigrator handles configuration migrations between versions.
type ConfigMigrator interface {
	Migrate(ctx context.Context, data []byte, currentVersion string) (config.Settings, bool, error)
	FixPermissionsPostMigration(ctx context.Context, configPath string, fs domain.FileSystemAdapter) error
}

// Migrator implements configuration migration logic.
type Migrator struct {
	logger *slog.Logger
}

// NewMigrator creates a new configuration migrator.
func NewMigrator(logger *slog.Logger) *Migrator {
	return &Migrator{
		logger: logger,
	}
}

// Migrate attempts to migrate configuration data to the current version.
// Returns: settings, wasMigrated, error. Settings are only meaningful when
// wasMigrated is true.
func (m *Migrator) Migrate(
	ctx context.Context,
	data []byte,
	currentVersion string,
) (config.Settings, bool, error) {
	version, err := m.detectVersion(data)
	if err != nil {
		return config.Settings{}, false, fmt.Errorf("failed to detect config version: %w", err)
	}

	m.logger.DebugContext(ctx, "Detected configuration version", "version", version, "current", currentVersion)

	if version == currentVersion {
		return config.Settings{}, false, nil
	}

	switch version {
	case "1", "1.0":
		return m.migrateFromV1(ctx, data)
	default:
		return config.Settings{}, false, fmt.Errorf("unsupported configuration version: %s", version)
	}
}

// detectVersion attempts to detect the configuration version.
func (m *Migrator) detectVersion(data []byte) (string, error) {
	var versionCheck struct {
		Version         string `yaml:"version"`
		LongStackTraces *bool  `yaml:"longStackTraces"`
		JSONSpaces      *int   `yaml:"jsonSpaces"`
	}

	if err := yaml.Unmarshal(data, &versionCheck); err != nil {
		return "", err
	}

	if versionCheck.Version != "" {
		return versionCheck.Version, nil
	}

	// Unversioned files are v1 only if they carry v1 keys; anything else is
	// treated as a hand-written current file.
	if versionCheck.LongStackTraces != nil || versionCheck.JSONSpaces != nil {
		return "1", nil
	}
	return config.Version, nil
}

// migrateFromV1 handles migration from v1.x to current version.
func (m *Migrator) migrateFromV1(ctx context.Context, data []byte) (config.Settings, bool, error) {
	settings, err := migrateFromV1(data)
	if err != nil {
		return config.Settings{}, false, fmt.Errorf("failed to migrate from v1: %w", err)
	}

	m.logger.InfoContext(ctx, "Successfully migrated configuration from v1.x",
		"development", settings.Development,
		"jsonIndent", len(settings.JSONIndent))
	return settings, true, nil
}

// FixPermissionsPostMigration tightens file and directory permissions after
// migration from v1.x, which wrote its config world-readable.
func (m *Migrator) FixPermissionsPostMigration(
	ctx context.Context,
	configPath string,
	fs domain.FileSystemAdapter,
) error {
	const (
		dirPermissions  = 0o700
		filePermissions = 0o600
	)

	if err := fs.Chmod(configPath, filePermissions); err != nil {
		m.logger.WarnContext(ctx, "Failed to fix config file permissions",
			"path", configPath, "error", err)
		return fmt.Errorf("failed to fix config file permissions: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := fs.Chmod(configDir, dirPermissions); err != nil {
		m.logger.WarnContext(ctx, "Failed to fix config directory permissions",
			"path", configDir, "error", err)
		return fmt.Errorf("failed to fix config directory permissions: %w", err)
	}

	m.logger.InfoContext(ctx, "Fixed file and directory permissions post-migration",
		"config_file", configPath, "config_dir", configDir)
	return nil
}
