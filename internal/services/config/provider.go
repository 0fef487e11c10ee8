package config

import (
	"fmt"
	"path/filepath"

	"fsutil/internal/domain"
)

const (
	appDirName     = "fsutil"
	configFileName = "config.yaml"
)

// Provider provides configuration paths.
type Provider struct {
	fs domain.FileSystemAdapter
}

// NewProvider creates a new configuration provider.
func NewProvider(fs domain.FileSystemAdapter) *Provider {
	return &Provider{
		fs: fs,
	}
}

// GetConfigDir returns the directory holding the fsutil configuration file.
func (p *Provider) GetConfigDir() (string, error) {
	homeDir, err := p.fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDirName), nil
}

// GetConfigPath returns the path to the fsutil configuration file.
func (p *Provider) GetConfigPath() (string, error) {
	configDir, err := p.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}
