// Package migrations handles configuration migrations between versions.
package migrations

import (
	"strings"

	"gopkg.in/yaml.v3"

	"fsutil/internal/config"
)

// V1Config represents the old v1.x configuration structure.
type V1Config struct {
	Version         string `yaml:"version"`
	LogLevel        string `yaml:"logLevel"`
	LongStackTraces bool   `yaml:"longStackTraces"`
	JSONSpaces      *int   `yaml:"jsonSpaces"`
	DirMode         string `yaml:"dirMode"`
	FileMode        string `yaml:"fileMode"`
}

// migrateFromV1 converts v1 configuration to v2 format.
func migrateFromV1(data []byte) (config.Settings, error) {
	var v1Config V1Config
	if err := yaml.Unmarshal(data, &v1Config); err != nil {
		return config.Settings{}, err
	}

	settings := config.Defaults()
	if v1Config.LogLevel != "" {
		settings.LogLevel = v1Config.LogLevel
	}
	// longStackTraces was the only debugging switch in v1.
	settings.Development = v1Config.LongStackTraces
	if v1Config.JSONSpaces != nil && *v1Config.JSONSpaces >= 0 {
		settings.JSONIndent = strings.Repeat(" ", *v1Config.JSONSpaces)
	}
	if v1Config.DirMode != "" {
		settings.DirMode = v1Config.DirMode
	}
	if v1Config.FileMode != "" {
		settings.FileMode = v1Config.FileMode
	}

	return settings, nil
}
