// Package config defines fsutil's settings and loads them with viper.
//
// Settings come from, in increasing precedence: built-in defaults, the YAML
// config file, and FSUTIL_* environment variables (a .env file in the working
// directory is loaded into the environment before viper reads it).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"fsutil/internal/errors"
	"fsutil/internal/logging"
	"fsutil/internal/services/fsops"
)

// Version is the schema version written to new config files.
const Version = "2"

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "FSUTIL"

// Settings keys.
const (
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
	KeyDevelopment   = "development"
	KeyDirMode       = "dir_mode"
	KeyFileMode      = "file_mode"
	KeyJSONIndent    = "json_indent"
	KeyAtomicWrites  = "atomic_writes"
	KeyCopyRateLimit = "copy_rate_limit"
)

// Settings represents the fsutil configuration file.
type Settings struct {
	Version       string `mapstructure:"version" yaml:"version" json:"version"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat     string `mapstructure:"log_format" yaml:"log_format" json:"log_format"`
	Development   bool   `mapstructure:"development" yaml:"development" json:"development"`
	DirMode       string `mapstructure:"dir_mode" yaml:"dir_mode" json:"dir_mode"`
	FileMode      string `mapstructure:"file_mode" yaml:"file_mode" json:"file_mode"`
	JSONIndent    string `mapstructure:"json_indent" yaml:"json_indent" json:"json_indent"`
	AtomicWrites  bool   `mapstructure:"atomic_writes" yaml:"atomic_writes" json:"atomic_writes"`
	CopyRateLimit int    `mapstructure:"copy_rate_limit" yaml:"copy_rate_limit" json:"copy_rate_limit"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Version:       Version,
		LogLevel:      string(logging.LevelInfo),
		LogFormat:     "text",
		Development:   false,
		DirMode:       "0755",
		FileMode:      "0644",
		JSONIndent:    "  ",
		AtomicWrites:  false,
		CopyRateLimit: 0,
	}
}

// SetDefaults registers the default settings on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("version", d.Version)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyDevelopment, d.Development)
	v.SetDefault(KeyDirMode, d.DirMode)
	v.SetDefault(KeyFileMode, d.FileMode)
	v.SetDefault(KeyJSONIndent, d.JSONIndent)
	v.SetDefault(KeyAtomicWrites, d.AtomicWrites)
	v.SetDefault(KeyCopyRateLimit, d.CopyRateLimit)
}

// BindEnv makes v read FSUTIL_* environment variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.NewConfigurationError("", "", "failed to decode settings", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks every field that has a restricted set of values.
func (s Settings) Validate() error {
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return errors.NewConfigurationError(KeyLogLevel, s.LogLevel, "must be one of debug, info, warn, error", err)
	}

	switch s.LogFormat {
	case "text", "json", "":
	default:
		return errors.NewConfigurationError(KeyLogFormat, s.LogFormat, "must be text or json", nil)
	}

	if _, err := ParseMode(s.DirMode); err != nil {
		return errors.NewConfigurationError(KeyDirMode, s.DirMode, "must be an octal permission such as 0755", err)
	}
	if _, err := ParseMode(s.FileMode); err != nil {
		return errors.NewConfigurationError(KeyFileMode, s.FileMode, "must be an octal permission such as 0644", err)
	}

	if strings.Trim(s.JSONIndent, " \t") != "" {
		return errors.NewConfigurationError(KeyJSONIndent, s.JSONIndent, "may only contain spaces and tabs", nil)
	}

	if s.CopyRateLimit < 0 {
		return errors.NewConfigurationError(
			KeyCopyRateLimit,
			strconv.Itoa(s.CopyRateLimit),
			"must not be negative",
			nil,
		)
	}

	return nil
}

// Options converts the settings into facade options.
// Settings are expected to have passed Validate.
func (s Settings) Options() fsops.Options {
	opts := fsops.DefaultOptions()
	if mode, err := ParseMode(s.DirMode); err == nil {
		opts.DirMode = mode
	}
	if mode, err := ParseMode(s.FileMode); err == nil {
		opts.FileMode = mode
	}
	opts.JSONIndent = s.JSONIndent
	opts.AtomicWrites = s.AtomicWrites
	opts.CopyRateLimit = s.CopyRateLimit
	return opts
}

// LoggingConfig converts the settings into a logger configuration.
func (s Settings) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(s.LogLevel); err == nil {
		cfg.Level = level
	}
	if s.LogFormat != "" {
		cfg.Format = s.LogFormat
	}
	cfg.Development = s.Development
	return cfg
}

// ParseMode parses an octal permission string such as "0755" or "755".
func ParseMode(s string) (os.FileMode, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0o")
	if s == "" {
		return 0, fmt.Errorf("empty mode")
	}

	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	if mode > 0o777 {
		return 0, fmt.Errorf("mode %o has bits outside 0777", mode)
	}

	return os.FileMode(mode), nil
}
