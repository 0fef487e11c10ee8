package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsutil/internal/errors"
	"fsutil/internal/logging"
)

func newViper(t *testing.T, yamlConfig string) *viper.Viper {
	t.Helper()

	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	if yamlConfig != "" {
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(bytes.NewBufferString(yamlConfig)))
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, Defaults(), settings)
}

func TestLoad_FromFile(t *testing.T) {
	settings, err := Load(newViper(t, `
log_level: debug
log_format: json
development: true
dir_mode: "0700"
file_mode: "0600"
json_indent: "    "
atomic_writes: true
copy_rate_limit: 1048576
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
	assert.True(t, settings.Development)
	assert.Equal(t, "0700", settings.DirMode)
	assert.Equal(t, "0600", settings.FileMode)
	assert.Equal(t, "    ", settings.JSONIndent)
	assert.True(t, settings.AtomicWrites)
	assert.Equal(t, 1048576, settings.CopyRateLimit)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("FSUTIL_LOG_LEVEL", "warn")
	t.Setenv("FSUTIL_ATOMIC_WRITES", "true")

	settings, err := Load(newViper(t, "log_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", settings.LogLevel)
	assert.True(t, settings.AtomicWrites)
}

func TestLoad_InvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		config string
		field  string
	}{
		{name: "unknown log level", config: "log_level: loud\n", field: KeyLogLevel},
		{name: "unknown log format", config: "log_format: xml\n", field: KeyLogFormat},
		{name: "non-octal dir mode", config: "dir_mode: \"0789\"\n", field: KeyDirMode},
		{name: "file mode too wide", config: "file_mode: \"17777\"\n", field: KeyFileMode},
		{name: "indent with letters", config: "json_indent: \"ab\"\n", field: KeyJSONIndent},
		{name: "negative rate", config: "copy_rate_limit: -1\n", field: KeyCopyRateLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.config))
			require.Error(t, err)
			assert.True(t, errors.IsConfiguration(err))

			var cfgErr *errors.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    os.FileMode
		wantErr bool
	}{
		{in: "0755", want: 0o755},
		{in: "644", want: 0o644},
		{in: "0o700", want: 0o700},
		{in: " 0600 ", want: 0o600},
		{in: "", wantErr: true},
		{in: "rwx", wantErr: true},
		{in: "1777", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettings_Options(t *testing.T) {
	s := Defaults()
	s.DirMode = "0700"
	s.FileMode = "0600"
	s.JSONIndent = ""
	s.AtomicWrites = true
	s.CopyRateLimit = 4096

	opts := s.Options()

	assert.Equal(t, os.FileMode(0o700), opts.DirMode)
	assert.Equal(t, os.FileMode(0o600), opts.FileMode)
	assert.Empty(t, opts.JSONIndent)
	assert.True(t, opts.AtomicWrites)
	assert.Equal(t, 4096, opts.CopyRateLimit)
}

func TestSettings_LoggingConfig(t *testing.T) {
	s := Defaults()
	s.LogLevel = "error"
	s.LogFormat = "json"
	s.Development = true

	cfg := s.LoggingConfig()

	assert.Equal(t, logging.LevelError, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Development)
	assert.NotNil(t, cfg.Output)
}
