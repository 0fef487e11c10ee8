// Package cmd holds the fsutil cobra command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fsutil/internal/app"
	"fsutil/internal/config"
	fserrors "fsutil/internal/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile     string
	verbose     bool
	development bool

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "fsutil",
	Short: "Everyday filesystem operations from the command line",
	Long: `fsutil creates, removes, lists, reads, writes and copies files and
directories, with JSON and YAML helpers and recursive listings.`,
	SilenceUsage: true,
}

// Execute runs the root command, cancelling on SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fsutil/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		BoolVar(&development, "dev", false, "Enable development diagnostics (debug logs with source locations)")
}

func initConfig() {
	if err := setupApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
}

// setupApp loads settings and builds the application. Settings precedence:
// FSUTIL_* environment (including a .env file), then the config file, then defaults.
func setupApp() error {
	// A missing .env file is normal.
	_ = godotenv.Load()

	v := viper.New()
	config.SetDefaults(v)
	config.BindEnv(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		v.AddConfigPath(home + "/.config/fsutil")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config must exist; the default location is optional.
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fserrors.NewConfigurationError("config_path", v.ConfigFileUsed(), "failed to read config file", err)
		}
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	opts := []app.Option{
		app.WithSettings(settings),
		app.WithVerbose(verbose),
		app.WithDevelopment(development),
	}
	if cfgFile != "" {
		opts = append(opts, app.WithConfigPath(cfgFile))
	}

	application, err = app.NewApp(context.Background(), opts...)
	return err
}

// requireApp returns the initialized app instance.
func requireApp() (*app.App, error) {
	a := GetApp()
	if a == nil {
		return nil, errors.New("application not initialized")
	}
	return a, nil
}

// reportErrors prints every error aggregated in err to stderr, with a hint
// for common filesystem failures, and returns err.
func reportErrors(cmd *cobra.Command, err error) error {
	var multi *fserrors.MultiError
	if !errors.As(err, &multi) {
		if hint := errorHint(err); hint != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "hint: %s\n", hint)
		}
		return err
	}

	for _, e := range multi.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", e)
		if hint := errorHint(e); hint != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "    hint: %s\n", hint)
		}
	}
	return err
}

func errorHint(err error) string {
	switch {
	case err == nil:
		return ""
	case fserrors.IsNotFound(err):
		return "parent directories are not created implicitly; run mkdir first"
	case fserrors.IsPermission(err):
		return "check the ownership and mode of the path"
	default:
		return ""
	}
}
