package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fsutil/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the fsutil configuration file",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective settings to the configuration file",
	Long: `Write the settings currently in effect (defaults, overridden by FSUTIL_*
environment variables) to the configuration file. An existing file is only
replaced with --force.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade a configuration file written by fsutil 1.x",
	Args:  cobra.NoArgs,
	RunE:  runConfigMigrate,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configMigrateCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
	configShowCmd.Flags().StringP("output", "o", outputYAML, "Output format: json, yaml")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")

	initCommand := commands.NewConfigInitCommand(app.ConfigRepo, app.Logger)
	path, err := initCommand.Execute(cmd.Context(), commands.ConfigInitRequest{
		Settings: app.Config.Settings,
		Force:    force,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")

	fmt.Fprintf(cmd.ErrOrStderr(), "# %s\n", app.ConfigRepo.Path())
	return writeStructured(cmd.OutOrStdout(), output, app.Config.Settings)
}

func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	migrateCommand := commands.NewConfigMigrateCommand(app.ConfigRepo, app.Logger)
	result, err := migrateCommand.Execute(cmd.Context())
	if err != nil {
		return err
	}

	if !result.Migrated {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration %s is already current\n", result.Path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration %s migrated to version %s\n", result.Path, result.Settings.Version)
	return nil
}
