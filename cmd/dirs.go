package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fsutil/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var mkdirCmd = &cobra.Command{
	Use:   "mkdir <dir>...",
	Short: "Create directories and any missing parents",
	Long:  `Create each directory along with any missing parents. Existing directories are left alone.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMkdir,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var rmdirCmd = &cobra.Command{
	Use:   "rmdir <path>...",
	Short: "Remove directories and everything beneath them",
	Long: `Remove each path recursively. Paths that do not exist are not an error.
Asks for confirmation unless --yes is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRmdir,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var recreateCmd = &cobra.Command{
	Use:   "recreate <dir>...",
	Short: "Empty directories by deleting and recreating them",
	Long: `Delete each directory with all of its contents and create it again, empty.
If creation fails after the deletion succeeded, the directory stays absent.
Asks for confirmation unless --yes is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecreate,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(rmdirCmd)
	rootCmd.AddCommand(recreateCmd)

	rmdirCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	recreateCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

func runMkdir(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	mkdirCommand := commands.NewMkdirCommand(app.Files, app.Logger)
	result, err := mkdirCommand.Execute(cmd.Context(), commands.MkdirRequest{Paths: args})
	if result != nil {
		for _, dir := range result.Created {
			fmt.Fprintln(cmd.OutOrStdout(), dir)
		}
	}
	return reportErrors(cmd, err)
}

func runRmdir(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")

	rmdirCommand := commands.NewRemoveDirCommand(app.Files, app.Confirmer, app.Logger)
	result, err := rmdirCommand.Execute(cmd.Context(), commands.RemoveDirRequest{Paths: args, Yes: yes})
	if result != nil {
		for _, path := range result.Removed {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", path)
		}
	}
	return reportErrors(cmd, err)
}

func runRecreate(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")

	recreateCommand := commands.NewRecreateCommand(app.Files, app.Confirmer, app.Logger)
	result, err := recreateCommand.Execute(cmd.Context(), commands.RecreateRequest{Paths: args, Yes: yes})
	if result != nil {
		for _, dir := range result.Recreated {
			fmt.Fprintf(cmd.OutOrStdout(), "Recreated %s\n", dir)
		}
	}
	return reportErrors(cmd, err)
}
