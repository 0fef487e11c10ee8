package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fsutil/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List a directory tree recursively",
	Long: `List the entries beneath a directory (default ".") in lexical order.

Filters:
  --filter      basename globs for files, e.g. "*.json" or "!*.tmp"
  --dir-filter  basename globs for directories; rejected directories are not descended into
  --exclude     regular expressions matched against the relative path`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().IntP("depth", "d", -1, "Maximum depth to descend (0 lists direct children, -1 is unlimited)")
	lsCmd.Flags().StringP("type", "t", "files", "Entry types: files, directories, files_directories, all")
	lsCmd.Flags().StringArrayP("filter", "f", nil, "File basename glob (repeatable, prefix with ! to negate)")
	lsCmd.Flags().StringArray("dir-filter", nil, "Directory basename glob (repeatable, prefix with ! to negate)")
	lsCmd.Flags().StringArrayP("exclude", "e", nil, "Regular expression for relative paths to skip (repeatable)")
	lsCmd.Flags().StringP("output", "o", outputText, "Output format: text, json, yaml")
}

func runLs(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	depth, _ := cmd.Flags().GetInt("depth")
	entryType, _ := cmd.Flags().GetString("type")
	fileGlobs, _ := cmd.Flags().GetStringArray("filter")
	dirGlobs, _ := cmd.Flags().GetStringArray("dir-filter")
	exclude, _ := cmd.Flags().GetStringArray("exclude")
	output, _ := cmd.Flags().GetString("output")

	listCommand := commands.NewListCommand(app.Files, app.Logger)
	result, err := listCommand.Execute(cmd.Context(), commands.ListRequest{
		Root:      root,
		Depth:     depth,
		Type:      entryType,
		FileGlobs: fileGlobs,
		DirGlobs:  dirGlobs,
		Exclude:   exclude,
	})
	if err != nil {
		return err
	}

	if output != outputText {
		return writeStructured(cmd.OutOrStdout(), output, result.Entries)
	}

	for _, entry := range result.Entries {
		if entry.IsDir() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s%c\n", entry.Path, os.PathSeparator)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), entry.Path)
	}
	return nil
}
