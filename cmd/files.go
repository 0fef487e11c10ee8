package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fsutil/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var catCmd = &cobra.Command{
	Use:   "cat <file>...",
	Short: "Print file contents",
	Long: `Print each file decoded with --encoding (utf8, latin1, ascii, base64 or hex).
Binary encodings print one line per file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCat,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var writeCmd = &cobra.Command{
	Use:   "write <file> [content|-]",
	Short: "Write text to a file, replacing its contents",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runWrite,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var cpCmd = &cobra.Command{
	Use:   "cp <src>... <dst>",
	Short: "Copy files",
	Long: `Copy a file to a destination path, or several files into an existing
directory. The source permissions are applied to each copy.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCp,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var joinCmd = &cobra.Command{
	Use:   "join <segment>...",
	Short: "Join and clean path segments",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJoin,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(cpCmd)
	rootCmd.AddCommand(joinCmd)

	catCmd.Flags().String("encoding", "utf8", "Decode contents as utf8, latin1, ascii, base64 or hex")
	writeCmd.Flags().BoolP("parents", "p", false, "Create missing parent directories")
}

func runCat(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	encoding, _ := cmd.Flags().GetString("encoding")

	catCommand := commands.NewCatCommand(app.Files, app.Logger)
	result, err := catCommand.Execute(cmd.Context(), commands.CatRequest{Paths: args, Encoding: encoding})
	if result != nil {
		binary := encoding == "base64" || encoding == "hex"
		for _, content := range result.Contents {
			if binary {
				fmt.Fprintln(cmd.OutOrStdout(), content)
				continue
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
		}
	}
	return reportErrors(cmd, err)
}

func runWrite(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	parents, _ := cmd.Flags().GetBool("parents")

	content, _, err := argOrStdin(cmd, args, 1)
	if err != nil {
		return err
	}

	writeCommand := commands.NewWriteCommand(app.Files, app.Logger)
	return writeCommand.Execute(cmd.Context(), commands.WriteRequest{
		Path:    args[0],
		Content: content,
		Parents: parents,
	})
}

func runCp(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	copyCommand := commands.NewCopyCommand(app.Files, app.FileSystem, app.Logger)
	result, err := copyCommand.Execute(cmd.Context(), commands.CopyRequest{
		Sources:     args[:len(args)-1],
		Destination: args[len(args)-1],
	})
	if result != nil && len(result.Copied) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Copied %d file(s): %s\n", len(result.Copied), strings.Join(result.Copied, ", "))
	}
	return reportErrors(cmd, err)
}

func runJoin(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), commands.NewJoinCommand(app.Files).Execute(args))
	return nil
}
