package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"fsutil/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var readJSONCmd = &cobra.Command{
	Use:   "read-json <file>",
	Short: "Parse a JSON file and print it",
	Args:  cobra.ExactArgs(1),
	RunE:  runReadDocument(commands.FormatJSON),
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var readYAMLCmd = &cobra.Command{
	Use:   "read-yaml <file>",
	Short: "Parse a YAML file and print it",
	Args:  cobra.ExactArgs(1),
	RunE:  runReadDocument(commands.FormatYAML),
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var writeJSONCmd = &cobra.Command{
	Use:   "write-json <file> [document|-]",
	Short: "Validate a document and write it as formatted JSON",
	Long: `Parse the document given as an argument, or read from stdin when it is
omitted or "-", and write it to <file> as JSON using the configured indentation.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWriteDocument(commands.FormatJSON),
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var writeYAMLCmd = &cobra.Command{
	Use:   "write-yaml <file> [document|-]",
	Short: "Validate a document and write it as YAML",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runWriteDocument(commands.FormatYAML),
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	for _, c := range []*cobra.Command{readJSONCmd, readYAMLCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringP("output", "o", outputJSON, "Output format: json, yaml")
	}
	for _, c := range []*cobra.Command{writeJSONCmd, writeYAMLCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringP("input", "i", commands.FormatJSON, "Input document format: json, yaml")
	}
}

func runReadDocument(format string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")

		readCommand := commands.NewReadDocumentCommand(app.Files, app.Logger)
		result, err := readCommand.Execute(cmd.Context(), commands.ReadDocumentRequest{
			Path:   args[0],
			Format: format,
		})
		if err != nil {
			return err
		}

		return writeStructured(cmd.OutOrStdout(), output, result.Value)
	}
}

func runWriteDocument(format string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		input, _ := cmd.Flags().GetString("input")

		document, source, err := argOrStdin(cmd, args, 1)
		if err != nil {
			return err
		}

		writeCommand := commands.NewWriteDocumentCommand(app.Files, app.Logger)
		return writeCommand.Execute(cmd.Context(), commands.WriteDocumentRequest{
			Path:        args[0],
			Document:    document,
			InputFormat: input,
			Source:      source,
			Format:      format,
		})
	}
}

// argOrStdin returns args[i], or stdin when it is absent or "-", along with
// a name for where the data came from.
func argOrStdin(cmd *cobra.Command, args []string, i int) ([]byte, string, error) {
	if len(args) > i && args[i] != "-" {
		return []byte(args[i]), "argument", nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, "stdin", err
	}
	return data, "stdin", nil
}
