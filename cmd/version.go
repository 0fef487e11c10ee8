package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"fsutil/internal/config"
)

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var versionOutput string

type buildReport struct {
	Version  string `json:"version" yaml:"version"`
	Commit   string `json:"commit" yaml:"commit"`
	Date     string `json:"date" yaml:"date"`
	BuiltBy  string `json:"built_by" yaml:"built_by"`
	Go       string `json:"go" yaml:"go"`
	Platform string `json:"platform" yaml:"platform"`
	Config   string `json:"config_schema" yaml:"config_schema"`
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Print the fsutil release, the commit and toolchain it was built from, the
platform it runs on, and the config file schema version it writes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := GetVersionInfo()
		report := buildReport{
			Version:  info.Version,
			Commit:   info.Commit,
			Date:     info.Date,
			BuiltBy:  info.BuiltBy,
			Go:       runtime.Version(),
			Platform: runtime.GOOS + "/" + runtime.GOARCH,
			Config:   config.Version,
		}

		if versionOutput != outputText {
			return writeStructured(cmd.OutOrStdout(), versionOutput, report)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fsutil version %s\n", report.Version)
		fmt.Fprintf(out, "  commit: %s\n", report.Commit)
		fmt.Fprintf(out, "  built: %s by %s with %s\n", report.Date, report.BuiltBy, report.Go)
		fmt.Fprintf(out, "  platform: %s\n", report.Platform)
		fmt.Fprintf(out, "  config schema: %s\n", report.Config)
		return nil
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", outputText, "output format: text, json or yaml")
	rootCmd.AddCommand(versionCmd)
}
