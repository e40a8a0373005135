package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "korin-inspect",
	Short: "Render korin container values from a memory snapshot",
	Long: `korin-inspect resolves and renders container values captured in a raw
memory snapshot. A YAML layout sidecar describes the record layouts the
snapshot was built against; values are addressed by type name and location.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics")
	rootCmd.AddCommand(renderCmd)
}

// newLogger builds the CLI logger; diagnostics stay quiet unless -v is set.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}
