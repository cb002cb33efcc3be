// Package cli provides the command-line interface for Huecrest.
package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/huecrest/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "huecrest",
	Short: "A procedural named-colour palette generator",
	Long: `Huecrest synthesises a named, perceptually organised colour palette from
twelve core hues. Each hue is expanded through four banding "waves" of
saturation and lightness crests, producing 256 uniquely named swatches that
can be exported as source-code colour tables.

The generated palette is deterministic: the same tables produce bit-identical
output on every run.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
