// Package cli provides the command-line interface for Huecrest.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huecrest/internal/colour"
	"github.com/jmylchreest/huecrest/internal/swatch"
)

var (
	// Generate command flags
	generateFormat  string
	generateOutput  string
	generatePNG     string
	generatePreview bool
	generateCheck   bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full named colour palette",
	Long: `Generate the 256-entry named colour palette and emit it as source-code
colour tables.

Three table formats are available:
  hex   - packed 0xRRGGBBAA literals, eight per line, brace-enclosed
  lab   - three-byte perceptual literals (Lab a/b channels plus lightness)
  list  - NAME <tab> 0xHEXVALUE <tab> human-readable name, one per line

Examples:
  # Print the hex table
  huecrest generate

  # Print every table
  huecrest generate --format all

  # Write the name list to a file
  huecrest generate --format list --output palette.txt

  # Preview the swatches in a truecolor terminal
  huecrest generate --preview

  # Render the palette as a PNG swatch sheet
  huecrest generate --png palette.png

  # Append the closest-pair quality report
  huecrest generate --check`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "hex", "table format (hex, lab, list, all)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the name list to a file instead of stdout")
	generateCmd.Flags().StringVar(&generatePNG, "png", "", "write a PNG swatch sheet to the given path")
	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "show colour swatch previews")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "append the closest-pair quality report")
}

// newLogger builds the hclog logger the generation pipeline reports through.
// Diagnostics go to stderr so the generated tables on stdout stay clean.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huecrest",
		Level:  level,
		Output: os.Stderr,
	})
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	builder, err := colour.NewBuilder(colour.DefaultConfig(), logger)
	if err != nil {
		return fmt.Errorf("configuring generator: %w", err)
	}

	palette := builder.Build()
	logger.Debug("palette generated", "entries", palette.Len())

	if generatePreview {
		fmt.Print(palette.PreviewString(stdoutIsTerminal()))
	}

	if err := writeTables(palette, logger); err != nil {
		return err
	}

	if generatePNG != "" {
		if err := swatch.WriteFile(generatePNG, palette, 0); err != nil {
			return fmt.Errorf("writing swatch sheet: %w", err)
		}
		logger.Debug("swatch sheet written", "path", generatePNG)
	}

	if generateCheck {
		fmt.Print(worstPairReport(palette))
	}

	return nil
}

// writeTables emits the selected table formats: hex and lab blocks always go
// to stdout, while the name list honours --output.
func writeTables(palette colour.Palette, logger hclog.Logger) error {
	format := strings.ToLower(generateFormat)
	switch format {
	case "hex", "lab", "list", "all":
	default:
		return fmt.Errorf("unknown format %q (want hex, lab, list or all)", generateFormat)
	}

	if format == "hex" || format == "all" {
		fmt.Print(colour.JoinLiteralBlock(colour.HexTokens(palette)))
	}
	if format == "lab" || format == "all" {
		fmt.Print(colour.JoinLiteralBlock(colour.LabTokens(palette, logger)))
	}
	if format == "list" || format == "all" {
		list := strings.Join(colour.NameLines(palette), "\n") + "\n"
		if generateOutput != "" {
			if err := os.WriteFile(generateOutput, []byte(list), 0o644); err != nil {
				return fmt.Errorf("writing name list: %w", err)
			}
		} else {
			fmt.Print(list)
		}
	}

	return nil
}

// stdoutIsTerminal reports whether stdout is attached to a terminal, gating
// ANSI colour output.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
