package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecrest/internal/colour"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the closest pair of generated colours",
	Long: `Build the palette and report its closest pair of colours by Euclidean RGB
distance, excluding the transparent sentinel.

The distance is a cheap distinguishability proxy, not a perceptual metric:
channels are compared raw, with no gamma or perceptual weighting. A distance
of zero means two swatches are literally identical, which the generator must
never produce.`,
	RunE: runCheck,
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	builder, err := colour.NewBuilder(colour.DefaultConfig(), logger)
	if err != nil {
		return fmt.Errorf("configuring generator: %w", err)
	}

	palette := builder.Build()
	fmt.Print(worstPairReport(palette))

	a, b, distance := colour.WorstPair(palette)
	if distance <= 0 {
		return fmt.Errorf("palette contains coinciding swatches %q and %q",
			palette[a].Name, palette[b].Name)
	}
	return nil
}

// worstPairReport renders the closest-pair diagnostic as a small table.
func worstPairReport(palette colour.Palette) string {
	a, b, distance := colour.WorstPair(palette)
	if a < 0 {
		return "palette too small for a distance check\n"
	}

	table := NewTable([]string{"Index", "Name", "Hex"})
	table.AddRow([]string{fmt.Sprintf("%d", a), palette[a].Name, palette[a].Colour.HexAlpha()})
	table.AddRow([]string{fmt.Sprintf("%d", b), palette[b].Name, palette[b].Colour.HexAlpha()})

	return fmt.Sprintf("closest pair (distance %.6f):\n%s", distance, table.Render())
}
