package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	previewWidth = 4
)

// SwatchPreview returns an ANSI truecolor block for a colour, width
// characters wide. Uses the background colour with spaces for a solid block.
func SwatchPreview(c Colour, width int) string {
	if width <= 0 {
		width = previewWidth
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("%s%d;%d;%d%s%s%s",
		ansiBgPrefix, r, g, b, ansiSuffix, strings.Repeat(" ", width), ansiReset)
}

// PreviewString renders the palette as one line per entry: an optional ANSI
// swatch, the hex value, and the entry name. Pass colourise false when the
// output is not a terminal.
func (p Palette) PreviewString(colourise bool) string {
	var sb strings.Builder
	for i, e := range p {
		if colourise {
			sb.WriteString(SwatchPreview(e.Colour, previewWidth))
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%3d  %s  %s\n", i, e.Colour.HexAlpha(), e.Name)
	}
	return sb.String()
}
