package colour

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// literalsPerLine is how many packed literals each table row carries.
const literalsPerLine = 8

// HexTokens returns every palette colour as a packed 0xRRGGBBAA literal, in
// palette order. The tokens are plain values; use JoinLiteralBlock to render
// them as a source-code table.
func HexTokens(p Palette) []string {
	tokens := make([]string, len(p))
	for i, e := range p {
		tokens[i] = fmt.Sprintf("0x%08X", e.Colour.PackedRGBA())
	}
	return tokens
}

// LabTokens returns every palette colour as a 0x-prefixed three-byte literal
// in the layout 0xAABBLL: the Lab a and b channels offset to unsigned bytes,
// then the lightness byte. A channel whose byte value falls outside 0..255
// before clamping is a gamut violation; it is reported through the logger
// and clamped, never fatal.
func LabTokens(p Palette, log hclog.Logger) []string {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	tokens := make([]string, len(p))
	for i, e := range p {
		a := labByte(e.Colour.ChannelA())
		b := labByte(e.Colour.ChannelB())
		l := math.Round(e.Colour.LightnessChannel() * 255.0)

		for _, ch := range []struct {
			name  string
			value float64
		}{{"a", a}, {"b", b}, {"lightness", l}} {
			if ch.value < 0 || ch.value > 255 {
				log.Warn("gamut violation: perceptual channel outside byte range",
					"entry", e.Name, "channel", ch.name, "value", ch.value)
			}
		}

		tokens[i] = fmt.Sprintf("0x%02X%02X%02X",
			uint8(clampByte(a)), uint8(clampByte(b)), uint8(clampByte(l)))
	}
	return tokens
}

// NameLines returns one line per palette entry in the form
// "NAME<TAB>0xHEXVALUE<TAB>name": a constant-style uppercase identifier, the
// packed RGBA literal, and the human-readable name.
func NameLines(p Palette) []string {
	lines := make([]string, len(p))
	for i, e := range p {
		constant := strings.ToUpper(strings.ReplaceAll(e.Name, " ", "_"))
		lines[i] = fmt.Sprintf("%s\t0x%08X\t%s", constant, e.Colour.PackedRGBA(), e.Name)
	}
	return lines
}

// JoinLiteralBlock renders literal tokens as a brace-enclosed source table,
// comma-separated, eight literals per line.
func JoinLiteralBlock(tokens []string) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, tok := range tokens {
		if i%literalsPerLine == 0 {
			sb.WriteString("\t")
		}
		sb.WriteString(tok)
		sb.WriteString(",")
		if i%literalsPerLine == literalsPerLine-1 || i == len(tokens)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

// labByte maps a Lab a/b channel (nominally within [-1,1]) onto the
// unsigned byte scale centred at 128.
func labByte(v float64) float64 {
	return math.Round(128 + v*128)
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
