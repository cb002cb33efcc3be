// Package colour implements procedural generation of a named, perceptually
// organised colour palette, along with validation and source-table encoding.
package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is an immutable colour value with an alpha channel. The underlying
// colour model is provided by go-colorful; callers construct and inspect
// Colour values only through the accessors below.
type Colour struct {
	rgb   colorful.Color
	alpha float64
}

// Transparent is the fully transparent black colour.
var Transparent = Colour{}

// FromHSL constructs a Colour from HSLuv coordinates. Hue is measured in
// turns [0,1), saturation and lightness in [0,1]. The result is not clamped
// to the sRGB gamut; use ClampedHSL when a displayable colour is required.
func FromHSL(hue, saturation, lightness, alpha float64) Colour {
	return Colour{
		rgb:   colorful.HSLuv(hue*360.0, saturation, lightness),
		alpha: alpha,
	}
}

// ClampedHSL constructs a Colour from HSLuv coordinates and clamps the
// result to the sRGB gamut.
func ClampedHSL(hue, saturation, lightness, alpha float64) Colour {
	c := FromHSL(hue, saturation, lightness, alpha)
	c.rgb = c.rgb.Clamped()
	return c
}

// Hue returns the HSLuv hue of the colour in turns, folded into [0,1).
func (c Colour) Hue() float64 {
	h, _, _ := c.rgb.HSLuv()
	h /= 360.0
	h -= math.Floor(h)
	return h
}

// Red returns the red channel in [0,1] for in-gamut colours.
func (c Colour) Red() float64 { return c.rgb.R }

// Green returns the green channel in [0,1] for in-gamut colours.
func (c Colour) Green() float64 { return c.rgb.G }

// Blue returns the blue channel in [0,1] for in-gamut colours.
func (c Colour) Blue() float64 { return c.rgb.B }

// Alpha returns the alpha channel in [0,1].
func (c Colour) Alpha() float64 { return c.alpha }

// LightnessChannel returns the CIE Lab L component, scaled to [0,1].
func (c Colour) LightnessChannel() float64 {
	l, _, _ := c.rgb.Lab()
	return l
}

// ChannelA returns the CIE Lab a component (green-red axis).
func (c Colour) ChannelA() float64 {
	_, a, _ := c.rgb.Lab()
	return a
}

// ChannelB returns the CIE Lab b component (blue-yellow axis).
func (c Colour) ChannelB() float64 {
	_, _, b := c.rgb.Lab()
	return b
}

// InGamut reports whether every RGB channel lies inside [0,1].
func (c Colour) InGamut() bool {
	return c.rgb.IsValid()
}

// PackedRGBA returns the colour as a packed 0xRRGGBBAA value.
func (c Colour) PackedRGBA() uint32 {
	r, g, b := c.rgb.Clamped().RGB255()
	a := uint8(math.Round(clamp01(c.alpha) * 255.0))
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// RGB255 returns the gamut-clamped colour as 8-bit channels.
func (c Colour) RGB255() (r, g, b uint8) {
	return c.rgb.Clamped().RGB255()
}

// Hex returns the colour as a #rrggbb string, ignoring alpha.
func (c Colour) Hex() string {
	return c.rgb.Clamped().Hex()
}

// HexAlpha returns the colour as a #rrggbbaa string.
func (c Colour) HexAlpha() string {
	r, g, b := c.RGB255()
	a := uint8(math.Round(clamp01(c.alpha) * 255.0))
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
