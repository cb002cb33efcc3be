package colour

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
)

const (
	// graySteps is the length of the grayscale ramp at the head of the
	// palette, between the transparent sentinel and the first hue wave.
	graySteps = 15

	// saturationFloor keeps even the most muted wave faintly chromatic.
	saturationFloor = 0.0125

	// problemHueLo/Hi bound the hue band (in turns) that the colour model
	// renders over-saturated at mid lightness; saturation inside the band
	// is tapered down so its swatches sit at the same perceived intensity
	// as the rest of the wheel.
	problemHueLo   = 0.08
	problemHueHi   = 0.16
	problemHueDamp = 0.3

	// quartShape/quartTurning shape the per-wave blend between minimum and
	// maximum saturation.
	quartShape   = 0.5
	quartTurning = 0.95

	// lightnessShape is the bias-spline steepness of each hue's lightness
	// progression across its crest levels.
	lightnessShape = 0.75
)

// Builder generates the full named palette from a Config. Generation is
// deterministic: the same Config yields a bit-for-bit identical Palette on
// every run.
type Builder struct {
	cfg Config
	log hclog.Logger
}

// NewBuilder validates the configuration tables and returns a Builder.
// A mismatched table length is an unrecoverable configuration error. The
// logger receives gamut diagnostics during generation; pass nil to discard
// them.
func NewBuilder(cfg Config, log hclog.Logger) (*Builder, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if len(cfg.CoreHues) != 12 {
		return nil, fmt.Errorf("colour: core hue table has %d entries, want 12", len(cfg.CoreHues))
	}
	if len(cfg.CoreNames) != len(cfg.CoreHues) {
		return nil, fmt.Errorf("colour: core name table has %d entries, want %d", len(cfg.CoreNames), len(cfg.CoreHues))
	}
	if len(cfg.GrayNames) != graySteps {
		return nil, fmt.Errorf("colour: grayscale name table has %d entries, want %d", len(cfg.GrayNames), graySteps)
	}
	if cfg.MinLightness >= cfg.MaxLightness {
		return nil, fmt.Errorf("colour: lightness bounds inverted (%v >= %v)", cfg.MinLightness, cfg.MaxLightness)
	}
	return &Builder{cfg: cfg, log: log}, nil
}

// Build assembles the palette in a single pass: the transparent sentinel,
// the grayscale ramp, then the four hue waves. Appended entries are never
// revisited.
func (b *Builder) Build() Palette {
	palette := make(Palette, 0, b.size())

	palette = append(palette, Entry{Colour: Transparent, Name: "transparent"})

	for i := 0; i < graySteps; i++ {
		lightness := float64(i) / float64(graySteps-1)
		palette = append(palette, Entry{
			Colour: b.materialise(0, 0, lightness, b.cfg.GrayNames[i]),
			Name:   b.cfg.GrayNames[i],
		})
	}

	expandedHues, expandedNames := ExpandHueWheel(b.cfg.CoreHues, b.cfg.CoreNames)

	// Each hue key consumes one element of the golden-ratio sequence, so
	// the counter runs across waves rather than restarting per wave.
	key := 0

	for wave := 1; wave <= waveCount; wave++ {
		profile := ProfileFor(wave)

		hueKeys, nameKeys := b.cfg.CoreHues, b.cfg.CoreNames
		if profile.Keys == Expanded36 {
			hueKeys, nameKeys = expandedHues, expandedNames
		}

		quart := BiasSpline(float64(wave)/float64(waveCount), quartShape, quartTurning)

		for i, hue := range hueKeys {
			key++
			turning := turningPoint(key)
			adjust := saturationAdjustment(hue, i)

			for j := 0; j < profile.Crest; j++ {
				name := profile.LevelNames[j] + nameKeys[i]

				var saturation, lightness float64
				if profile.Crest == 1 {
					// Single-band waves sit at the outer edge:
					// full adjusted saturation, mid lightness.
					saturation = adjust
					lightness = (b.cfg.MinLightness + b.cfg.MaxLightness) / 2
				} else {
					cr := float64(2*j + 1)
					saturation = adjust * (saturationFloor + (1-saturationFloor)*quart)
					spread := BiasSpline(cr/float64(2*profile.Crest), lightnessShape, turning)
					lightness = b.cfg.MinLightness + (b.cfg.MaxLightness-b.cfg.MinLightness)*spread
				}

				palette = append(palette, Entry{
					Colour: b.materialise(hue, saturation, lightness, name),
					Name:   name,
				})
			}
		}
	}

	return palette
}

// size is the palette length fixed by construction: the transparent entry,
// the grayscale ramp, and crest x keys summed over the waves.
func (b *Builder) size() int {
	n := 1 + graySteps
	for wave := 1; wave <= waveCount; wave++ {
		profile := ProfileFor(wave)
		keys := len(b.cfg.CoreHues)
		if profile.Keys == Expanded36 {
			keys *= 3
		}
		n += profile.Crest * keys
	}
	return n
}

// materialise asks the colour model for a gamut-clamped colour and reports
// diagnostics: clamping is expected and logged at debug, while a channel
// that is still out of range after clamping is a collaborator invariant
// violation and logged as a warning. Generation continues either way.
func (b *Builder) materialise(hue, saturation, lightness float64, name string) Colour {
	raw := FromHSL(hue, saturation, lightness, 1)
	if raw.InGamut() {
		return raw
	}

	b.log.Debug("clamping out-of-gamut swatch", "name", name,
		"hue", hue, "saturation", saturation, "lightness", lightness)

	clamped := ClampedHSL(hue, saturation, lightness, 1)
	if !clamped.InGamut() {
		b.log.Warn("gamut violation: channel out of range after clamping",
			"name", name, "r", clamped.Red(), "g", clamped.Green(), "b", clamped.Blue())
	}
	return clamped
}

// saturationAdjustment dampens saturation inside the problem hue band with
// a cosine taper that is zero at the band edges, and knocks 10% off every
// odd hue-key index to break up visual repetition along the wheel.
func saturationAdjustment(hue float64, index int) float64 {
	adjust := 1.0
	if hue >= problemHueLo && hue < problemHueHi {
		t := (hue - problemHueLo) / (problemHueHi - problemHueLo)
		adjust *= 1 - problemHueDamp*(0.5-0.5*math.Cos(2*math.Pi*t))
	}
	if index%2 == 1 {
		adjust *= 0.9
	}
	return adjust
}
