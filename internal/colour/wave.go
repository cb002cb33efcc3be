package colour

// KeyMode selects which hue-key set a wave iterates over.
type KeyMode int

const (
	// Core12 uses the twelve core hues and names verbatim.
	Core12 KeyMode = iota
	// Expanded36 uses the 36-point refinement of the core hue wheel.
	Expanded36
)

// WaveProfile describes one of the four fixed banding profiles used to
// generate successive families of palette entries. Crest is the number of
// lightness/saturation bands per hue; LevelNames supplies the name prefix
// for each band and always has exactly Crest elements.
type WaveProfile struct {
	Crest      int
	Keys       KeyMode
	LevelNames []string
}

// waveCount is fixed by design, as is the twelve-hue core wheel the
// profiles expand.
const waveCount = 4

// ProfileFor returns the banding profile for a wave number in 1..4. Waves
// outside that range panic: the wave loop is fixed at compile time, so an
// out-of-range wave is a programming error, not an input error.
func ProfileFor(wave int) WaveProfile {
	switch wave {
	case 1:
		return WaveProfile{Crest: 5, Keys: Core12, LevelNames: []string{"black ", "lead ", "gray ", "silver ", "white "}}
	case 2:
		return WaveProfile{Crest: 3, Keys: Core12, LevelNames: []string{"drab ", "faded ", "pale "}}
	case 3:
		return WaveProfile{Crest: 3, Keys: Expanded36, LevelNames: []string{"deep ", "true ", "bright "}}
	case 4:
		return WaveProfile{Crest: 1, Keys: Expanded36, LevelNames: []string{"bold "}}
	default:
		panic("colour: wave number out of range")
	}
}

// ExpandHueWheel refines a twelve-point hue wheel into a 36-point wheel.
// For each adjacent pair (hues[i], hues[i+1 mod 12]) it emits three angular
// interpolants at progress 0, 1/3 and 2/3, named "pure {a}", "{b} {a}" and
// "{a} {b}" respectively. Progress 0 reproduces hues[i] exactly, so the
// original wheel is a subset of the refined one.
func ExpandHueWheel(hues []float64, names []string) ([]float64, []string) {
	n := len(hues)
	outHues := make([]float64, 0, 3*n)
	outNames := make([]string, 0, 3*n)

	for i := 0; i < n; i++ {
		a, b := hues[i], hues[(i+1)%n]
		an, bn := names[i], names[(i+1)%n]

		outHues = append(outHues,
			LerpAngle(a, b, 0),
			LerpAngle(a, b, 1.0/3.0),
			LerpAngle(a, b, 2.0/3.0),
		)
		outNames = append(outNames,
			"pure "+an,
			bn+" "+an,
			an+" "+bn,
		)
	}

	return outHues, outNames
}
