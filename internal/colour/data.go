package colour

// Config carries the immutable lookup tables and bounds that drive palette
// generation. The tables are passed explicitly rather than read from package
// state so alternative wheels can be generated and tested without touching
// the algorithm.
type Config struct {
	// CoreHues are the twelve base hues in turns, ordered around the wheel.
	CoreHues []float64
	// CoreNames are the human-readable names matching CoreHues by index.
	CoreNames []string
	// GrayNames are the fifteen names of the grayscale ramp, darkest first.
	GrayNames []string
	// MinLightness and MaxLightness bound the lightness band the hue waves
	// occupy, keeping swatches clear of pure black and pure white.
	MinLightness float64
	MaxLightness float64
}

// DefaultConfig returns the standard twelve-hue wheel. The hue values are
// HSLuv hue angles (in turns) chosen so each name lands on its conventional
// colour; they are ordered strictly around the wheel so adjacent-pair
// expansion stays local.
func DefaultConfig() Config {
	return Config{
		CoreHues: []float64{
			0.034, // red
			0.072, // brown
			0.092, // orange
			0.124, // saffron
			0.239, // yellow
			0.306, // lime
			0.355, // green
			0.534, // cyan
			0.739, // blue
			0.778, // violet
			0.819, // purple
			0.869, // magenta
		},
		CoreNames: []string{
			"red", "brown", "orange", "saffron", "yellow", "lime",
			"green", "cyan", "blue", "violet", "purple", "magenta",
		},
		GrayNames: []string{
			"pure black", "almost black", "lead black", "black lead",
			"pure lead", "gray lead", "lead gray", "pure gray",
			"silver gray", "gray silver", "pure silver", "white silver",
			"silver white", "almost white", "pure white",
		},
		MinLightness: 48.0 / 255.0,
		MaxLightness: 207.0 / 255.0,
	}
}
