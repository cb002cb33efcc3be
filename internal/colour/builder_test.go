package colour

import (
	"math"
	"reflect"
	"testing"
)

func mustBuild(t *testing.T) Palette {
	t.Helper()
	builder, err := NewBuilder(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return builder.Build()
}

func TestNewBuilderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"short hue table", func(c *Config) { c.CoreHues = c.CoreHues[:11] }},
		{"name/hue mismatch", func(c *Config) { c.CoreNames = c.CoreNames[:11] }},
		{"short grayscale table", func(c *Config) { c.GrayNames = c.GrayNames[:14] }},
		{"inverted lightness bounds", func(c *Config) { c.MinLightness, c.MaxLightness = c.MaxLightness, c.MinLightness }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := NewBuilder(cfg, nil); err == nil {
				t.Error("NewBuilder accepted a malformed config")
			}
		})
	}
}

func TestBuildSize(t *testing.T) {
	palette := mustBuild(t)

	// 1 transparent + 15 grays + 5*12 + 3*12 + 3*36 + 1*36 hue swatches.
	if palette.Len() != 256 {
		t.Fatalf("palette has %d entries, want 256", palette.Len())
	}
}

func TestBuildTransparentHead(t *testing.T) {
	palette := mustBuild(t)

	if palette[0].Name != "transparent" {
		t.Errorf("entry 0 named %q, want \"transparent\"", palette[0].Name)
	}
	if palette[0].Colour != Transparent {
		t.Error("entry 0 is not the transparent sentinel")
	}
	if palette[0].Colour.PackedRGBA() != 0 {
		t.Errorf("transparent packs to 0x%08X, want 0x00000000", palette[0].Colour.PackedRGBA())
	}
}

func TestBuildGrayscaleRamp(t *testing.T) {
	palette := mustBuild(t)

	prev := -1.0
	for i := 1; i <= 15; i++ {
		e := palette[i]

		l := e.Colour.LightnessChannel()
		if l <= prev {
			t.Errorf("grayscale entry %d (%q): lightness %v not strictly above %v", i, e.Name, l, prev)
		}
		prev = l

		// Zero saturation: the channels agree to numerical precision.
		r, g, b := e.Colour.Red(), e.Colour.Green(), e.Colour.Blue()
		if math.Abs(r-g) > 1e-6 || math.Abs(g-b) > 1e-6 {
			t.Errorf("grayscale entry %d (%q) is not neutral: r=%v g=%v b=%v", i, e.Name, r, g, b)
		}

		if e.Colour.Alpha() != 1 {
			t.Errorf("grayscale entry %d (%q) has alpha %v, want 1", i, e.Name, e.Colour.Alpha())
		}
	}

	if palette[1].Name != "pure black" || palette[15].Name != "pure white" {
		t.Errorf("ramp runs %q..%q, want \"pure black\"..\"pure white\"", palette[1].Name, palette[15].Name)
	}
}

func TestBuildUniqueNames(t *testing.T) {
	palette := mustBuild(t)

	seen := make(map[string]int, palette.Len())
	for i, e := range palette {
		if first, dup := seen[e.Name]; dup {
			t.Errorf("entries %d and %d share the name %q", first, i, e.Name)
		}
		seen[e.Name] = i
	}
}

func TestBuildWaveGrouping(t *testing.T) {
	palette := mustBuild(t)

	// Wave 1 starts right after the grayscale ramp with the darkest band of
	// the first core hue, and wave 4 fills the final 36 slots.
	if palette[16].Name != "black red" {
		t.Errorf("first wave entry named %q, want \"black red\"", palette[16].Name)
	}
	if palette[220].Name != "bold pure red" {
		t.Errorf("first bold entry named %q, want \"bold pure red\"", palette[220].Name)
	}
	if palette[255].Name != "bold magenta red" {
		t.Errorf("last entry named %q, want \"bold magenta red\"", palette[255].Name)
	}
}

func TestPaletteLookup(t *testing.T) {
	palette := mustBuild(t)

	e, ok := palette.Lookup("bright cyan blue")
	if !ok {
		t.Fatal("Lookup missed a generated name")
	}
	if e.Name != "bright cyan blue" {
		t.Errorf("Lookup returned %q", e.Name)
	}

	if _, ok := palette.Lookup("no such colour"); ok {
		t.Error("Lookup matched an absent name")
	}
}

func TestBuildDeterminism(t *testing.T) {
	a := mustBuild(t)
	b := mustBuild(t)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("two builds from the same config differ")
	}
}

func TestBuildAllOpaquePastTransparent(t *testing.T) {
	palette := mustBuild(t)

	for i := 1; i < palette.Len(); i++ {
		if palette[i].Colour.Alpha() != 1 {
			t.Errorf("entry %d (%q) has alpha %v, want 1", i, palette[i].Name, palette[i].Colour.Alpha())
		}
	}
}

func TestSaturationAdjustment(t *testing.T) {
	tests := []struct {
		name  string
		hue   float64
		index int
		want  float64
	}{
		{"outside band, even index", 0.5, 0, 1.0},
		{"outside band, odd index", 0.5, 1, 0.9},
		{"band edge is undamped", 0.08, 0, 1.0},
		{"band centre fully damped", 0.12, 0, 1.0 - problemHueDamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := saturationAdjustment(tt.hue, tt.index)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("saturationAdjustment(%v, %d) = %v, want %v", tt.hue, tt.index, got, tt.want)
			}
		})
	}
}
