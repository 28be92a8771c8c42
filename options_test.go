package wordcloud

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if !slices.Equal(o.Colors, DefaultColors) {
		t.Errorf("Colors = %v", o.Colors)
	}
	if !o.EnableRandomization {
		t.Error("EnableRandomization should default to true")
	}
	if o.FontFamily != "Impact" || o.FontStyle != FontStyleNormal || o.FontWeight != FontWeightNormal {
		t.Errorf("font = %q/%q/%q", o.FontFamily, o.FontStyle, o.FontWeight)
	}
	if o.FontSizeRange != (Range{16, 100}) || o.RotationAngleRange != (Range{-90, 90}) {
		t.Errorf("ranges = %v, %v", o.FontSizeRange, o.RotationAngleRange)
	}
	if o.Padding != 4 || o.RotationDivision != 3 || o.Spiral != SpiralRectangular {
		t.Errorf("padding/division/spiral = %v/%v/%v", o.Padding, o.RotationDivision, o.Spiral)
	}
	if o.TransitionDuration != time.Second {
		t.Errorf("TransitionDuration = %v", o.TransitionDuration)
	}
}

func TestDefaultOptionsDoesNotShareColors(t *testing.T) {
	o := DefaultOptions()
	o.Colors[0] = "#000000"
	if DefaultColors[0] == "#000000" {
		t.Fatal("DefaultOptions must copy the palette")
	}
}

func TestOptionsNormalized(t *testing.T) {
	o := DefaultOptions()
	o.FontSizeRange = Range{Min: 50, Max: 10}
	o.RotationDivision = 0
	o.Spiral = "zigzag"
	o.Padding = -2
	o.TransitionDuration = -time.Second
	o.FontFamily = ""

	n := o.normalized()
	if n.FontSizeRange != (Range{10, 50}) {
		t.Errorf("FontSizeRange = %v, want swapped", n.FontSizeRange)
	}
	if n.RotationDivision != 1 {
		t.Errorf("RotationDivision = %d, want 1", n.RotationDivision)
	}
	if n.Spiral != SpiralRectangular {
		t.Errorf("Spiral = %q", n.Spiral)
	}
	if n.Padding != 0 || n.TransitionDuration != 0 || n.FontFamily != "Impact" {
		t.Errorf("padding/duration/family = %v/%v/%q", n.Padding, n.TransitionDuration, n.FontFamily)
	}
}

func TestParseOptionsTOMLPartial(t *testing.T) {
	doc := `
colors = ["#111111", "#222222"]
enable_randomization = false
font_size_range = { min = 10, max = 30 }
spiral = "archimedean"
transition_duration = 250
`
	o, err := ParseOptionsTOML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseOptionsTOML: %v", err)
	}
	if !slices.Equal(o.Colors, []string{"#111111", "#222222"}) {
		t.Errorf("Colors = %v", o.Colors)
	}
	if o.EnableRandomization {
		t.Error("EnableRandomization should be false")
	}
	if o.FontSizeRange != (Range{10, 30}) {
		t.Errorf("FontSizeRange = %v", o.FontSizeRange)
	}
	if o.Spiral != SpiralArchimedean {
		t.Errorf("Spiral = %q", o.Spiral)
	}
	if o.TransitionDuration != 250*time.Millisecond {
		t.Errorf("TransitionDuration = %v", o.TransitionDuration)
	}
	// Untouched keys keep defaults.
	if o.FontFamily != "Impact" || o.RotationDivision != 3 || o.Padding != 4 {
		t.Errorf("defaults lost: %+v", o)
	}
}

func TestParseOptionsTOMLUnknownKey(t *testing.T) {
	_, err := ParseOptionsTOML([]byte(`rotation_divison = 4`))
	if err == nil || !strings.Contains(err.Error(), "rotation_divison") {
		t.Fatalf("err = %v, want unknown key error", err)
	}
}

func TestParseOptionsJSON(t *testing.T) {
	o, err := ParseOptionsJSON([]byte(`{"rotationDivision": 5, "rotationAngleRange": {"min": -45, "max": 45}, "fontWeight": "bold"}`))
	if err != nil {
		t.Fatalf("ParseOptionsJSON: %v", err)
	}
	if o.RotationDivision != 5 || o.RotationAngleRange != (Range{-45, 45}) || o.FontWeight != FontWeightBold {
		t.Errorf("got %+v", o)
	}
	if !o.EnableRandomization {
		t.Error("absent key should keep default")
	}
}

func TestRangeAsPair(t *testing.T) {
	tests := []struct {
		name  string
		parse func([]byte) (Options, error)
		doc   string
		size  Range
		angle Range
	}{
		{"json pair", ParseOptionsJSON, `{"fontSizeRange": [10, 30], "rotationAngleRange": [-45, 45]}`, Range{10, 30}, Range{-45, 45}},
		{"json mixed", ParseOptionsJSON, `{"fontSizeRange": [12.5, 40], "rotationAngleRange": {"min": 0, "max": 90}}`, Range{12.5, 40}, Range{0, 90}},
		{"toml pair", ParseOptionsTOML, "font_size_range = [10, 30]\nrotation_angle_range = [-45.5, 45]", Range{10, 30}, Range{-45.5, 45}},
		{"toml table", ParseOptionsTOML, "[font_size_range]\nmin = 8\nmax = 24", Range{8, 24}, Range{-90, 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := tt.parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if o.FontSizeRange != tt.size || o.RotationAngleRange != tt.angle {
				t.Errorf("ranges = %v, %v, want %v, %v", o.FontSizeRange, o.RotationAngleRange, tt.size, tt.angle)
			}
		})
	}
}

func TestRangeErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func([]byte) (Options, error)
		doc   string
	}{
		{"json short pair", ParseOptionsJSON, `{"fontSizeRange": [10]}`},
		{"json long pair", ParseOptionsJSON, `{"fontSizeRange": [10, 20, 30]}`},
		{"json string", ParseOptionsJSON, `{"fontSizeRange": "10-30"}`},
		{"toml short pair", ParseOptionsTOML, `font_size_range = [10]`},
		{"toml string element", ParseOptionsTOML, `font_size_range = ["a", "b"]`},
		{"toml unknown key", ParseOptionsTOML, `font_size_range = { min = 1, mx = 2 }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.parse([]byte(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadOptionsByExtension(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "cloud.toml")
	jsonPath := filepath.Join(dir, "cloud.json")
	if err := os.WriteFile(tomlPath, []byte(`padding = 9`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsonPath, []byte(`{"padding": 7}`), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := LoadOptions(tomlPath)
	if err != nil || o.Padding != 9 {
		t.Errorf("toml: padding = %v, err = %v", o.Padding, err)
	}
	o, err = LoadOptions(jsonPath)
	if err != nil || o.Padding != 7 {
		t.Errorf("json: padding = %v, err = %v", o.Padding, err)
	}
	if _, err := LoadOptions(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
