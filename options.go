package wordcloud

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Options configures how words are sized, rotated, colored, packed and
// animated. Start from DefaultOptions and override fields.
type Options struct {
	Colors              []string
	EnableRandomization bool
	FontFamily          string
	FontSizeRange       Range
	FontStyle           FontStyle
	FontWeight          FontWeight
	Padding             float64
	RotationDivision    int
	RotationAngleRange  Range
	Spiral              Spiral
	TransitionDuration  time.Duration
}

// DefaultOptions returns the options used when the caller overrides nothing.
func DefaultOptions() Options {
	return Options{
		Colors:              slices.Clone(DefaultColors),
		EnableRandomization: true,
		FontFamily:          "Impact",
		FontSizeRange:       Range{Min: 16, Max: 100},
		FontStyle:           FontStyleNormal,
		FontWeight:          FontWeightNormal,
		Padding:             4,
		RotationDivision:    3,
		RotationAngleRange:  Range{Min: -90, Max: 90},
		Spiral:              SpiralRectangular,
		TransitionDuration:  time.Second,
	}
}

// normalized repairs out-of-range values instead of rejecting them: reversed
// ranges are swapped, a rotation division below one becomes one, and empty
// or unknown enum values fall back to their defaults.
func (o Options) normalized() Options {
	o.FontSizeRange = o.FontSizeRange.ordered()
	o.RotationAngleRange = o.RotationAngleRange.ordered()
	if o.RotationDivision < 1 {
		o.RotationDivision = 1
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.TransitionDuration < 0 {
		o.TransitionDuration = 0
	}
	if o.FontFamily == "" {
		o.FontFamily = "Impact"
	}
	if o.FontStyle == "" {
		o.FontStyle = FontStyleNormal
	}
	if o.FontWeight == "" {
		o.FontWeight = FontWeightNormal
	}
	if o.Spiral != SpiralArchimedean {
		o.Spiral = SpiralRectangular
	}
	return o
}

// OptionsPatch is a partial override of Options as read from a config file
// or request body. Nil fields leave the base value untouched.
// TransitionDuration is in milliseconds.
type OptionsPatch struct {
	Colors              *[]string   `json:"colors" toml:"colors"`
	EnableRandomization *bool       `json:"enableRandomization" toml:"enable_randomization"`
	FontFamily          *string     `json:"fontFamily" toml:"font_family"`
	FontSizeRange       *Range      `json:"fontSizeRange" toml:"font_size_range"`
	FontStyle           *FontStyle  `json:"fontStyle" toml:"font_style"`
	FontWeight          *FontWeight `json:"fontWeight" toml:"font_weight"`
	Padding             *float64    `json:"padding" toml:"padding"`
	RotationDivision    *int        `json:"rotationDivision" toml:"rotation_division"`
	RotationAngleRange  *Range      `json:"rotationAngleRange" toml:"rotation_angle_range"`
	Spiral              *Spiral     `json:"spiral" toml:"spiral"`
	TransitionDuration  *int64      `json:"transitionDuration" toml:"transition_duration"`
}

// Apply returns base with every non-nil field of p applied.
func (p OptionsPatch) Apply(base Options) Options {
	if p.Colors != nil {
		base.Colors = slices.Clone(*p.Colors)
	}
	if p.EnableRandomization != nil {
		base.EnableRandomization = *p.EnableRandomization
	}
	if p.FontFamily != nil {
		base.FontFamily = *p.FontFamily
	}
	if p.FontSizeRange != nil {
		base.FontSizeRange = *p.FontSizeRange
	}
	if p.FontStyle != nil {
		base.FontStyle = *p.FontStyle
	}
	if p.FontWeight != nil {
		base.FontWeight = *p.FontWeight
	}
	if p.Padding != nil {
		base.Padding = *p.Padding
	}
	if p.RotationDivision != nil {
		base.RotationDivision = *p.RotationDivision
	}
	if p.RotationAngleRange != nil {
		base.RotationAngleRange = *p.RotationAngleRange
	}
	if p.Spiral != nil {
		base.Spiral = *p.Spiral
	}
	if p.TransitionDuration != nil {
		base.TransitionDuration = time.Duration(*p.TransitionDuration) * time.Millisecond
	}
	return base
}

// UnmarshalJSON accepts {"min": a, "max": b} or [a, b].
func (r *Range) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		return r.setPair(pair)
	}
	var obj struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("range must be [min, max] or {min, max}: %w", err)
	}
	*r = Range{Min: obj.Min, Max: obj.Max}
	return nil
}

// UnmarshalTOML accepts { min = a, max = b } or [a, b].
func (r *Range) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case []any:
		pair := make([]float64, len(v))
		for i, x := range v {
			f, ok := tomlNumber(x)
			if !ok {
				return fmt.Errorf("range element %d is %T, want a number", i, x)
			}
			pair[i] = f
		}
		return r.setPair(pair)
	case map[string]any:
		var out Range
		for k, x := range v {
			f, ok := tomlNumber(x)
			if !ok {
				return fmt.Errorf("range %s is %T, want a number", k, x)
			}
			switch k {
			case "min":
				out.Min = f
			case "max":
				out.Max = f
			default:
				return fmt.Errorf("unknown range key %q", k)
			}
		}
		*r = out
		return nil
	default:
		return fmt.Errorf("range must be [min, max] or { min, max }, got %T", v)
	}
}

func (r *Range) setPair(pair []float64) error {
	if len(pair) != 2 {
		return fmt.Errorf("range needs 2 values, got %d", len(pair))
	}
	*r = Range{Min: pair[0], Max: pair[1]}
	return nil
}

func tomlNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// rangeKeys are decoded by Range.UnmarshalTOML, which validates their
// contents itself.
var rangeKeys = map[string]bool{"font_size_range": true, "rotation_angle_range": true}

// ParseOptionsTOML decodes a TOML options document over DefaultOptions.
// Unknown keys are an error so typos do not silently fall back to defaults.
func ParseOptionsTOML(data []byte) (Options, error) {
	var p OptionsPatch
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return Options{}, fmt.Errorf("wordcloud: parse options: %w", err)
	}
	var keys []string
	for _, k := range md.Undecoded() {
		if len(k) > 1 && rangeKeys[k[0]] {
			continue
		}
		keys = append(keys, k.String())
	}
	if len(keys) > 0 {
		return Options{}, fmt.Errorf("wordcloud: parse options: unknown keys %s", strings.Join(keys, ", "))
	}
	return p.Apply(DefaultOptions()), nil
}

// ParseOptionsJSON decodes a JSON options object over DefaultOptions. Keys
// use the camelCase names (fontSizeRange, rotationDivision, ...).
func ParseOptionsJSON(data []byte) (Options, error) {
	var p OptionsPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return Options{}, fmt.Errorf("wordcloud: parse options: %w", err)
	}
	return p.Apply(DefaultOptions()), nil
}

// LoadOptions reads an options file. Files ending in .json are decoded as
// JSON, everything else as TOML.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("wordcloud: load options: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseOptionsJSON(data)
	}
	return ParseOptionsTOML(data)
}
