package wordcloud

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColors is the palette used when Options are left at their defaults.
var DefaultColors = []string{"#B0E650", "#ff7f0e", "#4DD5CB", "#568CEC", "#CE7DFF", "#4FD87D"}

// Category10 is the categorical fallback used when the palette is empty.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ParseColor parses a CSS hex color ("#rgb" or "#rrggbb").
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b := c.Clamped().RGB255()
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}, nil
}

var category10 = mustParsePalette(Category10)

func mustParsePalette(hex []string) []Color {
	out := make([]Color, len(hex))
	for i, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			panic("wordcloud: bad built-in color " + h)
		}
		out[i] = c
	}
	return out
}

// parsePalette parses every entry; an entry that is not a valid hex color is
// replaced by the categorical color for the same slot.
func parsePalette(hex []string) []Color {
	out := make([]Color, len(hex))
	for i, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			c = category10[i%len(category10)]
		}
		out[i] = c
	}
	return out
}

// ColorAssigner maps the rank of a word (its index in the ascending-by-size
// sequence) to a fill. Ranks are split into contiguous bands of
// ceil(n / len(palette)) words; every word in a band shares one palette slot.
type ColorAssigner struct {
	palette   []Color
	groupSize int
	fallback  bool
}

// NewColorAssigner returns an assigner for n ranked words. An empty palette
// selects the categorical fallback, indexed by rank modulo 10.
func NewColorAssigner(palette []string, n int) *ColorAssigner {
	if len(palette) == 0 {
		return &ColorAssigner{palette: append([]Color(nil), category10...), fallback: true}
	}
	k := len(palette)
	group := (n + k - 1) / k
	if group < 1 {
		group = 1
	}
	return &ColorAssigner{palette: parsePalette(palette), groupSize: group}
}

// Band returns the palette slot for rank i.
func (a *ColorAssigner) Band(i int) int {
	if a.fallback {
		return i % len(a.palette)
	}
	return (i / a.groupSize) % len(a.palette)
}

// Color returns the fill for rank i.
func (a *ColorAssigner) Color(i int) Color {
	return a.palette[a.Band(i)]
}

// Palette returns the assigner's palette in slot order. The returned slice
// MUST NOT be mutated.
func (a *ColorAssigner) Palette() []Color {
	return a.palette
}

// Shuffled returns an assigner with the same rank-to-band mapping and a
// randomly permuted palette, so repeated redraws move colors between bands.
func (a *ColorAssigner) Shuffled(rng *rand.Rand) *ColorAssigner {
	return &ColorAssigner{
		palette:   ShufflePalette(rng, a.palette),
		groupSize: a.groupSize,
		fallback:  a.fallback,
	}
}

// ShufflePalette returns a uniformly random permutation of s using
// Fisher–Yates. s is not modified.
func ShufflePalette[T any](rng *rand.Rand, s []T) []T {
	out := append([]T(nil), s...)
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
