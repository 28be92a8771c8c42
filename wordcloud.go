package wordcloud

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill before a palette color is applied.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a non-premultiplied 8-bit color.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Vec2 is a 2D vector used for positions and box corners.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap. Rectangles that only share
// an edge do not overlap, so words may sit flush against each other.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Range is a min/max pair used for font size and rotation angle ranges. In
// JSON and TOML it reads either as {min, max} or as a [min, max] pair.
type Range struct {
	Min float64 `json:"min" toml:"min"`
	Max float64 `json:"max" toml:"max"`
}

// ordered returns r with Min <= Max.
func (r Range) ordered() Range {
	if r.Min > r.Max {
		return Range{Min: r.Max, Max: r.Min}
	}
	return r
}

// MinDimension is the smallest width or height a surface is ever given.
const MinDimension = 300

// Dimensions is the size of the render surface in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ClampDimensions returns the surface size for a container of w x h pixels.
// Each axis is raised to MinDimension.
func ClampDimensions(w, h int) Dimensions {
	return Dimensions{Width: max(w, MinDimension), Height: max(h, MinDimension)}
}

// Spiral selects the path the spiral engine walks when searching for a free
// slot.
type Spiral string

const (
	SpiralArchimedean Spiral = "archimedean"
	SpiralRectangular Spiral = "rectangular"
)

// FontStyle is the CSS-like font style carried on every layout word.
type FontStyle string

const (
	FontStyleNormal  FontStyle = "normal"
	FontStyleItalic  FontStyle = "italic"
	FontStyleOblique FontStyle = "oblique"
)

// FontWeight is the CSS-like font weight: "normal", "bold" or a numeric
// weight such as "700".
type FontWeight string

const (
	FontWeightNormal FontWeight = "normal"
	FontWeightBold   FontWeight = "bold"
)

// RenderState is the reconciler's lifecycle state.
type RenderState uint8

const (
	StateEmpty   RenderState = iota // no elements exist
	StateCreated                    // elements bound to the first placed word set
	StateUpdated                    // elements rebound to a later word set
)

// String returns the state name.
func (s RenderState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateCreated:
		return "created"
	case StateUpdated:
		return "updated"
	default:
		return "unknown"
	}
}
