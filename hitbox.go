package wordcloud

import "math"

// Box is a rotated rectangle: the footprint of a word in surface-local
// coordinates (origin at the surface center). Corners are stored in winding
// order together with their axis-aligned bounds.
type Box struct {
	Corners [4]Vec2
	Bounds  Rect
}

// NewBox returns the box of a w x h rectangle centered on (cx, cy) and
// rotated clockwise by deg degrees (Y grows downward).
func NewBox(cx, cy, w, h, deg float64) Box {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	hw, hh := w/2, h/2
	local := [4]Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	var b Box
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range local {
		x := cx + p.X*cos - p.Y*sin
		y := cy + p.X*sin + p.Y*cos
		b.Corners[i] = Vec2{x, y}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	b.Bounds = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	return b
}

// Translate returns b moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	for i := range b.Corners {
		b.Corners[i].X += dx
		b.Corners[i].Y += dy
	}
	b.Bounds.X += dx
	b.Bounds.Y += dy
	return b
}

// Contains reports whether (x, y) lies inside or on the box, using the
// cross-product sign test for convex polygons.
func (b Box) Contains(x, y float64) bool {
	if !b.Bounds.Contains(x, y) {
		return false
	}
	var positive, negative bool
	for i := 0; i < 4; i++ {
		p1 := b.Corners[i]
		p2 := b.Corners[(i+1)%4]
		cross := (p2.X-p1.X)*(y-p1.Y) - (p2.Y-p1.Y)*(x-p1.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Overlaps reports whether the interiors of b and o intersect. Boxes that
// only touch along an edge do not overlap. Uses the separating axis test on
// the two edge normals of each box.
func (b Box) Overlaps(o Box) bool {
	if !b.Bounds.Intersects(o.Bounds) {
		return false
	}
	for _, box := range [2]*Box{&b, &o} {
		for i := 0; i < 2; i++ {
			p1 := box.Corners[i]
			p2 := box.Corners[i+1]
			axis := Vec2{X: -(p2.Y - p1.Y), Y: p2.X - p1.X}
			minA, maxA := b.project(axis)
			minB, maxB := o.project(axis)
			if maxA <= minB+epsilon || maxB <= minA+epsilon {
				return false
			}
		}
	}
	return true
}

const epsilon = 1e-9

func (b Box) project(axis Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range b.Corners {
		d := c.X*axis.X + c.Y*axis.Y
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// Within reports whether b lies entirely inside the w x h surface centered
// on the origin.
func (b Box) Within(w, h float64) bool {
	return b.Bounds.X >= -w/2 && b.Bounds.Y >= -h/2 &&
		b.Bounds.X+b.Bounds.Width <= w/2 && b.Bounds.Y+b.Bounds.Height <= h/2
}
