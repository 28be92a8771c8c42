package wordcloud

import (
	"cmp"
	"context"
	"math"
	"math/rand/v2"
	"slices"
)

// ctxCheckInterval is how many spiral steps run between cancellation checks.
const ctxCheckInterval = 1024

// SpiralEngine is the default LayoutEngine. Words are placed largest first:
// each starts at a random point near the surface center and walks an
// archimedean or rectangular spiral until its rotated box overlaps no placed
// word and fits inside the surface. A word whose spiral leaves the surface
// diagonal without finding a slot is dropped.
type SpiralEngine struct {
	Measurer Measurer
}

// NewSpiralEngine returns a spiral engine measuring words with m. A nil m
// falls back to EstimateMeasurer.
func NewSpiralEngine(m Measurer) *SpiralEngine {
	if m == nil {
		m = EstimateMeasurer{}
	}
	return &SpiralEngine{Measurer: m}
}

// Compute implements LayoutEngine.
func (e *SpiralEngine) Compute(ctx context.Context, words []LayoutWord, cfg LayoutConfig) ([]LayoutWord, error) {
	if len(words) == 0 {
		return nil, ctx.Err()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	measurer := e.Measurer
	if measurer == nil {
		measurer = EstimateMeasurer{}
	}
	width := float64(cfg.Dimensions.Width)
	height := float64(cfg.Dimensions.Height)

	out := slices.Clone(words)
	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(out[b].Size, out[a].Size)
	})

	placed := make([]bool, len(out))
	boxes := make([]Box, 0, len(out))
	for _, idx := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w := &out[idx]
		if cfg.Rotate != nil {
			w.Rotate = cfg.Rotate()
		}
		tw, th := measurer.Measure(*w)
		if tw <= 0 || th <= 0 {
			continue
		}
		pad := w.Padding
		box := NewBox(0, 0, tw+2*pad, th+2*pad, w.Rotate)

		startX := (rng.Float64() - 0.5) * width / 2
		startY := (rng.Float64() - 0.5) * height / 2
		dir := 1
		if rng.IntN(2) == 0 {
			dir = -1
		}
		x, y, ok, err := e.search(ctx, box, boxes, startX, startY, dir, cfg.Spiral, width, height)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		w.X, w.Y = x, y
		placed[idx] = true
		boxes = append(boxes, box.Translate(x, y))
	}

	result := make([]LayoutWord, 0, len(out))
	for i, w := range out {
		if placed[i] {
			result = append(result, w)
		}
	}
	return result, nil
}

// search walks the spiral from (startX, startY) and returns the first free
// position for box.
func (e *SpiralEngine) search(ctx context.Context, box Box, placed []Box, startX, startY float64, dir int, kind Spiral, width, height float64) (float64, float64, bool, error) {
	next := newSpiral(kind, width, height)
	maxDelta := math.Hypot(width, height)

	for t, step := 0, 0; ; step++ {
		if step%ctxCheckInterval == ctxCheckInterval-1 {
			if err := ctx.Err(); err != nil {
				return 0, 0, false, err
			}
		}
		var dx, dy float64
		if step > 0 {
			t += dir
			dx, dy = next(t)
		}
		if math.Min(math.Abs(dx), math.Abs(dy)) >= maxDelta {
			return 0, 0, false, nil
		}
		x, y := startX+dx, startY+dy
		candidate := box.Translate(x, y)
		if !candidate.Within(width, height) {
			continue
		}
		if !collides(candidate, placed) {
			return x, y, true, nil
		}
	}
}

func collides(b Box, placed []Box) bool {
	for i := range placed {
		if b.Overlaps(placed[i]) {
			return true
		}
	}
	return false
}

// newSpiral returns the spiral walker for kind. The rectangular walker keeps
// its cursor between calls, so a fresh one is needed per word.
func newSpiral(kind Spiral, width, height float64) func(t int) (float64, float64) {
	ratio := width / height
	if kind == SpiralArchimedean {
		return func(t int) (float64, float64) {
			tt := float64(t) * 0.1
			return ratio * tt * math.Cos(tt), tt * math.Sin(tt)
		}
	}

	const dy = 4.0
	dx := dy * ratio
	var x, y float64
	return func(t int) (float64, float64) {
		sign := 1
		if t < 0 {
			sign = -1
		}
		switch int(math.Sqrt(float64(1+4*sign*t))-float64(sign)) & 3 {
		case 0:
			x += dx
		case 1:
			y += dy
		case 2:
			x -= dx
		default:
			y -= dy
		}
		return x, y
	}
}
