package wordcloud

import (
	"context"
	"math/rand/v2"
	"time"
)

// LayoutConfig is everything a layout engine needs besides the words.
type LayoutConfig struct {
	Dimensions Dimensions
	FontFamily string
	FontStyle  FontStyle
	FontWeight FontWeight
	Padding    float64
	Spiral     Spiral

	// Rotate draws the rotation (degrees) for the next word. Nil means no
	// rotation.
	Rotate func() float64

	// Rand is the randomness source for this pass. Engines must not share it
	// across passes. Nil means the engine picks its own.
	Rand *rand.Rand
}

// LayoutEngine places sized words on a surface. Compute returns the subset of
// words it managed to place, each with X, Y (relative to the surface center)
// and Rotate set, in input order. Words that do not fit are dropped without
// error. Compute must return ctx.Err() promptly once ctx is cancelled.
type LayoutEngine interface {
	Compute(ctx context.Context, words []LayoutWord, cfg LayoutConfig) ([]LayoutWord, error)
}

// EngineFunc adapts a function to LayoutEngine.
type EngineFunc func(ctx context.Context, words []LayoutWord, cfg LayoutConfig) ([]LayoutWord, error)

// Compute calls f.
func (f EngineFunc) Compute(ctx context.Context, words []LayoutWord, cfg LayoutConfig) ([]LayoutWord, error) {
	return f(ctx, words, cfg)
}

// newLayoutConfig builds the engine config for one pass. opts must already
// be normalized.
func newLayoutConfig(opts Options, dims Dimensions, rng *rand.Rand) LayoutConfig {
	angles := RotationAngles(opts.RotationAngleRange.Min, opts.RotationAngleRange.Max, opts.RotationDivision)
	return LayoutConfig{
		Dimensions: dims,
		FontFamily: opts.FontFamily,
		FontStyle:  opts.FontStyle,
		FontWeight: opts.FontWeight,
		Padding:    opts.Padding,
		Spiral:     opts.Spiral,
		Rotate:     RotationPicker(angles, rng),
		Rand:       rng,
	}
}

// Compute runs one pipeline pass synchronously: weights are normalized to
// font sizes, words are ordered ascending by size and handed to engine along
// with a rotation source. The surface size is clamped like a live cloud's.
// A nil engine selects a spiral engine with the default measurer.
func Compute(ctx context.Context, words []Word, opts Options, dims Dimensions, engine LayoutEngine, rng *rand.Rand) ([]LayoutWord, error) {
	opts = opts.normalized()
	if engine == nil {
		m, err := NewTTFMeasurer(nil)
		if err != nil {
			return nil, err
		}
		engine = NewSpiralEngine(m)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	sized := sizedWords(words, opts)
	if len(sized) == 0 {
		return nil, nil
	}
	cfg := newLayoutConfig(opts, ClampDimensions(dims.Width, dims.Height), rng)
	return engine.Compute(ctx, sized, cfg)
}

// layoutResult is one engine completion tagged with the pass that asked for
// it.
type layoutResult struct {
	gen     uint64
	words   []LayoutWord
	err     error
	elapsed time.Duration
}

// layoutAdapter runs engine passes off the update loop and hands completions
// back to it. Starting a pass cancels the previous one; completions are
// tagged so the owner can drop stale ones that were already in flight.
type layoutAdapter struct {
	engine  LayoutEngine
	cancel  context.CancelFunc
	results chan layoutResult
}

func newLayoutAdapter(engine LayoutEngine) *layoutAdapter {
	return &layoutAdapter{engine: engine, results: make(chan layoutResult, 4)}
}

// start launches a pass and returns immediately.
func (a *layoutAdapter) start(parent context.Context, gen uint64, words []LayoutWord, cfg LayoutConfig) {
	a.stop()
	ctx, cancel := context.WithCancel(parent)
	a.cancel = cancel
	engine := a.engine
	go func() {
		began := time.Now()
		placed, err := engine.Compute(ctx, words, cfg)
		res := layoutResult{gen: gen, words: placed, err: err, elapsed: time.Since(began)}
		select {
		case a.results <- res:
		case <-ctx.Done():
		}
	}()
}

// poll returns the next completion without blocking.
func (a *layoutAdapter) poll() (layoutResult, bool) {
	select {
	case r := <-a.results:
		return r, true
	default:
		return layoutResult{}, false
	}
}

// stop cancels the in-flight pass, if any.
func (a *layoutAdapter) stop() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}
