package wordcloud

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Config wires a Cloud to its collaborators. Every field is optional.
type Config struct {
	// ID identifies the cloud's surface in Surfaces. Defaults to a random UUID.
	ID string
	// Options; the zero value means DefaultOptions.
	Options *Options
	// Engine places words. Defaults to a SpiralEngine using Measurer.
	Engine LayoutEngine
	// Measurer sizes word boxes for the engine and for hit testing.
	// Defaults to a TTFMeasurer on the embedded face.
	Measurer Measurer
	// OnWordClick receives the data of a clicked word. Nil makes words
	// non-interactive.
	OnWordClick func(LayoutWord)
	// Events additionally receives every click.
	Events EventSink
	// Surfaces is the presentation registry. Defaults to a private one.
	Surfaces *SurfaceRegistry
	// ResizeInterval debounces container size changes. Zero means
	// DefaultResizeInterval; a negative value disables debouncing.
	ResizeInterval time.Duration
	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color
	// Easing for transitions. Defaults to ease.OutCubic.
	Easing ease.TweenFunc
	// ScreenshotDir receives Screenshot captures. Defaults to
	// DefaultScreenshotDir.
	ScreenshotDir string
	// Debug shows the FPS and layout pass overlay.
	Debug  bool
	Logger *log.Logger
	Rand   *rand.Rand
	// Clock replaces time.Now, mainly for tests.
	Clock func() time.Time
}

// Cloud owns one word cloud: its words and options, the pipeline passes that
// lay them out, the frozen layout and the rendered surface. A Cloud is an
// ebiten.Game; Layout feeds the window size to its dimension observer.
//
// All methods must be called from the same goroutine (the game loop). Layout
// passes run on their own goroutines but their results are only applied from
// Update.
type Cloud struct {
	id          string
	words       []Word
	opts        Options
	onWordClick func(LayoutWord)
	events      EventSink
	clearColor  Color
	logger      *log.Logger
	rng         *rand.Rand
	clock       func() time.Time
	fonts       *TTFMeasurer

	ctx    context.Context
	cancel context.CancelFunc

	observer   *DimensionObserver
	adapter    *layoutAdapter
	frozen     FrozenLayout
	reconciler *Reconciler

	dims     Dimensions
	hasDims  bool
	gen      uint64
	inFlight bool
	placed   []LayoutWord

	injectQueue []pointerEvent
	pressed     *Element
	mouseDown   bool
	script      *Script

	screenshotDir   string
	screenshotQueue []string
	debug           *debugOverlay
	lastPass        passStats
}

// New creates a cloud for words. Nothing is laid out until the first size is
// known, via Layout or Resize.
func New(words []Word, cfg Config) *Cloud {
	c := &Cloud{
		id:          cfg.ID,
		words:       slices.Clone(words),
		onWordClick: cfg.OnWordClick,
		events:      cfg.Events,
		clearColor:  cfg.ClearColor,
		logger:      cfg.Logger,
		rng:         cfg.Rand,
		clock:       cfg.Clock,

		screenshotDir: cfg.ScreenshotDir,
	}
	if c.screenshotDir == "" {
		c.screenshotDir = DefaultScreenshotDir
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	if cfg.Options != nil {
		c.opts = *cfg.Options
	} else {
		c.opts = DefaultOptions()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	easing := cfg.Easing
	if easing == nil {
		easing = ease.OutCubic
	}
	interval := cfg.ResizeInterval
	switch {
	case interval == 0:
		interval = DefaultResizeInterval
	case interval < 0:
		interval = 0
	}

	measurer := cfg.Measurer
	if ttf, ok := measurer.(*TTFMeasurer); ok {
		c.fonts = ttf
	}
	if c.fonts == nil {
		ttf, err := NewTTFMeasurer(nil)
		if err != nil {
			c.logger.Warn("default font unavailable, using estimated metrics", "err", err)
		} else {
			c.fonts = ttf
		}
	}
	if measurer == nil {
		if c.fonts != nil {
			measurer = c.fonts
		} else {
			measurer = EstimateMeasurer{}
		}
	}
	engine := cfg.Engine
	if engine == nil {
		engine = NewSpiralEngine(measurer)
	}

	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.observer = NewDimensionObserver(interval)
	c.adapter = newLayoutAdapter(engine)
	c.reconciler = NewReconciler(c.id, cfg.Surfaces, measurer, easing)
	c.SetDebug(cfg.Debug)
	return c
}

// ID returns the cloud's surface ID.
func (c *Cloud) ID() string { return c.id }

// Words returns the current input words. The returned slice MUST NOT be
// mutated.
func (c *Cloud) Words() []Word { return c.words }

// Options returns the current options.
func (c *Cloud) Options() Options { return c.opts }

// SetWords replaces the input words and starts a new pass.
func (c *Cloud) SetWords(words []Word) {
	c.words = slices.Clone(words)
	c.recompute()
}

// SetOptions replaces the options and starts a new pass.
func (c *Cloud) SetOptions(opts Options) {
	c.opts = opts
	c.recompute()
}

// Resize reports the container size. The clamped size is applied on the next
// Update, immediately for the first size and after the resize interval for
// later ones.
func (c *Cloud) Resize(w, h int) {
	c.observer.Observe(w, h, c.clock())
}

// Dimensions returns the surface size in use.
func (c *Cloud) Dimensions() Dimensions {
	if c.hasDims {
		return c.dims
	}
	if d, ok := c.observer.Current(); ok {
		return d
	}
	return ClampDimensions(0, 0)
}

// State returns the reconciler's lifecycle state.
func (c *Cloud) State() RenderState { return c.reconciler.State() }

// Surface returns the surface being drawn, or nil before the first render.
func (c *Cloud) Surface() *Surface { return c.reconciler.Surface() }

// Placed returns the words currently rendered. The returned slice MUST NOT be
// mutated.
func (c *Cloud) Placed() []LayoutWord { return c.placed }

// Generation returns the number of passes started so far.
func (c *Cloud) Generation() uint64 { return c.gen }

// Busy reports whether a layout pass is in flight.
func (c *Cloud) Busy() bool { return c.inFlight }

// Animating reports whether a transition is running.
func (c *Cloud) Animating() bool { return c.reconciler.Animating() }

// FrozenLayout returns the cloud's frozen layout cache.
func (c *Cloud) FrozenLayout() *FrozenLayout { return &c.frozen }

// ResetLayout empties the frozen layout so the next pass is captured afresh.
// It does not start a pass.
func (c *Cloud) ResetLayout() {
	c.frozen.Reset()
}

// Close cancels any pass in flight and discards the surface. The cloud can
// be laid out again afterwards.
func (c *Cloud) Close() {
	c.adapter.stop()
	c.cancel()
	c.ctx, c.cancel = context.WithCancel(context.Background())
	// Anything still in flight now belongs to a stale generation.
	c.gen++
	c.inFlight = false
	c.pressed = nil
	c.reconciler.Reset()
}

// Update implements ebiten.Game.
func (c *Cloud) Update() error {
	c.pollMouse()
	c.step(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// Layout implements ebiten.Game. The logical screen is the clamped surface
// size, so windows smaller than MinDimension scale the cloud down.
func (c *Cloud) Layout(outsideWidth, outsideHeight int) (int, int) {
	c.Resize(outsideWidth, outsideHeight)
	d := c.Dimensions()
	return d.Width, d.Height
}

// step runs one frame of the pipeline: publish a settled size, apply a
// finished pass, dispatch input and advance transitions.
func (c *Cloud) step(dt float32) {
	if d, ok := c.observer.Poll(c.clock()); ok {
		c.dims = d
		c.hasDims = true
		c.logger.Debug("surface resized", "id", c.id, "width", d.Width, "height", d.Height)
		c.recompute()
	}
	for {
		res, ok := c.adapter.poll()
		if !ok {
			break
		}
		c.complete(res)
	}
	if c.script != nil {
		c.script.step(c)
	}
	c.processInjectedInput()
	c.reconciler.Update(dt)
	if c.debug != nil {
		c.debug.update(c, dt)
	}
}

// recompute starts a pass for the current words, options and size. It is a
// no-op until the size is known.
func (c *Cloud) recompute() {
	if !c.hasDims {
		return
	}
	c.gen++
	opts := c.opts.normalized()
	sized := sizedWords(c.words, opts)
	passRng := rand.New(rand.NewPCG(c.rng.Uint64(), c.rng.Uint64()))
	cfg := newLayoutConfig(opts, c.dims, passRng)

	c.logger.Debug("layout pass started", "id", c.id, "gen", c.gen, "words", len(sized))
	c.inFlight = true
	c.adapter.start(c.ctx, c.gen, sized, cfg)
}

// complete applies a finished pass unless a newer pass has started since.
func (c *Cloud) complete(res layoutResult) {
	if res.gen != c.gen {
		c.logger.Debug("stale layout ignored", "id", c.id, "gen", res.gen, "current", c.gen)
		return
	}
	c.inFlight = false
	if res.err != nil {
		if !errors.Is(res.err, context.Canceled) {
			c.logger.Warn("layout failed", "id", c.id, "gen", res.gen, "err", res.err)
		}
		return
	}

	opts := c.opts.normalized()
	c.lastPass = passStats{gen: res.gen, elapsed: res.elapsed, placed: len(res.words), dropped: len(c.words) - len(res.words)}
	if c.lastPass.dropped > 0 {
		c.logger.Debug("words did not fit", "id", c.id, "gen", res.gen, "dropped", c.lastPass.dropped)
	}
	c.frozen.Capture(res.words)
	words := c.frozen.Resolve(opts.EnableRandomization, res.words)
	c.placed = words

	initial := NewColorAssigner(opts.Colors, len(words))
	var onClick func(LayoutWord)
	if c.onWordClick != nil || c.events != nil {
		onClick = c.dispatchClick
	}
	c.reconciler.Reconcile(words, c.dims, Paint{
		Initial:    initial,
		Transition: initial.Shuffled(c.rng),
		Duration:   opts.TransitionDuration,
		OnClick:    onClick,
	})
	c.logger.Debug("layout pass rendered", "id", c.id, "pass", c.lastPass, "state", c.reconciler.State())
}

// dispatchClick forwards a clicked word to the callback and event sink.
func (c *Cloud) dispatchClick(w LayoutWord) {
	if c.onWordClick != nil {
		c.onWordClick(w)
	}
	if c.events != nil {
		c.events.EmitEvent(ClickEvent{CloudID: c.id, Word: w})
	}
}
