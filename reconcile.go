package wordcloud

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Paint is what the reconciler needs, besides the words, to draw one pass.
type Paint struct {
	// Initial colors new elements when they are created.
	Initial *ColorAssigner
	// Transition is the (shuffled) fill every element animates to.
	Transition *ColorAssigner
	Duration   time.Duration
	// OnClick receives the clicked element's bound word. Nil leaves elements
	// non-interactive.
	OnClick func(LayoutWord)
}

// Reconciler binds placed words to the elements of a single surface and
// drives their transitions.
//
// The first pass (or any pass after Reset) creates one element per word: the
// font size grows from zero and the fill fades to the transition color, and
// the element jumps to its placed position and rotation on the final frame.
// Later passes reuse the surface, rebind words to the existing elements in
// order and animate position, rotation and fill. Extra words get new elements
// entering from the center; surplus elements are disposed.
type Reconciler struct {
	id       string
	registry *SurfaceRegistry
	measurer Measurer
	easing   ease.TweenFunc

	state   RenderState
	surface *Surface
	tweens  []*TweenGroup
}

// NewReconciler creates a reconciler drawing into the surface registered
// under id. A nil easing means linear.
func NewReconciler(id string, registry *SurfaceRegistry, m Measurer, easing ease.TweenFunc) *Reconciler {
	if registry == nil {
		registry = NewSurfaceRegistry()
	}
	if easing == nil {
		easing = ease.Linear
	}
	return &Reconciler{id: id, registry: registry, measurer: m, easing: easing}
}

// State returns the lifecycle state.
func (r *Reconciler) State() RenderState {
	return r.state
}

// Surface returns the current surface, or nil before the first pass.
func (r *Reconciler) Surface() *Surface {
	return r.surface
}

// Animating reports whether any transition is still running.
func (r *Reconciler) Animating() bool {
	return len(r.tweens) > 0
}

// Reconcile draws words onto the surface sized to dims.
func (r *Reconciler) Reconcile(words []LayoutWord, dims Dimensions, p Paint) {
	if p.Initial == nil {
		p.Initial = NewColorAssigner(nil, len(words))
	}
	if p.Transition == nil {
		p.Transition = p.Initial
	}
	// New transitions replace the running ones and start from the current
	// attribute values.
	r.tweens = r.tweens[:0]

	surface, found := r.registry.Find(r.id)
	if r.state == StateEmpty || !found {
		r.create(words, dims, p)
		r.state = StateCreated
		return
	}
	r.surface = surface
	r.update(words, dims, p)
	r.state = StateUpdated
}

func (r *Reconciler) create(words []LayoutWord, dims Dimensions, p Paint) {
	surface, created := r.registry.FindOrCreate(r.id, dims)
	if !created {
		surface.clear()
		surface.Resize(dims)
	}
	r.surface = surface

	dur := seconds(p.Duration)
	for i, w := range words {
		e := surface.addElement()
		e.bind(w, i, r.measurer)
		e.Color = p.Initial.Color(i)
		r.attachClick(e, p.OnClick)

		g := TweenFontSize(e, w.Size, dur, r.easing)
		g.addColor(e, p.Transition.Color(i), dur, r.easing)
		g.OnDone = func() {
			e.X, e.Y, e.Rotation = e.Word.X, e.Word.Y, e.Word.Rotate
		}
		r.run(g, dur)
	}
}

func (r *Reconciler) update(words []LayoutWord, dims Dimensions, p Paint) {
	surface := r.surface
	surface.Resize(dims)
	surface.truncate(len(words))

	dur := seconds(p.Duration)
	existing := surface.NumElements()
	for i, w := range words {
		var e *Element
		if i < existing {
			e = surface.Elements()[i]
		} else {
			e = surface.addElement()
			e.Color = p.Initial.Color(i)
		}
		e.bind(w, i, r.measurer)
		e.FontSize = w.Size
		r.attachClick(e, p.OnClick)

		g := TweenTransform(e, w.X, w.Y, w.Rotate, dur, r.easing)
		g.addColor(e, p.Transition.Color(i), dur, r.easing)
		r.run(g, dur)
	}
}

// run keeps g for Update, or completes it at once for zero durations.
func (r *Reconciler) run(g *TweenGroup, dur float32) {
	if dur <= 0 {
		g.finish()
		return
	}
	r.tweens = append(r.tweens, g)
}

func (r *Reconciler) attachClick(e *Element, onClick func(LayoutWord)) {
	if onClick == nil {
		e.Interactable = false
		e.OnClick = nil
		return
	}
	e.Interactable = true
	e.OnClick = func(ctx ClickContext) {
		onClick(ctx.Word)
	}
}

// Update advances every running transition by dt seconds.
func (r *Reconciler) Update(dt float32) {
	if len(r.tweens) == 0 {
		return
	}
	live := r.tweens[:0]
	for _, g := range r.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(r.tweens); i++ {
		r.tweens[i] = nil
	}
	r.tweens = live
}

// Reset discards the surface and every element and returns to StateEmpty.
func (r *Reconciler) Reset() {
	r.tweens = nil
	r.registry.Remove(r.id)
	r.surface = nil
	r.state = StateEmpty
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}
