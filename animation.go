package wordcloud

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxTweenFields = 8

// TweenGroup animates up to eight float64 fields of an Element together.
// Call Update(dt) each frame. When every tween finishes the fields are set to
// their exact targets, OnDone runs once, and Done becomes true. If the target
// element is disposed the group stops immediately without calling OnDone.
//
// There is no global animation manager; the reconciler owns its groups.
type TweenGroup struct {
	tweens  [maxTweenFields]*gween.Tween
	targets [maxTweenFields]float64
	fields  [maxTweenFields]*float64
	count   int
	target  *Element

	OnDone func()
	Done   bool
}

func newTweenGroup(e *Element) *TweenGroup {
	return &TweenGroup{target: e}
}

// add registers a field to animate from its current value to `to`.
func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	if g.count == maxTweenFields {
		panic("wordcloud: too many tween fields")
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.targets[g.count] = to
	g.fields[g.count] = field
	g.count++
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		g.finish()
	}
}

// finish snaps every field to its target and fires OnDone.
func (g *TweenGroup) finish() {
	for i := 0; i < g.count; i++ {
		*g.fields[i] = g.targets[i]
	}
	g.Done = true
	if g.OnDone != nil {
		g.OnDone()
	}
}

// TweenTransform creates a TweenGroup moving e to (x, y) and turning it to
// rot degrees.
func TweenTransform(e *Element, x, y, rot float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(e)
	g.add(&e.X, x, duration, fn)
	g.add(&e.Y, y, duration, fn)
	g.add(&e.Rotation, rot, duration, fn)
	return g
}

// TweenFontSize creates a TweenGroup growing or shrinking e's font size.
func TweenFontSize(e *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(e)
	g.add(&e.FontSize, to, duration, fn)
	return g
}

// addColor animates all four components of e.Color alongside g's other
// fields.
func (g *TweenGroup) addColor(e *Element, to Color, duration float32, fn ease.TweenFunc) {
	g.add(&e.Color.R, to.R, duration, fn)
	g.add(&e.Color.G, to.G, duration, fn)
	g.add(&e.Color.B, to.B, duration, fn)
	g.add(&e.Color.A, to.A, duration, fn)
}
