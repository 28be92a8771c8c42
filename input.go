package wordcloud

import "github.com/hajimehoshi/ebiten/v2"

// pointerEvent is a single press or release in surface coordinates.
type pointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a left-button press at surface coordinates (x, y). The
// event is consumed on the next frame and real mouse input is ignored while
// injected events are pending.
func (c *Cloud) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, pointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a left-button release at surface coordinates (x, y).
func (c *Cloud) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, pointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (c *Cloud) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// processInjectedInput pops one queued event and feeds it through
// processPointer.
func (c *Cloud) processInjectedInput() {
	if len(c.injectQueue) == 0 {
		return
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
	c.processPointer(evt.x, evt.y, evt.pressed)
}

// pollMouse reads the left mouse button and forwards edges to
// processPointer.
func (c *Cloud) pollMouse() {
	if len(c.injectQueue) > 0 {
		return
	}
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if down == c.mouseDown {
		return
	}
	c.mouseDown = down
	x, y := ebiten.CursorPosition()
	c.processPointer(float64(x), float64(y), down)
}

// processPointer records the element under a press and fires its OnClick
// when the release lands on the same element.
func (c *Cloud) processPointer(x, y float64, pressed bool) {
	s := c.reconciler.Surface()
	if s == nil {
		c.pressed = nil
		return
	}
	hit := s.HitTest(x, y)
	if pressed {
		c.pressed = hit
		return
	}
	target := c.pressed
	c.pressed = nil
	if hit == nil || hit != target || hit.OnClick == nil {
		return
	}
	lx, ly := s.toLocal(x, y)
	hit.OnClick(ClickContext{
		Element: hit,
		Word:    hit.Word,
		GlobalX: x,
		GlobalY: y,
		LocalX:  lx,
		LocalY:  ly,
	})
}
