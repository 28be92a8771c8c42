package wordcloud

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// passStats describes the last applied layout pass.
type passStats struct {
	gen     uint64
	elapsed time.Duration
	placed  int
	dropped int
}

// String formats the stats for the debug overlay and logs.
func (s passStats) String() string {
	return fmt.Sprintf("gen: %d | pass: %v | placed: %d | dropped: %d",
		s.gen, s.elapsed.Round(time.Microsecond), s.placed, s.dropped)
}

const debugRefresh = 0.5

// debugOverlay shows FPS, TPS, the lifecycle state and the last pass in the
// top-left corner. The text is redrawn about twice a second.
type debugOverlay struct {
	img   *ebiten.Image
	since float64
	text  string
}

// SetDebug toggles the debug overlay.
func (c *Cloud) SetDebug(on bool) {
	if !on {
		c.debug = nil
		return
	}
	if c.debug == nil {
		c.debug = &debugOverlay{since: debugRefresh}
	}
}

// debugText builds the overlay contents.
func (c *Cloud) debugText() string {
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nstate: %s  words: %d\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), c.State(), len(c.words), c.lastPass)
}

func (d *debugOverlay) update(c *Cloud, dt float32) {
	d.since += float64(dt)
	if d.since < debugRefresh {
		return
	}
	d.since = 0
	d.text = c.debugText()
}

func (d *debugOverlay) draw(screen *ebiten.Image) {
	if d.text == "" {
		return
	}
	if d.img == nil {
		d.img = ebiten.NewImage(320, 52)
	}
	d.img.Clear()
	d.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(d.img, d.text)
	screen.DrawImage(d.img, nil)
}
