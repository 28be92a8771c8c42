package wordcloud

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Draw implements ebiten.Game. Elements are drawn in order around the
// surface center; each is scaled by FontSize relative to its bound word size
// so a growing word reuses one cached face.
func (c *Cloud) Draw(screen *ebiten.Image) {
	if c.clearColor.A > 0 {
		screen.Fill(c.clearColor.RGBA())
	}
	if s := c.reconciler.Surface(); s != nil && c.fonts != nil {
		cx := float64(s.Size.Width) / 2
		cy := float64(s.Size.Height) / 2
		for _, e := range s.Elements() {
			drawElement(screen, c.fonts, e, cx, cy)
		}
	}
	if c.debug != nil {
		c.debug.draw(screen)
	}
	c.flushScreenshots(screen)
}

func drawElement(dst *ebiten.Image, fonts *TTFMeasurer, e *Element, cx, cy float64) {
	if !e.Visible || e.disposed || e.Word.Size <= 0 || e.FontSize <= 0 || e.Word.Text == "" {
		return
	}
	face := fonts.Face(e.Word.Size)
	scale := e.FontSize / e.Word.Size

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(e.Rotation * math.Pi / 180)
	op.GeoM.Translate(cx+e.X, cy+e.Y)
	op.ColorScale.ScaleWithColor(e.Color.RGBA())
	text.Draw(dst, e.Word.Text, face, op)
}
