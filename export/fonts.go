package export

import (
	"fmt"
	"image/color"
	"strconv"
	"sync"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/wordcloud"
)

// ptPerPx converts a font size in surface pixels (canvas millimetres) to
// points.
const ptPerPx = 72 / 25.4

// fontSet is one canvas font family plus the styles loaded into it.
type fontSet struct {
	mu     sync.Mutex
	family *canvas.FontFamily
	loaded map[canvas.FontStyle]bool
}

func newFontSet(regular []byte) (*fontSet, error) {
	if regular == nil {
		regular = goregular.TTF
	}
	family := canvas.NewFontFamily("wordcloud")
	if err := family.LoadFont(regular, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("export: load font: %w", err)
	}
	return &fontSet{family: family, loaded: map[canvas.FontStyle]bool{canvas.FontRegular: true}}, nil
}

func (f *fontSet) load(style wordcloud.FontStyle, weight wordcloud.FontWeight, data []byte) error {
	cs := canvasStyle(style, weight)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.family.LoadFont(data, 0, cs); err != nil {
		return fmt.Errorf("export: load %s/%s font: %w", style, weight, err)
	}
	f.loaded[cs] = true
	return nil
}

// face returns a face for w in fill. Caller holds f.mu.
func (f *fontSet) face(w wordcloud.LayoutWord, fill color.Color) *canvas.FontFace {
	cs := canvasStyle(w.Style, w.Weight)
	if !f.loaded[cs] {
		cs = canvas.FontRegular
	}
	return f.family.Face(w.Size*ptPerPx, fill, cs, canvas.FontNormal)
}

func (f *fontSet) measure(w wordcloud.LayoutWord) (float64, float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	face := f.face(w, canvas.Black)
	m := face.Metrics()
	return face.TextWidth(w.Text), m.Ascent + m.Descent
}

// draw centers w on (x, y) and rotates it clockwise around that point.
func (f *fontSet) draw(ctx *canvas.Context, w wordcloud.LayoutWord, fill color.Color, x, y float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	face := f.face(w, fill)
	m := face.Metrics()
	line := canvas.NewTextLine(face, w.Text, canvas.Center)

	ctx.Push()
	ctx.ComposeView(canvas.Identity.Translate(x, y).Rotate(w.Rotate))
	ctx.DrawText(0, (m.Ascent-m.Descent)/2, line)
	ctx.Pop()
}

// canvasStyle maps CSS-like style and weight onto a canvas font style.
func canvasStyle(style wordcloud.FontStyle, weight wordcloud.FontWeight) canvas.FontStyle {
	cs := canvas.FontRegular
	switch weight {
	case wordcloud.FontWeightBold, "bolder":
		cs = canvas.FontBold
	case "lighter":
		cs = canvas.FontLight
	default:
		if n, err := strconv.Atoi(string(weight)); err == nil {
			switch {
			case n >= 900:
				cs = canvas.FontBlack
			case n >= 800:
				cs = canvas.FontExtraBold
			case n >= 700:
				cs = canvas.FontBold
			case n >= 600:
				cs = canvas.FontSemiBold
			case n >= 500:
				cs = canvas.FontMedium
			case n <= 300:
				cs = canvas.FontLight
			}
		}
	}
	if style == wordcloud.FontStyleItalic || style == wordcloud.FontStyleOblique {
		cs |= canvas.FontItalic
	}
	return cs
}
