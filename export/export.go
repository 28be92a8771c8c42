// Package export draws a computed word cloud layout to SVG, PNG or PDF with
// tdewolff/canvas, without a window or GPU.
//
// One canvas unit is one surface pixel. Words are centered on their placed
// position and rotated clockwise, matching the live cloud.
package export

import (
	"fmt"
	"image/png"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/phanxgames/wordcloud"
)


// Format is an output file format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat returns the format named by s ("svg", "png" or "pdf", any case,
// with or without a leading dot).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatSVG, FormatPNG, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("export: unsupported format %q", s)
	}
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Options control how a layout is drawn.
type Options struct {
	// Dimensions is the surface the layout was computed for.
	Dimensions wordcloud.Dimensions
	// Colors is the palette; empty selects the categorical fallback.
	Colors []string
	// Background is a hex fill behind the words. Empty leaves it transparent.
	Background string
	// Shuffle, when set, shuffles the palette the way a live cloud does for
	// its transition colors.
	Shuffle *rand.Rand
	// Scale is the PNG resolution in pixels per surface pixel. Zero means 1.
	Scale float64
}

// Exporter draws layouts with one font family. Safe for concurrent use.
type Exporter struct {
	fonts *fontSet
}

// New creates an exporter using TTF/OTF data for regular text. Nil data
// selects the embedded Go Regular face.
func New(ttfData []byte) (*Exporter, error) {
	fonts, err := newFontSet(ttfData)
	if err != nil {
		return nil, err
	}
	return &Exporter{fonts: fonts}, nil
}

// LoadFont adds a face used for words with the given style and weight.
// Combinations without a loaded face are drawn with the regular face.
func (e *Exporter) LoadFont(style wordcloud.FontStyle, weight wordcloud.FontWeight, ttfData []byte) error {
	return e.fonts.load(style, weight, ttfData)
}

// Measure implements wordcloud.Measurer with the exporter's fonts, so a
// layout computed headlessly matches what Draw produces.
func (e *Exporter) Measure(w wordcloud.LayoutWord) (width, height float64) {
	if w.Size <= 0 || w.Text == "" {
		return 0, 0
	}
	return e.fonts.measure(w)
}

// Draw returns a canvas with words drawn on it. An empty layout yields a
// canvas holding only the background.
func (e *Exporter) Draw(words []wordcloud.LayoutWord, opts Options) (*canvas.Canvas, error) {
	dims := wordcloud.ClampDimensions(opts.Dimensions.Width, opts.Dimensions.Height)
	width, height := float64(dims.Width), float64(dims.Height)

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	if opts.Background != "" {
		bg, err := wordcloud.ParseColor(opts.Background)
		if err != nil {
			return nil, fmt.Errorf("export: background: %w", err)
		}
		ctx.SetFillColor(bg.RGBA())
		ctx.DrawPath(0, 0, canvas.Rectangle(width, height))
	}

	colors := wordcloud.NewColorAssigner(opts.Colors, len(words))
	if opts.Shuffle != nil {
		colors = colors.Shuffled(opts.Shuffle)
	}
	for i, w := range words {
		if w.Size <= 0 || w.Text == "" {
			continue
		}
		e.fonts.draw(ctx, w, colors.Color(i).RGBA(), width/2+w.X, height/2+w.Y)
	}
	return c, nil
}

// Write draws words and encodes them to w in format.
func (e *Exporter) Write(w io.Writer, format Format, words []wordcloud.LayoutWord, opts Options) error {
	c, err := e.Draw(words, opts)
	if err != nil {
		return err
	}
	dims := wordcloud.ClampDimensions(opts.Dimensions.Width, opts.Dimensions.Height)
	width, height := float64(dims.Width), float64(dims.Height)
	switch format {
	case FormatSVG:
		r := svg.New(w, width, height, nil)
		c.RenderTo(r)
		if err := r.Close(); err != nil {
			return fmt.Errorf("export: write svg: %w", err)
		}
	case FormatPDF:
		r := pdf.New(w, width, height, nil)
		c.RenderTo(r)
		if err := r.Close(); err != nil {
			return fmt.Errorf("export: write pdf: %w", err)
		}
	case FormatPNG:
		img := rasterizer.Draw(c, canvas.DPMM(scale(opts)), canvas.DefaultColorSpace)
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("export: write png: %w", err)
		}
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
	return nil
}

// WriteSVG is Write with FormatSVG.
func (e *Exporter) WriteSVG(w io.Writer, words []wordcloud.LayoutWord, opts Options) error {
	return e.Write(w, FormatSVG, words, opts)
}

// WriteFile draws words to path; the format follows the file extension.
func (e *Exporter) WriteFile(path string, words []wordcloud.LayoutWord, opts Options) error {
	if _, err := FormatFromPath(path); err != nil {
		return err
	}
	c, err := e.Draw(words, opts)
	if err != nil {
		return err
	}
	if err := renderers.Write(path, c, canvas.DPMM(scale(opts))); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

func scale(opts Options) float64 {
	if opts.Scale <= 0 {
		return 1
	}
	return opts.Scale
}
