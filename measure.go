package wordcloud

import (
	"bytes"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Measurer reports the unrotated, unpadded box a word occupies at its Size.
type Measurer interface {
	Measure(w LayoutWord) (width, height float64)
}

// TTFMeasurer measures words with Ebitengine's text/v2 shaping. Faces are
// cached per pixel size. Safe for concurrent use.
type TTFMeasurer struct {
	source *text.GoTextFaceSource

	mu    sync.Mutex
	faces map[float64]*text.GoTextFace
}

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.GoTextFaceSource
	defaultSourceErr  error
)

// DefaultFaceSource returns the embedded Go Regular face used when no font
// data is supplied. It is parsed once.
func DefaultFaceSource() (*text.GoTextFaceSource, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if defaultSourceErr != nil {
			defaultSourceErr = fmt.Errorf("wordcloud: failed to parse default font: %w", defaultSourceErr)
		}
	})
	return defaultSource, defaultSourceErr
}

// NewTTFMeasurer creates a measurer from TTF/OTF data. Nil data selects the
// embedded default face.
func NewTTFMeasurer(ttfData []byte) (*TTFMeasurer, error) {
	var source *text.GoTextFaceSource
	var err error
	if ttfData == nil {
		source, err = DefaultFaceSource()
	} else {
		source, err = text.NewGoTextFaceSource(bytes.NewReader(ttfData))
		if err != nil {
			err = fmt.Errorf("wordcloud: failed to parse TTF data: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}
	return &TTFMeasurer{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// Face returns the cached face for a pixel size.
func (m *TTFMeasurer) Face(size float64) *text.GoTextFace {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: m.source, Size: size}
	m.faces[size] = f
	return f
}

// Measure returns the rendered width and line height of w.Text at w.Size.
func (m *TTFMeasurer) Measure(w LayoutWord) (width, height float64) {
	if w.Size <= 0 || w.Text == "" {
		return 0, 0
	}
	face := m.Face(w.Size)
	metrics := face.Metrics()
	lh := metrics.HAscent + metrics.HDescent
	return text.Measure(w.Text, face, lh)
}

// EstimateMeasurer approximates a word's box without any font data: each rune
// is CharWidth em wide and the box is one em tall. Zero CharWidth means 0.6.
type EstimateMeasurer struct {
	CharWidth float64
}

// Measure returns the estimated box of w.
func (e EstimateMeasurer) Measure(w LayoutWord) (width, height float64) {
	cw := e.CharWidth
	if cw <= 0 {
		cw = 0.6
	}
	n := utf8.RuneCountInString(w.Text)
	if n == 0 || w.Size <= 0 {
		return 0, 0
	}
	return cw * w.Size * float64(n), w.Size
}
