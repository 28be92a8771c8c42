package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/canvas"

	"github.com/phanxgames/wordcloud"
)

func sampleWords() []wordcloud.LayoutWord {
	return []wordcloud.LayoutWord{
		{Word: wordcloud.Word{Text: "small", Value: 1}, Size: 16, X: -60, Y: -40},
		{Word: wordcloud.Word{Text: "rotated", Value: 2}, Size: 24, X: 80, Y: 0, Rotate: 90},
		{Word: wordcloud.Word{Text: "large", Value: 3}, Size: 48, X: 0, Y: 60},
	}
}

func newExporter(t *testing.T) *Exporter {
	t.Helper()
	e, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{".PNG", FormatPNG, false},
		{"pdf", FormatPDF, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
	if f, err := FormatFromPath("out/cloud.pdf"); err != nil || f != FormatPDF {
		t.Errorf("FormatFromPath = %q, %v", f, err)
	}
}

func TestWriteSVG(t *testing.T) {
	e := newExporter(t)
	var buf bytes.Buffer
	err := e.WriteSVG(&buf, sampleWords(), Options{
		Dimensions: wordcloud.Dimensions{Width: 400, Height: 300},
		Colors:     []string{"#ff0000"},
		Background: "#ffffff",
	})
	if err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("output is not SVG: %.80s", out)
	}
	if !strings.Contains(out, "400") || !strings.Contains(out, "300") {
		t.Error("SVG should carry the surface size")
	}
}

func TestWritePNG(t *testing.T) {
	e := newExporter(t)
	var buf bytes.Buffer
	if err := e.Write(&buf, FormatPNG, sampleWords(), Options{Dimensions: wordcloud.Dimensions{Width: 300, Height: 300}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestWritePDF(t *testing.T) {
	e := newExporter(t)
	var buf bytes.Buffer
	if err := e.Write(&buf, FormatPDF, sampleWords(), Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestWriteFile(t *testing.T) {
	e := newExporter(t)
	path := filepath.Join(t.TempDir(), "cloud.svg")
	if err := e.WriteFile(path, sampleWords(), Options{}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected a non-empty file, stat err = %v", err)
	}
	if err := e.WriteFile(filepath.Join(t.TempDir(), "cloud.gif"), sampleWords(), Options{}); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestEmptyLayout(t *testing.T) {
	e := newExporter(t)
	var buf bytes.Buffer
	if err := e.WriteSVG(&buf, nil, Options{Background: "#ffffff"}); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("expected an SVG document for an empty layout")
	}

	buf.Reset()
	opts := Options{Dimensions: wordcloud.Dimensions{Width: 400, Height: 320}}
	if err := e.Write(&buf, FormatPNG, nil, opts); err != nil {
		t.Fatalf("Write png: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 320 {
		t.Errorf("png size = %dx%d, want 400x320", cfg.Width, cfg.Height)
	}
}

func TestBadBackground(t *testing.T) {
	e := newExporter(t)
	if _, err := e.Draw(sampleWords(), Options{Background: "not-a-color"}); err == nil {
		t.Error("expected an error for an invalid background")
	}
}

func TestMeasure(t *testing.T) {
	e := newExporter(t)
	w := wordcloud.LayoutWord{Word: wordcloud.Word{Text: "measure"}, Size: 20}
	w1, h1 := e.Measure(w)
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("Measure = %v x %v, want positive", w1, h1)
	}
	w.Size = 40
	w2, h2 := e.Measure(w)
	if w2 < 1.9*w1 || w2 > 2.1*w1 || h2 < 1.9*h1 || h2 > 2.1*h1 {
		t.Errorf("doubling the size gave %v x %v from %v x %v", w2, h2, w1, h1)
	}
	if w, h := e.Measure(wordcloud.LayoutWord{Size: 20}); w != 0 || h != 0 {
		t.Error("empty text should measure zero")
	}
}

func TestCanvasStyle(t *testing.T) {
	tests := []struct {
		style  wordcloud.FontStyle
		weight wordcloud.FontWeight
		want   canvas.FontStyle
	}{
		{wordcloud.FontStyleNormal, wordcloud.FontWeightNormal, canvas.FontRegular},
		{wordcloud.FontStyleNormal, wordcloud.FontWeightBold, canvas.FontBold},
		{wordcloud.FontStyleItalic, wordcloud.FontWeightNormal, canvas.FontRegular | canvas.FontItalic},
		{wordcloud.FontStyleOblique, "700", canvas.FontBold | canvas.FontItalic},
		{wordcloud.FontStyleNormal, "900", canvas.FontBlack},
		{wordcloud.FontStyleNormal, "300", canvas.FontLight},
		{wordcloud.FontStyleNormal, "400", canvas.FontRegular},
	}
	for _, tt := range tests {
		if got := canvasStyle(tt.style, tt.weight); got != tt.want {
			t.Errorf("canvasStyle(%q, %q) = %v, want %v", tt.style, tt.weight, got, tt.want)
		}
	}
}

func TestComputeThenExport(t *testing.T) {
	e := newExporter(t)
	words := []wordcloud.Word{{Text: "go", Value: 5}, {Text: "cloud", Value: 3}, {Text: "export", Value: 1}}
	dims := wordcloud.Dimensions{Width: 400, Height: 300}
	placed, err := wordcloud.Compute(t.Context(), words, wordcloud.DefaultOptions(), dims, wordcloud.NewSpiralEngine(e), nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(placed) != 3 {
		t.Fatalf("placed %d words, want 3", len(placed))
	}
	var buf bytes.Buffer
	if err := e.WriteSVG(&buf, placed, Options{Dimensions: dims}); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
}
