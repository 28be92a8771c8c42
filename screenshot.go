package wordcloud

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is where screenshots go when Config.ScreenshotDir is
// empty.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to the screenshot directory with a timestamped name.
func (c *Cloud) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// flushScreenshots writes the drawn frame once per queued label.
func (c *Cloud) flushScreenshots(screen *ebiten.Image) {
	if len(c.screenshotQueue) == 0 {
		return
	}
	defer func() { c.screenshotQueue = c.screenshotQueue[:0] }()

	if err := os.MkdirAll(c.screenshotDir, 0o755); err != nil {
		c.logger.Warn("screenshot failed", "dir", c.screenshotDir, "err", err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := c.clock().Format("20060102_150405")
	for _, label := range c.screenshotQueue {
		path := filepath.Join(c.screenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			c.logger.Warn("screenshot failed", "err", err)
			continue
		}
		c.logger.Info("screenshot saved", "path", path)
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wordcloud: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("wordcloud: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.' and replaces everything
// else with '_'. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

