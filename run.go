package wordcloud

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS turns on the cloud's debug overlay.
	ShowFPS bool
}

// Run opens a window showing c and blocks until it is closed. The cloud is
// closed on return.
func Run(c *Cloud, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		c.SetDebug(true)
	}
	defer c.Close()
	return ebiten.RunGame(c)
}
