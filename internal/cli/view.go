package cli

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/wordcloud"
)

type viewOpts struct {
	optionFlags
	width      int
	height     int
	seed       uint64
	background string
	font       string
	title      string
	script     string
	shots      string
	fps        bool
}

func (c *CLI) viewCommand() *cobra.Command {
	opts := viewOpts{width: defaultWidth, height: defaultHeight}

	cmd := &cobra.Command{
		Use:   "view [words-file]",
		Short: "Show a word list in an interactive window",
		Long: `View opens a resizable window with the word cloud. Resizing the window
re-lays out the words with an animated transition; clicking a word prints it.`,
		Example: `  wordcloud view words.txt
  wordcloud view words.txt --frozen --spiral archimedean
  wordcloud view words.txt --script demo.json --screenshots out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cloud, err := c.newViewCloud(cmd, args[0], opts)
			if err != nil {
				return err
			}
			title := opts.title
			if title == "" {
				title = appName + " · " + args[0]
			}
			return wordcloud.Run(cloud, wordcloud.RunConfig{
				Title:     title,
				Width:     opts.width,
				Height:    opts.height,
				Resizable: true,
				ShowFPS:   opts.fps,
			})
		},
	}

	opts.optionFlags.register(cmd)
	flags := cmd.Flags()
	flags.IntVar(&opts.width, "width", opts.width, "window width")
	flags.IntVar(&opts.height, "height", opts.height, "window height")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	flags.StringVar(&opts.background, "background", "#ffffff", "background hex color")
	flags.StringVar(&opts.font, "font", "", "TTF/OTF font file")
	flags.StringVar(&opts.title, "title", "", "window title")
	flags.StringVar(&opts.script, "script", "", "JSON script of clicks, resizes and screenshots to play")
	flags.StringVar(&opts.shots, "screenshots", wordcloud.DefaultScreenshotDir, "directory for script screenshots")
	flags.BoolVar(&opts.fps, "fps", false, "show the FPS and layout overlay")
	return cmd
}

// newViewCloud builds the cloud shown by the view command. Clicks are logged
// and printed.
func (c *CLI) newViewCloud(cmd *cobra.Command, input string, opts viewOpts) (*wordcloud.Cloud, error) {
	words, err := loadWords(input, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	options, err := opts.options(cmd)
	if err != nil {
		return nil, err
	}
	fontData, err := loadFont(opts.font)
	if err != nil {
		return nil, err
	}
	measurer, err := wordcloud.NewTTFMeasurer(fontData)
	if err != nil {
		return nil, err
	}
	bg, err := wordcloud.ParseColor(opts.background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	cfg := wordcloud.Config{
		Options:       &options,
		Measurer:      measurer,
		ClearColor:    bg,
		ScreenshotDir: opts.shots,
		Logger:        c.Logger,
		OnWordClick: func(w wordcloud.LayoutWord) {
			c.Logger.Info("word clicked", "text", w.Text, "value", w.Value)
			printInfo(cmd.OutOrStdout(), "%s %s", styleValue.Render(w.Text), styleDim.Render(fmt.Sprintf("(%g)", w.Value)))
		},
	}
	if opts.seed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}

	var script *wordcloud.Script
	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		if script, err = wordcloud.LoadScript(data); err != nil {
			return nil, err
		}
	}

	out := cmd.OutOrStdout()
	printTitle(out, "Word cloud")
	printKeyValue(out, "words", fmt.Sprint(len(words)))
	printKeyValue(out, "spiral", string(options.Spiral))
	printKeyValue(out, "randomize", fmt.Sprint(options.EnableRandomization))
	if script != nil {
		printKeyValue(out, "script", opts.script)
	}

	cloud := wordcloud.New(words, cfg)
	cloud.SetScript(script)
	return cloud, nil
}
