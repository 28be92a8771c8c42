// Package cli implements the wordcloud command-line interface.
//
// Commands:
//   - render: lay out a word list and write SVG, PNG or PDF
//   - view: open an animated, clickable window
//   - serve: run the HTTP render service
//
// All commands accept --verbose (-v) for debug logging.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/wordcloud"
	"github.com/phanxgames/wordcloud/wordlist"
)

const appName = "wordcloud"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the version shown by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Wordcloud lays out weighted words as a packed, colored cloud",
		Long:         `Wordcloud sizes words by weight, packs them along a spiral without overlaps and renders them to a file, an interactive window or over HTTP.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	return root
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// optionFlags are the layout flags shared by render and view.
type optionFlags struct {
	config   string
	colors   string
	spiral   string
	minSize  float64
	maxSize  float64
	padding  float64
	frozen   bool
	rotation int
}

func (f *optionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", f.config, "options file (TOML, or JSON by extension)")
	flags.StringVar(&f.colors, "colors", "", "comma-separated hex palette")
	flags.StringVar(&f.spiral, "spiral", "", "spiral: rectangular or archimedean")
	flags.Float64Var(&f.minSize, "min-size", 0, "smallest font size in pixels")
	flags.Float64Var(&f.maxSize, "max-size", 0, "largest font size in pixels")
	flags.Float64Var(&f.padding, "padding", -1, "padding around each word in pixels")
	flags.BoolVar(&f.frozen, "frozen", false, "keep the first layout when words or size change")
	flags.IntVar(&f.rotation, "rotations", 0, "number of rotation angles")
}

// options loads the config file, if any, and applies set flags over it.
func (f *optionFlags) options(cmd *cobra.Command) (wordcloud.Options, error) {
	opts := wordcloud.DefaultOptions()
	if f.config != "" {
		loaded, err := wordcloud.LoadOptions(f.config)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("colors") {
		opts.Colors = splitList(f.colors)
	}
	if flags.Changed("spiral") {
		switch s := wordcloud.Spiral(f.spiral); s {
		case wordcloud.SpiralArchimedean, wordcloud.SpiralRectangular:
			opts.Spiral = s
		default:
			return opts, fmt.Errorf("unknown spiral %q", f.spiral)
		}
	}
	if flags.Changed("min-size") {
		opts.FontSizeRange.Min = f.minSize
	}
	if flags.Changed("max-size") {
		opts.FontSizeRange.Max = f.maxSize
	}
	if flags.Changed("padding") {
		opts.Padding = f.padding
	}
	if flags.Changed("frozen") {
		opts.EnableRandomization = !f.frozen
	}
	if flags.Changed("rotations") {
		opts.RotationDivision = f.rotation
	}
	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadWords reads a word list from path, or from stdin when path is "-".
func loadWords(path string, stdin io.Reader) ([]wordcloud.Word, error) {
	if path != "-" {
		return wordlist.Load(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return wordlist.ParseAuto(data)
}

// loadFont reads an optional TTF file; an empty path means the embedded face.
func loadFont(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return data, nil
}
