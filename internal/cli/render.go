package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/wordcloud"
	"github.com/phanxgames/wordcloud/export"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

type renderOpts struct {
	optionFlags
	output     string
	format     string
	width      int
	height     int
	seed       uint64
	background string
	font       string
	scale      float64
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{width: defaultWidth, height: defaultHeight}

	cmd := &cobra.Command{
		Use:   "render [words-file]",
		Short: "Render a word list to SVG, PNG or PDF",
		Long: `Render lays out a word list and writes it to a file.

The word list is a text file with one "word weight" entry per line, or a JSON
array of {"text", "value"} objects. Use "-" to read from stdin.

The output format follows the --output extension unless --format is set.`,
		Example: `  wordcloud render words.txt -o cloud.svg
  wordcloud render words.json -o cloud.png --width 1200 --height 800 --scale 2
  cat words.txt | wordcloud render - -o - --format svg > cloud.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	opts.optionFlags.register(cmd)
	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "cloud.svg", `output file ("-" for stdout)`)
	flags.StringVarP(&opts.format, "format", "f", "", "output format: svg, png, pdf")
	flags.IntVar(&opts.width, "width", opts.width, "surface width in pixels")
	flags.IntVar(&opts.height, "height", opts.height, "surface height in pixels")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	flags.StringVar(&opts.background, "background", "", "background hex color")
	flags.StringVar(&opts.font, "font", "", "TTF/OTF font file")
	flags.Float64Var(&opts.scale, "scale", 1, "PNG pixels per surface pixel")
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	start := time.Now()
	words, err := loadWords(input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	options, err := opts.options(cmd)
	if err != nil {
		return err
	}
	format, err := outputFormat(opts.output, opts.format)
	if err != nil {
		return err
	}
	fontData, err := loadFont(opts.font)
	if err != nil {
		return err
	}
	exporter, err := export.New(fontData)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	c.Logger.Debug("computing layout", "words", len(words), "seed", seed, "spiral", options.Spiral)
	dims := wordcloud.ClampDimensions(opts.width, opts.height)
	rng := rand.New(rand.NewPCG(seed, seed))
	placed, err := wordcloud.Compute(cmd.Context(), words, options, dims, wordcloud.NewSpiralEngine(exporter), rng)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	exportOpts := export.Options{
		Dimensions: dims,
		Colors:     options.Colors,
		Background: opts.background,
		Scale:      opts.scale,
	}
	if opts.output == "-" {
		return exporter.Write(cmd.OutOrStdout(), format, placed, exportOpts)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := exporter.Write(f, format, placed, exportOpts); err != nil {
		f.Close()
		os.Remove(opts.output)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %d words (%s)", len(placed), time.Since(start).Round(time.Millisecond))
	printSummary(out, len(placed), len(words))
	printFile(out, opts.output)
	if len(placed) < len(words) {
		printWarning(out, "some words did not fit; try a larger surface or a smaller --max-size")
	}
	return nil
}

// outputFormat picks the format from the explicit flag or the output path.
func outputFormat(output, flag string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	if output == "-" {
		return export.FormatSVG, nil
	}
	f, err := export.FormatFromPath(output)
	if err != nil {
		return "", fmt.Errorf("cannot infer format from %q; use --format (%s)", output,
			strings.Join([]string{string(export.FormatSVG), string(export.FormatPNG), string(export.FormatPDF)}, ", "))
	}
	return f, nil
}
