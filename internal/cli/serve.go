package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/wordcloud/export"
	"github.com/phanxgames/wordcloud/internal/config"
	"github.com/phanxgames/wordcloud/internal/server"
)

const shutdownTimeout = 10 * time.Second

type serveOpts struct {
	optionFlags
	addr     string
	font     string
	maxWords int
	timeout  time.Duration
}

func (c *CLI) serveCommand() *cobra.Command {
	env := config.Load()
	opts := serveOpts{addr: env.Addr, font: env.Font, maxWords: env.MaxWords, timeout: env.Timeout}
	opts.config = env.OptionsFile

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Serve answers POST /render with a rendered cloud and POST /layout with the
placed words as JSON. Both take {"words": [...], "options": {...}, "width",
"height", "seed"}; GET /healthz reports liveness.

Defaults come from WORDCLOUD_ADDR, WORDCLOUD_FONT, WORDCLOUD_CONFIG,
WORDCLOUD_MAX_WORDS and WORDCLOUD_TIMEOUT, read from the environment or a
.env file; flags override them.`,
		Example: `  wordcloud serve --addr :9000 --config options.toml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	opts.optionFlags.register(cmd)
	flags := cmd.Flags()
	flags.StringVar(&opts.addr, "addr", opts.addr, "listen address")
	flags.StringVar(&opts.font, "font", opts.font, "TTF/OTF font file")
	flags.IntVar(&opts.maxWords, "max-words", opts.maxWords, "largest accepted word list")
	flags.DurationVar(&opts.timeout, "timeout", opts.timeout, "layout time limit per request")
	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	options, err := opts.options(cmd)
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

	srv := &http.Server{
		Addr: opts.addr,
		Handler: server.New(exporter, server.Config{
			Options:  &options,
			Logger:   c.Logger,
			MaxWords: opts.maxWords,
			Timeout:  opts.timeout,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx := cmd.Context()
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	c.Logger.Info("listening", "addr", opts.addr)
	printInfo(cmd.OutOrStdout(), "POST %s/render · POST %s/layout · GET %s/healthz", opts.addr, opts.addr, opts.addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
