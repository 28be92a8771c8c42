// Package server exposes the word cloud pipeline over HTTP: a JSON word list
// goes in, a rendered SVG, PNG or PDF (or the placed layout) comes out.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phanxgames/wordcloud"
	"github.com/phanxgames/wordcloud/export"
)

const (
	// DefaultMaxWords caps the words accepted per request.
	DefaultMaxWords = 2000
	// DefaultTimeout bounds a single layout pass.
	DefaultTimeout = 30 * time.Second
)

// Config configures a Server.
type Config struct {
	// Options are the defaults each request's options patch applies to. Nil
	// means wordcloud.DefaultOptions.
	Options  *wordcloud.Options
	Logger   *log.Logger
	MaxWords int
	Timeout  time.Duration
}

// Server renders word clouds on request.
type Server struct {
	exporter *export.Exporter
	engine   wordcloud.LayoutEngine
	opts     wordcloud.Options
	logger   *log.Logger
	maxWords int
	timeout  time.Duration
	router   chi.Router
}

// New creates a server drawing with exporter. Layouts are measured with the
// exporter's fonts so they match the drawn output.
func New(exporter *export.Exporter, cfg Config) *Server {
	s := &Server{
		exporter: exporter,
		engine:   wordcloud.NewSpiralEngine(exporter),
		logger:   cfg.Logger,
		maxWords: cfg.MaxWords,
		timeout:  cfg.Timeout,
	}
	if cfg.Options != nil {
		s.opts = *cfg.Options
	} else {
		s.opts = wordcloud.DefaultOptions()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.maxWords <= 0 {
		s.maxWords = DefaultMaxWords
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/layout", s.handleLayout)
	return r
}

// logRequests logs every request at Debug with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start).Round(time.Millisecond),
		)
	})
}
