package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/phanxgames/wordcloud"
	"github.com/phanxgames/wordcloud/export"
)

// renderRequest is the body of POST /render and POST /layout.
type renderRequest struct {
	Words      []wordcloud.Word        `json:"words"`
	Options    *wordcloud.OptionsPatch `json:"options"`
	Width      int                     `json:"width"`
	Height     int                     `json:"height"`
	Seed       *uint64                 `json:"seed"`
	Format     string                  `json:"format"`
	Background string                  `json:"background"`
}

// layoutResponse is the body returned by POST /layout.
type layoutResponse struct {
	Dimensions wordcloud.Dimensions   `json:"dimensions"`
	Words      []wordcloud.LayoutWord `json:"words"`
	Dropped    int                    `json:"dropped"`
}

var contentTypes = map[export.Format]string{
	export.FormatSVG: "image/svg+xml",
	export.FormatPNG: "image/png",
	export.FormatPDF: "application/pdf",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	format := export.FormatSVG
	if req.Format != "" {
		if format, err = export.ParseFormat(req.Format); err != nil {
			s.fail(w, r, badRequest(err.Error()))
			return
		}
	}
	opts, dims, placed, err := s.layout(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	err = s.exporter.Write(&buf, format, placed, export.Options{
		Dimensions: dims,
		Colors:     opts.Colors,
		Background: req.Background,
	})
	if err != nil {
		s.fail(w, r, badRequest(err.Error()))
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("write response", "id", middleware.GetReqID(r.Context()), "err", err)
	}
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	_, dims, placed, err := s.layout(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if placed == nil {
		placed = []wordcloud.LayoutWord{}
	}
	writeJSON(w, http.StatusOK, layoutResponse{
		Dimensions: dims,
		Words:      placed,
		Dropped:    len(req.Words) - len(placed),
	})
}

func (s *Server) decode(r *http.Request) (*renderRequest, error) {
	var req renderRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	if len(req.Words) > s.maxWords {
		return nil, badRequest(fmt.Sprintf("too many words: %d (max %d)", len(req.Words), s.maxWords))
	}
	return &req, nil
}

// layout runs one pass for req and returns the options, surface and placed
// words it used.
func (s *Server) layout(ctx context.Context, req *renderRequest) (wordcloud.Options, wordcloud.Dimensions, []wordcloud.LayoutWord, error) {
	opts := s.opts
	if req.Options != nil {
		opts = req.Options.Apply(opts)
	}
	dims := wordcloud.ClampDimensions(req.Width, req.Height)

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewPCG(*req.Seed, *req.Seed))
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	placed, err := wordcloud.Compute(ctx, req.Words, opts, dims, s.engine, rng)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return opts, dims, nil, &httpError{Code: http.StatusServiceUnavailable, Message: "layout timed out"}
		}
		return opts, dims, nil, err
	}
	s.logger.Debug("layout computed", "id", middleware.GetReqID(ctx), "words", len(req.Words), "placed", len(placed))
	return opts, dims, placed, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var he *httpError
	if !errors.As(err, &he) || he.Code >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", middleware.GetReqID(r.Context()), "err", err)
	}
	handleError(w, err)
}
