// Package playground implements the local HTTP server behind the serve
// command: a small form for trying selector expressions, a live-preview
// WebSocket endpoint, and Prometheus metrics about both.
package playground

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	htmlwriter "github.com/wongyip/php-html-writer"
)

// Config configures the playground server.
type Config struct {
	// Addr is the listen address, e.g. ":8780".
	Addr string

	// Writer renders the submitted expressions. Defaults to
	// htmlwriter.Default.
	Writer *htmlwriter.Writer

	// Logger receives request and connection logs. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Server serves the playground. Create with New.
type Server struct {
	addr     string
	writer   *htmlwriter.Writer
	logger   *slog.Logger
	metrics  *metrics
	upgrader websocket.Upgrader

	httpServer *http.Server
}

// New creates a playground server.
func New(config Config) *Server {
	writer := config.Writer
	if writer == nil {
		writer = htmlwriter.Default
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		addr:    config.Addr,
		writer:  writer,
		logger:  logger,
		metrics: newMetrics(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	return s
}

// Handler returns the playground's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/render", s.handleRender)
	r.Get("/ws", s.handleWS)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts it down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info("playground listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleIndex serves the playground page. The page itself is assembled with
// the library.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := s.renderIndex()
	if err != nil {
		s.logger.Error("index render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// handleRender renders a selector expression submitted as form data
// (fields: selector, content). Parser errors come back as 422 so the form
// can show them verbatim.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	expr := r.PostFormValue("selector")
	content := r.PostFormValue("content")

	start := time.Now()
	out, err := s.writer.Tag(expr, nil, content)
	s.metrics.observe("tag", time.Since(start).Seconds(), err)

	if err != nil {
		s.logger.Info("render rejected", "selector", expr, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out))
}

// handleWS upgrades to a WebSocket live preview: every text message is a
// selector expression, every reply the rendered markup or the parser error
// prefixed with "error: ".
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(4096)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				s.logger.Error("websocket read error", "error", err)
			}
			return
		}
		s.metrics.wsMessages.Inc()

		start := time.Now()
		out, err := s.writer.Tag(string(msg))
		s.metrics.observe("tag", time.Since(start).Seconds(), err)
		if err != nil {
			s.metrics.wsErrors.Inc()
			out = "error: " + err.Error()
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(out)); err != nil {
			s.logger.Error("websocket write error", "error", err)
			return
		}
	}
}

// renderIndex builds the playground page with the library itself.
func (s *Server) renderIndex() (string, error) {
	p := pageBuilder{writer: s.writer}

	p.raw("<!DOCTYPE html>")
	p.open("html")
	p.open("body")
	p.tag("h1", "htmlwriter playground")
	p.open("form[method=post action=/render]")
	p.tag("input#selector.mono[type=text name=selector placeholder=div#main.card]")
	p.tag("input#content.mono[type=text name=content placeholder=Hello]")
	p.tag("button.go[type=submit]", "Render")
	p.close("form")
	p.tag("pre#output")
	p.close("body")
	p.close("html")

	return p.result()
}

// pageBuilder accumulates markup and keeps the first error, so page
// assembly reads top to bottom without per-call error plumbing.
type pageBuilder struct {
	writer *htmlwriter.Writer
	parts  []string
	err    error
}

func (p *pageBuilder) add(out string, err error) {
	if p.err != nil {
		return
	}
	if err != nil {
		p.err = err
		return
	}
	p.parts = append(p.parts, out)
}

func (p *pageBuilder) raw(markup string) { p.add(markup, nil) }

func (p *pageBuilder) tag(expr string, args ...any) { p.add(p.writer.Tag(expr, args...)) }

func (p *pageBuilder) open(expr string) { p.add(p.writer.Open(expr, nil)) }

func (p *pageBuilder) close(expr string) { p.add(p.writer.Close(expr)) }

func (p *pageBuilder) result() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return strings.Join(p.parts, ""), nil
}
