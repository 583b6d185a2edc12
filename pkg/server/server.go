package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/modal/pkg/modal"
	"github.com/vango-dev/modal/pkg/render"
	"github.com/vango-dev/modal/pkg/vdom"
)

// Server is the modal showcase server.
type Server struct {
	config     *Config
	router     chi.Router
	upgrader   websocket.Upgrader
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a server from config. A nil config uses DefaultConfig.
func New(config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: config.logger(),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	if s.config.Tracer != nil {
		r.Use(s.config.Tracer.HTTP)
	}
	if s.config.Metrics != nil {
		r.Use(s.config.Metrics.HTTP)
	}

	r.Get("/", s.handleIndex)
	r.Get("/modal", s.handleModal)
	r.Get("/ws", s.HandleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Get("/static/modal.css", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = w.Write([]byte(Stylesheet))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.config.gatherer(), promhttp.HandlerOpts{}))
	return r
}

// Handler returns the server's http.Handler for mounting in other routers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	session := NewSession(s.config)
	body := session.view()

	var buf bytes.Buffer
	err := render.NewRenderer(render.RendererConfig{}).RenderPage(&buf, render.PageData{
		Body:         vdom.Div(vdom.ID("app"), body),
		Title:        s.config.Title,
		StyleSheets:  []string{"/static/modal.css"},
		ClientScript: ClientScript,
	})
	if err != nil {
		s.logger.Error("render page failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// handleModal renders the widget alone as an HTML fragment.
//
// Query parameters: open (bool, default true), size, position, content.
func (s *Server) handleModal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	open := true
	if v := q.Get("open"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid open value %q", v), http.StatusBadRequest)
			return
		}
		open = parsed
	}
	size, _ := modal.ParseSize(q.Get("size"))
	if q.Get("size") == "" {
		size = s.config.DefaultSize
	}
	position, _ := modal.ParsePosition(q.Get("position"))
	if q.Get("position") == "" {
		position = s.config.DefaultPosition
	}

	node := modal.Render(open, size, position, q.Get("content"), nil)
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		s.logger.Error("render modal failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	sizeLabel, posLabel := renderLabels(size, position)
	s.config.Metrics.RecordRender(open, sizeLabel, posLabel)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails. Cancellation triggers a graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
