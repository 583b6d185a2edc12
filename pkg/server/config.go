package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/modal/pkg/middleware"
	"github.com/vango-dev/modal/pkg/modal"
)

// Config configures the showcase server.
type Config struct {
	// Address is the listen address. Default: ":8080".
	Address string

	// Title is the page title.
	Title string

	// DefaultSize and DefaultPosition seed each new session.
	DefaultSize     modal.Size
	DefaultPosition modal.Position

	// ReadHeaderTimeout, ReadTimeout, WriteTimeout and IdleTimeout are passed
	// to http.Server.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 10 seconds.
	ShutdownTimeout time.Duration

	// MaxMessageSize is the maximum size of an incoming WebSocket message.
	// Default: 4KB.
	MaxMessageSize int64

	// CheckOrigin validates WebSocket upgrade requests. Nil uses the
	// gorilla/websocket same-origin check.
	CheckOrigin func(r *http.Request) bool

	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics records Prometheus metrics. Nil disables metrics.
	Metrics *middleware.Metrics

	// Gatherer serves /metrics. Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Tracer wraps requests and events in spans. Nil disables tracing.
	Tracer *middleware.Tracer
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		Title:             "Modal showcase",
		DefaultSize:       modal.DefaultSize,
		DefaultPosition:   modal.DefaultPosition,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		MaxMessageSize:    4 * 1024,
	}
}

// Validate reports configuration errors.
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("server: address is required")
	}
	if c.MaxMessageSize <= 0 {
		return errors.New("server: max message size must be positive")
	}
	if c.ShutdownTimeout < 0 {
		return errors.New("server: shutdown timeout must not be negative")
	}
	return nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Config) gatherer() prometheus.Gatherer {
	if c.Gatherer != nil {
		return c.Gatherer
	}
	return prometheus.DefaultGatherer
}
