package server

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/tagkit/pkg/element"
	"github.com/vango-dev/tagkit/pkg/render"
)

// ServerConfig holds configuration for the preview server.
type ServerConfig struct {
	// Address is the address to listen on (e.g., ":8080" or "localhost:3000").
	// Default: ":8080".
	Address string

	// ReadHeaderTimeout bounds reading request headers.
	// Default: 10 seconds.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	// Default: 30 seconds.
	ShutdownTimeout time.Duration

	// MaxBodyBytes limits request bodies.
	// Default: 1MB.
	MaxBodyBytes int64

	// MetricsNamespace is the Prometheus namespace.
	// Default: "tagkit".
	MetricsNamespace string

	// Registry receives the server's metrics and is served on /metrics.
	// Default: a new registry.
	Registry *prometheus.Registry

	// Catalog classifies tag names. Default: render.DefaultCatalog().
	Catalog render.Catalog

	// Defaults and Themes supply provider attributes for /begin-end.
	Defaults element.DefaultsProvider
	Themes   element.ThemeProvider

	// Theme is applied when a request does not name one.
	Theme string

	// Logger is the structured logger. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":8080",
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   30 * time.Second,
		MaxBodyBytes:      1 << 20,
		MetricsNamespace:  "tagkit",
	}
}

// withDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	out := DefaultServerConfig()
	if c == nil {
		return out
	}
	merged := *c
	if merged.Address == "" {
		merged.Address = out.Address
	}
	if merged.ReadHeaderTimeout <= 0 {
		merged.ReadHeaderTimeout = out.ReadHeaderTimeout
	}
	if merged.ShutdownTimeout <= 0 {
		merged.ShutdownTimeout = out.ShutdownTimeout
	}
	if merged.MaxBodyBytes <= 0 {
		merged.MaxBodyBytes = out.MaxBodyBytes
	}
	if merged.MetricsNamespace == "" {
		merged.MetricsNamespace = out.MetricsNamespace
	}
	return &merged
}
