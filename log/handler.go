// Package log provides structured logging (slog) adapted for the SDK's
// WASM guest environment. On wasip1 builds records are routed through the
// log_message host function; elsewhere they fall back to stdout.
package log

import (
	"context"
	"log/slog"
)

// GuestLogHandler implements slog.Handler, routing records to the host.
type GuestLogHandler struct {
	opts handlerConfig
}

// HandlerOption configures the GuestLogHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Level
	addSource bool
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report. Records below this
// level are filtered on the guest side before crossing the boundary.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// NewHandler creates a new GuestLogHandler with the given options.
func NewHandler(opts ...HandlerOption) *GuestLogHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &GuestLogHandler{opts: cfg}
}

// Enabled reports whether the handler handles records at the given level.
func (h *GuestLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// WithAttrs returns a new handler; attributes are serialized per record,
// so no pre-encoding is accumulated here.
func (h *GuestLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandler := *h
	return &newHandler
}

// WithGroup returns a new handler with the given group name.
func (h *GuestLogHandler) WithGroup(name string) slog.Handler {
	newHandler := *h
	return &newHandler
}
