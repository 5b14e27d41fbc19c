package entities

import (
	"time"
)

// Config represents host-side runtime settings. These control how the
// executor treats contract invocations, not what the contract computes.
type Config struct {
	// LogLevel is the logging verbosity level ("debug", "info", "warn", "error").
	LogLevel string `json:"log_level,omitempty"`

	// DefaultTimeout is the default timeout applied to contract invocations
	// that carry no deadline of their own.
	DefaultTimeout time.Duration `json:"default_timeout"`

	// MaxRequestBytes bounds the size of a request handed to the guest.
	// This guards the host against unbounded allocation from adversarial
	// input; the contract logic itself is permissive.
	MaxRequestBytes int `json:"max_request_bytes"`

	// EnableLogging controls whether guest log_message calls are forwarded.
	EnableLogging bool `json:"enable_logging"`
}

// DefaultMaxRequestBytes limits the size of incoming requests (1MB).
// Prevents a malicious caller from triggering OOM with a huge hex string.
const DefaultMaxRequestBytes = 1 * 1024 * 1024

// DefaultConfig returns the default host configuration.
func DefaultConfig() Config {
	return Config{
		DefaultTimeout:  30 * time.Second,
		MaxRequestBytes: DefaultMaxRequestBytes,
		EnableLogging:   true,
		LogLevel:        "info",
	}
}

// ConfigOption is a functional option for host configuration.
type ConfigOption func(*Config)

// WithDefaultTimeout sets the default invocation timeout.
func WithDefaultTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		if d > 0 {
			c.DefaultTimeout = d
		}
	}
}

// WithMaxRequestBytes sets the request size bound.
func WithMaxRequestBytes(n int) ConfigOption {
	return func(c *Config) {
		if n > 0 {
			c.MaxRequestBytes = n
		}
	}
}

// WithLogging enables or disables guest log forwarding.
func WithLogging(enabled bool) ConfigOption {
	return func(c *Config) {
		c.EnableLogging = enabled
	}
}

// WithLogLevel sets the logging verbosity level.
func WithLogLevel(level string) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// NewConfig creates a new Config with the given options applied to defaults.
func NewConfig(opts ...ConfigOption) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
