package host

import (
	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
	"github.com/btcverify-dev/btcverify-sdk/hostfuncs"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithHostFunctions configures the executor with a host function registry.
func WithHostFunctions(registry *hostfuncs.HandlerRegistry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithConfig sets the executor's runtime configuration (request size
// bound, default timeout, log forwarding).
func WithConfig(cfg entities.Config) Option {
	return func(e *Executor) {
		e.config = cfg
	}
}
