package hostfuncs

import (
	"context"

	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
	"github.com/btcverify-dev/btcverify-sdk/domain/errors"
	"github.com/btcverify-dev/btcverify-sdk/header"
)

// PerformHash256 computes the Hash256 digest of a hex-encoded byte
// sequence on behalf of a guest. Minimal guests can delegate the whole
// computation here instead of carrying their own SHA-256.
func PerformHash256(ctx context.Context, req entities.Hash256Request) entities.Hash256Response {
	digest, err := header.HashHex(req.DataHex, header.WithMaxInputBytes(entities.DefaultMaxRequestBytes))
	if err != nil {
		return entities.Hash256Response{Error: errors.ToErrorDetail(err)}
	}
	return entities.Hash256Response{Digest: digest}
}

// HostFuncBundle is a pre-configured set of related host functions.
type HostFuncBundle interface {
	// Handlers returns a map of handler names to ByteHandler functions.
	Handlers() map[string]ByteHandler
}

// staticBundle implements HostFuncBundle with a fixed set of handlers.
type staticBundle struct {
	handlers map[string]ByteHandler
}

func (b *staticBundle) Handlers() map[string]ByteHandler {
	return b.handlers
}

// DigestBundle returns a bundle with digest host functions: hash256.
func DigestBundle() HostFuncBundle {
	return &staticBundle{
		handlers: map[string]ByteHandler{
			"hash256": NewJSONHandler(func(ctx context.Context, req entities.Hash256Request) entities.Hash256Response {
				return PerformHash256(ctx, req)
			}),
		},
	}
}

// WithBundle registers all handlers from a bundle.
func WithBundle(bundle HostFuncBundle) RegistryOption {
	return func(b *registryBuilder) {
		for name, handler := range bundle.Handlers() {
			if err := b.addHandler(name, handler); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}
