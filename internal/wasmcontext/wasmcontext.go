// Package wasmcontext converts between Go contexts and the ContextWire
// format carried on host/guest requests, and holds the current execution
// context for the single-threaded guest.
package wasmcontext

import (
	stdcontext "context"
	"sync"
	"time"

	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
)

// contextKey is a private key type to avoid context value collisions.
type contextKey string

// RequestIDKey is the context key for the request ID.
const RequestIDKey contextKey = "request_id"

// contextStore holds the current context for the guest execution.
// WASM guests are single-threaded, so one slot is enough; the lock keeps
// native tests honest.
var contextStore = struct {
	ctx stdcontext.Context
	sync.RWMutex
}{
	ctx: stdcontext.Background(),
}

// SetCurrentContext sets the current execution context. The export
// wrappers call this when the host invokes describe, schema, or
// hash_btc_header.
func SetCurrentContext(ctx stdcontext.Context) {
	contextStore.Lock()
	defer contextStore.Unlock()
	contextStore.ctx = ctx
}

// GetCurrentContext returns the current execution context, falling back
// to context.Background() when none has been set.
func GetCurrentContext() stdcontext.Context {
	contextStore.RLock()
	defer contextStore.RUnlock()
	if contextStore.ctx == nil {
		return stdcontext.Background()
	}
	return contextStore.ctx
}

// ResetContext resets the global context to background. Deferred by the
// export wrappers after an operation completes.
func ResetContext() {
	SetCurrentContext(stdcontext.Background())
}

// ContextToWire converts a context.Context to its wire format: deadline,
// cancellation status, and request ID (key: RequestIDKey).
func ContextToWire(ctx stdcontext.Context) entities.ContextWire {
	wire := entities.ContextWire{}

	if deadline, ok := ctx.Deadline(); ok {
		wire.Deadline = &deadline
		timeout := time.Until(deadline)
		if timeout > 0 {
			wire.TimeoutMs = timeout.Milliseconds()
		}
	}

	select {
	case <-ctx.Done():
		wire.Canceled = true
	default:
	}

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		if id, ok := requestID.(string); ok {
			wire.RequestID = id
		}
	}

	return wire
}

// WireToContext converts a ContextWire to a context.Context derived from
// parent (context.Background() when parent is nil). The returned
// CancelFunc must be called to release resources.
func WireToContext(parent stdcontext.Context, wire entities.ContextWire) (stdcontext.Context, stdcontext.CancelFunc) {
	if parent == nil {
		parent = stdcontext.Background()
	}

	ctx := parent

	var cancel stdcontext.CancelFunc
	switch {
	case wire.Deadline != nil:
		ctx, cancel = stdcontext.WithDeadline(ctx, *wire.Deadline)
	case wire.TimeoutMs > 0:
		ctx, cancel = stdcontext.WithTimeout(ctx, time.Duration(wire.TimeoutMs)*time.Millisecond)
	default:
		ctx, cancel = stdcontext.WithCancel(ctx)
	}

	if wire.RequestID != "" {
		ctx = stdcontext.WithValue(ctx, RequestIDKey, wire.RequestID)
	}

	if wire.Canceled {
		cancel()
	}

	return ctx, cancel
}
