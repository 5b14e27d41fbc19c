//go:build wasip1

package contract

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
	"github.com/btcverify-dev/btcverify-sdk/internal/abi"
	"github.com/btcverify-dev/btcverify-sdk/internal/wasmcontext"
)

// registered holds the contract behind the exports. WASM is
// single-threaded, so a plain package variable is sufficient.
var registered Contract

// Register records the contract instance behind the WASM exports.
// Call it from the guest's init or main before the host invokes anything.
func Register(c Contract) {
	registered = c
}

// handleExportedCall wraps an export body with panic recovery and response
// packing. On panic, pinned allocations are released and a structured
// error Result crosses the boundary instead of a module trap.
func handleExportedCall(f func() (any, error)) (packed uint64) {
	defer func() {
		if r := recover(); r != nil {
			abi.FreeAllTracked()
			result := panicResult(r)
			slog.Error("sdk: contract panic recovered", "error", result.Error.Message)
			packed = respond(result)
		}
	}()

	v, err := f()
	if err != nil {
		packed = respond(entities.ResultError(entities.NewErrorDetail("internal", err.Error())))
		return
	}

	switch data := v.(type) {
	case []byte:
		packed = abi.PtrFromBytes(data)
	default:
		packed = respond(v)
	}
	return
}

// respond marshals v and hands it to the host as a packed ptr/len.
func respond(v any) uint64 {
	data, err := json.Marshal(v)
	if err != nil {
		fallback, _ := json.Marshal(entities.ResultError(
			entities.NewErrorDetail("internal", "response marshalling failed")))
		return abi.PtrFromBytes(fallback)
	}
	return abi.PtrFromBytes(data)
}

//go:wasmexport describe
func describeExport() uint64 {
	return handleExportedCall(func() (any, error) {
		if registered == nil {
			return nil, fmt.Errorf("no contract registered")
		}
		meta, err := registered.Describe(wasmcontext.GetCurrentContext())
		if err != nil {
			return nil, err
		}
		return meta, nil
	})
}

//go:wasmexport schema
func schemaExport() uint64 {
	return handleExportedCall(func() (any, error) {
		if registered == nil {
			return nil, fmt.Errorf("no contract registered")
		}
		data, err := registered.Schema(wasmcontext.GetCurrentContext())
		if err != nil {
			return nil, err
		}
		return data, nil
	})
}

//go:wasmexport hash_btc_header
func hashBTCHeaderExport(ptr, length uint32) uint64 {
	return handleExportedCall(func() (any, error) {
		if registered == nil {
			return nil, fmt.Errorf("no contract registered")
		}

		payload := abi.BytesFromPtr(abi.PackPtrLen(ptr, length))

		var req entities.HashHeaderRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return entities.ResultError(
				entities.NewErrorDetail("wire", "malformed hash_btc_header request").WithCode("wire_format")), nil
		}

		ctx, cancel := wasmcontext.WireToContext(nil, req.Context)
		defer cancel()
		wasmcontext.SetCurrentContext(ctx)
		defer wasmcontext.ResetContext()

		return registered.HashHeader(ctx, req), nil
	})
}
