package host

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
	"github.com/btcverify-dev/btcverify-sdk/domain/errors"
	"github.com/btcverify-dev/btcverify-sdk/hostfuncs"
	"github.com/btcverify-dev/btcverify-sdk/internal/wasmcontext"
)

// Executor manages the lifecycle of WASM verification contracts.
type Executor struct {
	runtime  wazero.Runtime
	registry *hostfuncs.HandlerRegistry
	config   entities.Config
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{config: entities.DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}

	// Default registry if not provided: digest delegation behind panic recovery
	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry(
			hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()),
			hostfuncs.WithBundle(hostfuncs.DigestBundle()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerHostFunctions(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// ContractInstance represents an instantiated WASM verification contract.
type ContractInstance struct {
	module api.Module
	config entities.Config
}

// LoadContract instantiates a WASM contract module.
func (e *Executor) LoadContract(ctx context.Context, wasmBytes []byte) (*ContractInstance, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return &ContractInstance{module: mod, config: e.config}, nil
}

// Describe calls the "describe" export of the contract.
func (c *ContractInstance) Describe(ctx context.Context) (entities.Metadata, error) {
	var metadata entities.Metadata
	packed, err := c.callRaw(ctx, "describe", nil)
	if err != nil {
		return metadata, err
	}
	err = c.unmarshalPacked(packed, &metadata)
	return metadata, err
}

// Schema calls the "schema" export of the contract and returns the raw
// JSON schema of its configuration.
func (c *ContractInstance) Schema(ctx context.Context) ([]byte, error) {
	packed, err := c.callRaw(ctx, "schema", nil)
	if err != nil {
		return nil, err
	}
	ptr := uint32(packed >> 32)
	length := uint32(packed)
	data, ok := c.module.Memory().Read(ptr, length)
	if !ok {
		return nil, fmt.Errorf("failed to read schema from memory")
	}
	// Copy out of guest memory before it can move
	schemaCopy := make([]byte, length)
	copy(schemaCopy, data)
	return schemaCopy, nil
}

// HashHeader calls the "hash_btc_header" export of the contract with the
// given hex-encoded header and optional configuration. The size bound and
// default timeout from the executor config are applied before any bytes
// reach the guest.
func (c *ContractInstance) HashHeader(ctx context.Context, headerHex string, config map[string]any) (entities.Result, error) {
	ctx, cancel := c.invocationContext(ctx)
	defer cancel()

	req := entities.HashHeaderRequest{
		HeaderHex: headerHex,
		Config:    config,
		Context:   wasmcontext.ContextToWire(ctx),
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return entities.Result{}, &errors.WireFormatError{Operation: "marshal", Type: "HashHeaderRequest", Err: err}
	}

	if c.config.MaxRequestBytes > 0 && len(payload) > c.config.MaxRequestBytes {
		return entities.Result{}, &errors.InputTooLargeError{Size: len(payload), Limit: c.config.MaxRequestBytes}
	}

	packed, err := c.callRaw(ctx, "hash_btc_header", payload)
	if err != nil {
		return entities.Result{}, err
	}

	var result entities.Result
	err = c.unmarshalPacked(packed, &result)
	return result, err
}

// invocationContext applies the configured default timeout when the
// caller's context carries no deadline of its own.
func (c *ContractInstance) invocationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok && c.config.DefaultTimeout > 0 {
		return context.WithTimeout(ctx, c.config.DefaultTimeout)
	}
	return ctx, func() {}
}
