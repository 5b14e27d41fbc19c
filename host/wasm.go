package host

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/btcverify-dev/btcverify-sdk/domain/errors"
	"github.com/btcverify-dev/btcverify-sdk/hostfuncs"
)

// HostModuleName is the wazero module name guests import host functions from.
const HostModuleName = "btcverify_host"

func (e *Executor) registerHostFunctions(ctx context.Context) error {
	builder := e.runtime.NewHostModuleBuilder(HostModuleName)

	// 1. Register handlers from the registry under their own names
	for _, name := range e.registry.Names() {
		localName := name
		builder.NewFunctionBuilder().
			WithFunc(func(ctx context.Context, m api.Module, packed uint64) uint64 {
				ptr := uint32(packed >> 32)
				length := uint32(packed)
				payload, ok := m.Memory().Read(ptr, length)
				if !ok {
					return 0
				}
				resp := e.invokeHostFunction(ctx, localName, payload)

				allocate := m.ExportedFunction("allocate")
				if allocate == nil {
					return 0
				}
				results, err := allocate.Call(ctx, uint64(len(resp)))
				if err != nil || len(results) == 0 {
					return 0
				}
				respPtr := uint32(results[0])
				m.Memory().Write(respPtr, resp)
				return (uint64(respPtr) << 32) | uint64(len(resp))
			}).
			Export(name)
	}

	// 2. Register the mandatory log_message function
	minLevel := parseLogLevel(e.config.LogLevel)
	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, packed uint64) {
			if !e.config.EnableLogging {
				return
			}
			ptr := uint32(packed >> 32)
			length := uint32(packed)
			payload, ok := m.Memory().Read(ptr, length)
			if !ok {
				return
			}

			var logMsg struct {
				Level   string `json:"level"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(payload, &logMsg); err == nil {
				level := parseLogLevel(logMsg.Level)
				if level < minLevel {
					return
				}
				slog.Log(ctx, level, "contract log", "msg", logMsg.Message)
			} else if minLevel <= slog.LevelInfo {
				slog.Info("contract log (raw)", "payload", string(payload))
			}
		}).
		Export("log_message")

	_, err := builder.Instantiate(ctx)
	return err
}

// invokeHostFunction dispatches to the registry and converts handler
// errors into ErrorResponse JSON so guests never see a trap.
func (e *Executor) invokeHostFunction(ctx context.Context, name string, payload []byte) []byte {
	resp, err := e.registry.Invoke(ctx, name, payload)
	if err != nil {
		return hostfuncs.NewInternalError(err.Error()).ToJSON()
	}
	return resp
}

// parseLogLevel maps a level name like slog.Level.String produces onto a
// slog.Level. Unknown names fall back to Info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *ContractInstance) callRaw(ctx context.Context, name string, input []byte) (uint64, error) {
	f := c.module.ExportedFunction(name)
	if f == nil {
		return 0, fmt.Errorf("export %q not found", name)
	}

	var results []uint64
	var err error

	if len(input) == 0 {
		results, err = f.Call(ctx)
	} else {
		allocate := c.module.ExportedFunction("allocate")
		if allocate == nil {
			return 0, fmt.Errorf("contract does not export 'allocate'")
		}
		resAlloc, errAlloc := allocate.Call(ctx, uint64(len(input)))
		if errAlloc != nil {
			return 0, fmt.Errorf("failed to allocate in contract: %w", errAlloc)
		}
		if len(resAlloc) == 0 {
			return 0, fmt.Errorf("allocate returned no results")
		}
		ptr := uint32(resAlloc[0])
		if !c.module.Memory().Write(ptr, input) {
			return 0, fmt.Errorf("failed to write input to contract memory")
		}
		results, err = f.Call(ctx, uint64(ptr), uint64(len(input)))
	}

	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0], nil
}

func (c *ContractInstance) unmarshalPacked(packed uint64, v any) error {
	ptr := uint32(packed >> 32)
	length := uint32(packed)
	if ptr == 0 || length == 0 {
		return fmt.Errorf("null response from contract")
	}
	data, ok := c.module.Memory().Read(ptr, length)
	if !ok {
		return fmt.Errorf("failed to read response from memory")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &errors.WireFormatError{Operation: "unmarshal", Type: fmt.Sprintf("%T", v), Err: err}
	}
	return nil
}
