//go:build wasip1

package log

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/btcverify-dev/btcverify-sdk/internal/abi"
	"github.com/btcverify-dev/btcverify-sdk/internal/wasmcontext"
)

// Host function for forwarding log records, exported by the executor's
// host module.
//
//go:wasmimport btcverify_host log_message
//nolint:revive // intentional snake_case to match the WASM import convention
func host_log_message(messagePacked uint64)

// init routes the guest's default slog output through the host.
func init() {
	slog.SetDefault(slog.New(NewHandler()))
}

// Handle serializes a slog.Record and sends it to the host.
func (h *GuestLogHandler) Handle(ctx context.Context, record slog.Record) error {
	logMsg := LogMessageWire{
		Context:   wasmcontext.ContextToWire(ctx),
		Level:     record.Level.String(),
		Message:   record.Message,
		Timestamp: record.Time,
	}

	record.Attrs(func(attr slog.Attr) bool {
		logMsg.Attrs = append(logMsg.Attrs, toLogAttrWire(attr))
		return true
	})

	requestBytes, err := json.Marshal(logMsg)
	if err != nil {
		// Fallback to println if marshaling fails; the record is not lost
		fmt.Printf("sdk: failed to marshal log message for host: %v, original: %s\n", err, record.Message)
		return nil
	}

	host_log_message(abi.PtrFromBytes(requestBytes))
	return nil
}
