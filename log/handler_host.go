//go:build !wasip1

package log

import (
	"context"
	"fmt"
	"log/slog"
)

// Handle for non-WASM builds (host tests). Records fall back to stdout so
// the same contract code can run natively.
func (h *GuestLogHandler) Handle(_ context.Context, record slog.Record) error {
	fmt.Printf("[HOST-STUB] Level=%s Msg=%q\n", record.Level, record.Message)
	return nil
}
