package contract

import (
	"fmt"
	"runtime/debug"

	"github.com/btcverify-dev/btcverify-sdk/domain/entities"
)

// panicResult converts a recovered panic value into an error Result with
// a "panic" ErrorDetail carrying the stack trace. The export wrappers use
// it so a guest-side panic crosses the boundary as a structured Result
// instead of trapping the module.
func panicResult(r any) entities.Result {
	detail := entities.NewErrorDetail("panic", fmt.Sprintf("contract panic: %v", r))
	detail.Stack = debug.Stack()
	return entities.ResultError(detail)
}
