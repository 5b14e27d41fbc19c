//go:build !wasip1

package contract

// Register records the contract instance behind the WASM exports.
// On non-WASM platforms this is a no-op so the same contract code can be
// unit-tested natively.
func Register(c Contract) {
	// No-op outside wasip1 builds
}
