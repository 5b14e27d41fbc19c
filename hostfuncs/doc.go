// Package hostfuncs provides pure Go implementations of host function
// logic. These implementations have no WASM runtime dependencies and can
// be used by any contract host, not just the wazero executor in host.
package hostfuncs
