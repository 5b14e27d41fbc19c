// Package host provides the runtime environment for executing
// verification contracts compiled to WASM.
//
// It abstracts the underlying WASM engine (wazero), manages contract
// lifecycle, and handles the low-level ABI interactions: guest memory
// allocation and the packed pointer/length convention. It also registers
// the host functions a guest may import, such as hash256 and log_message.
package host
