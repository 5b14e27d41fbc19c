// Package sdk is the root of the btcverify contract SDK. It carries the
// SDK version constants and config validation shared by contracts and
// hosts. The hashing core lives in hash256 and header; the host runtime
// in host; guest-side plumbing in internal/abi and log.
package sdk

const (
	// Version of the SDK.
	Version = "0.1.0"

	// MinHostVersion is the minimum compatible host runtime version.
	MinHostVersion = "0.1.0"
)
