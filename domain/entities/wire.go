package entities

import "time"

// ContextWire is the JSON wire format for context.Context propagation
// between host and guest.
type ContextWire struct {
	Deadline  *time.Time `json:"deadline,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
	TimeoutMs int64      `json:"timeout_ms,omitempty"`
	Canceled  bool       `json:"canceled,omitempty"`
}

// HashHeaderRequest is the JSON wire format for a hash_btc_header
// invocation. HeaderHex is a hex-encoded byte sequence, conventionally an
// 80-byte Bitcoin block header, though the operation accepts any valid
// hex string unless the contract config restricts it.
type HashHeaderRequest struct {
	HeaderHex string         `json:"header_hex"`
	Config    map[string]any `json:"config,omitempty"`
	Context   ContextWire    `json:"context"`
}

// Hash256Request is the JSON wire format for the hash256 host function,
// which lets a guest delegate the double-SHA-256 computation to the host.
type Hash256Request struct {
	DataHex string      `json:"data_hex"`
	Context ContextWire `json:"context"`
}

// Hash256Response is the JSON wire format for a hash256 host function
// response. Exactly one of Digest or Error is populated.
type Hash256Response struct {
	Error  *ErrorDetail `json:"error,omitempty"`
	Digest string       `json:"digest,omitempty"`
}
