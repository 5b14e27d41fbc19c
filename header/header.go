// Package header implements the Bitcoin block header hashing operation:
// strict hex decode, Hash256 (double SHA-256), lowercase hex encode.
//
// The operation is a pure function of its input. It holds no state, has no
// side effects, and is safe to invoke concurrently without coordination.
package header

import (
	"encoding/hex"

	"github.com/btcverify-dev/btcverify-sdk/domain/errors"
	"github.com/btcverify-dev/btcverify-sdk/hash256"
)

// HeaderSize is the size of a Bitcoin block header in bytes.
const HeaderSize = 80

// HexSize is the length of a hex-encoded block header in characters.
const HexSize = 2 * HeaderSize

// hashConfig holds the hardening knobs for a hashing call. The zero value
// is fully permissive, matching the original contract behavior: any valid
// hex string is accepted, regardless of length.
type hashConfig struct {
	maxInputBytes int
	headerOnly    bool
}

// Option configures a HashHex call.
type Option func(*hashConfig)

// WithMaxInputBytes bounds the decoded input size. Inputs that would
// decode to more than n bytes are rejected with InputTooLargeError
// before any allocation proportional to the input occurs.
func WithMaxInputBytes(n int) Option {
	return func(c *hashConfig) {
		c.maxInputBytes = n
	}
}

// WithHeaderLengthOnly restricts the input to exactly 80 decoded bytes,
// the real Bitcoin block header size. Off by default.
func WithHeaderLengthOnly() Option {
	return func(c *hashConfig) {
		c.headerOnly = true
	}
}

// HashHex decodes input from hexadecimal, computes the Hash256 digest of
// the decoded bytes, and returns it as a lowercase 64-character hex string.
//
// Decoding is strict: an odd-length string or any character outside
// [0-9a-fA-F] yields a DecodeError. Upper and lower case decode to the
// same bytes and therefore produce identical digests. The empty string is
// valid and hashes to Hash256 of the empty byte sequence.
//
// The returned digest is in the byte order produced by the hash function;
// no Bitcoin display-order reversal is applied.
func HashHex(input string, opts ...Option) (string, error) {
	var cfg hashConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Size checks run on the encoded length so oversized input is
	// rejected before decoding allocates.
	decodedLen := len(input) / 2
	if cfg.maxInputBytes > 0 && len(input)%2 == 0 && decodedLen > cfg.maxInputBytes {
		return "", &errors.InputTooLargeError{Size: decodedLen, Limit: cfg.maxInputBytes}
	}
	if cfg.headerOnly && len(input)%2 == 0 && decodedLen != HeaderSize {
		return "", &errors.HeaderLengthError{Size: decodedLen}
	}

	data, err := hex.DecodeString(input)
	if err != nil {
		return "", &errors.DecodeError{Err: err}
	}

	return hash256.HexSum(data), nil
}
