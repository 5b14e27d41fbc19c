// Package hash256 implements the Bitcoin Hash256 algorithm:
// applying SHA-256 to a byte sequence, then applying SHA-256 again
// to the raw 32-byte output of the first pass. Bitcoin uses this
// construction for block headers and transaction ids.
package hash256

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

// Size is the size of a Hash256 digest in bytes.
const Size = sha256.Size

// BlockSize is the underlying SHA-256 block size in bytes.
const BlockSize = sha256.BlockSize

// Sum returns the Hash256 digest of data: SHA256(SHA256(data)).
// It is defined for every byte sequence, including the empty one.
func Sum(data []byte) [Size]byte {
	inner := sha256.Sum256(data)
	return sha256.Sum256(inner[:])
}

// HexSum returns the Hash256 digest of data as a lowercase
// 64-character hexadecimal string.
func HexSum(data []byte) string {
	digest := Sum(data)
	return hex.EncodeToString(digest[:])
}

// New returns a streaming hash.Hash computing the Hash256 digest.
// Write feeds the inner SHA-256; Sum finalizes the inner digest and
// runs it through the outer SHA-256.
func New() hash.Hash {
	return &digest{inner: sha256.New(), outer: sha256.New()}
}

type digest struct {
	inner hash.Hash
	outer hash.Hash
}

func (d *digest) Reset()         { d.inner.Reset() }
func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	return d.inner.Write(p)
}

func (d *digest) Sum(in []byte) []byte {
	innerSum := d.inner.Sum(nil)
	d.outer.Reset()
	d.outer.Write(innerSum)
	return d.outer.Sum(in)
}
