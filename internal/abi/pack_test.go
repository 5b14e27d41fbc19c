package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		ptr    uint32
		length uint32
	}{
		{"typical", 0x1000, 160},
		{"zero length", 0x2000, 0},
		{"null empty", 0, 0},
		{"max values", ^uint32(0), ^uint32(0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			packed := PackPtrLen(tc.ptr, tc.length)
			ptr, length := UnpackPtrLen(packed)
			assert.Equal(t, tc.ptr, ptr)
			assert.Equal(t, tc.length, length)
		})
	}
}

func TestPackPtrLen_Layout(t *testing.T) {
	packed := PackPtrLen(0xDEADBEEF, 0x40)
	assert.Equal(t, uint64(0xDEADBEEF_00000040), packed)
}

func TestPackPtrLen_NullWithLengthPanics(t *testing.T) {
	assert.Panics(t, func() { PackPtrLen(0, 1) })
	assert.Panics(t, func() { UnpackPtrLen(uint64(42)) }) // high 32 bits zero, length 42
}
