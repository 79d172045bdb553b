// internal/bits/bits_test.go
package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	hi  = Field{Offset: 6, Width: 2}
	mid = Field{Offset: 2, Width: 4}
	lo  = Field{Offset: 0, Width: 2}
)

func TestPackUnpack(t *testing.T) {
	b := Pack(hi.Of(3), mid.Of(0x5), lo.Of(1))
	assert.Equal(t, byte(0xD5), b)

	assert.Equal(t, uint8(3), Unpack(b, hi))
	assert.Equal(t, uint8(5), Unpack(b, mid))
	assert.Equal(t, uint8(1), Unpack(b, lo))
}

func TestPackMasksOversizedValue(t *testing.T) {
	// 0x7 does not fit two bits; the neighbour field must stay untouched.
	b := Pack(lo.Of(0x7))
	assert.Equal(t, byte(0x03), b)
	assert.Equal(t, uint8(0), Unpack(b, mid))
}

func TestFlag(t *testing.T) {
	f := Field{Offset: 7, Width: 1}
	assert.Equal(t, byte(0x80), Pack(f.Flag(true)))
	assert.Equal(t, byte(0x00), Pack(f.Flag(false)))
}

func TestMask(t *testing.T) {
	assert.Equal(t, byte(0xC0), hi.Mask())
	assert.Equal(t, byte(0x3C), mid.Mask())
	assert.Equal(t, byte(0xFF), Field{Offset: 0, Width: 8}.Mask())
}

func TestCovers(t *testing.T) {
	assert.True(t, Covers(hi, mid, lo))
	assert.False(t, Covers(hi, lo), "gap in bits 2-5")
	assert.False(t, Covers(hi, mid, lo, Field{Offset: 0, Width: 1}), "overlap")
	assert.False(t, Covers(Field{Offset: 7, Width: 2}), "out of range")
}

func TestRoundTripAllValues(t *testing.T) {
	for v := 0; v < 16; v++ {
		b := Pack(mid.Of(uint8(v)))
		assert.Equal(t, uint8(v), Unpack(b, mid))
	}
}
