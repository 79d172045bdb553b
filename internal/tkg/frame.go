// internal/tkg/frame.go
package tkg

import (
	"github.com/tamzrod/tkg-transmitter/internal/crc"
)

// Frame is one 7-byte TKG command frame:
// Header, VelX, VelY, VelYaw, Firing, Opt2, Crc.
type Frame [FrameSize]byte

// Seal writes the checksum of bytes 0-5 into the Crc byte.
func (f *Frame) Seal() {
	f[PosCrc] = crc.Sum(f[:PosCrc])
}

// Valid reports whether the Crc byte matches bytes 0-5.
func (f Frame) Valid() bool {
	return crc.Verify(f[:])
}

// Bytes returns a copy of the frame as a slice.
func (f Frame) Bytes() []byte {
	out := make([]byte, FrameSize)
	copy(out, f[:])
	return out
}
