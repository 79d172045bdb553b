// internal/crc/crc.go
package crc

// Frame checksum for the TKG link.
// Layout is protocol-locked and MUST match the vehicle receiver bit for bit.

// Poly is the generator polynomial (MSB-first, implicit x^8).
const Poly byte = 0xEB

// Covered is the number of leading frame bytes the checksum covers.
const Covered = 6

// ShiftsPerByte is the number of shift/xor rounds per input byte.
// The receiver runs 7, not the textbook 8. Keep it.
const ShiftsPerByte = 7

// Sum computes the checksum over the first Covered bytes of data.
// Shorter input is treated as zero-padded.
// No IO. No side effects.
func Sum(data []byte) byte {
	var c byte
	for i := 0; i < Covered; i++ {
		if i < len(data) {
			c ^= data[i]
		}
		for j := 0; j < ShiftsPerByte; j++ {
			if c&0x80 != 0 {
				c = (c << 1) ^ Poly
			} else {
				c <<= 1
			}
		}
	}
	return c
}

// Verify reports whether frame[Covered] holds the checksum of frame[:Covered].
func Verify(frame []byte) bool {
	if len(frame) <= Covered {
		return false
	}
	return frame[Covered] == Sum(frame)
}
