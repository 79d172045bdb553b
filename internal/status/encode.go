// internal/status/encode.go
package status

// Encode converts a Snapshot into the live part of a status block.
// Name slots are left zero; the writer owns them.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerBlock)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotSecondsInError] = s.SecondsInError

	regs[SlotFramesHi] = uint16(s.FramesSent >> 16)
	regs[SlotFramesLo] = uint16(s.FramesSent)

	for i := 0; i < SlotFrameSlots; i++ {
		var hi, lo byte
		if 2*i < len(s.LastFrame) {
			hi = s.LastFrame[2*i]
		}
		if 2*i+1 < len(s.LastFrame) {
			lo = s.LastFrame[2*i+1]
		}
		regs[SlotFrameStart+i] = uint16(hi)<<8 | uint16(lo)
	}

	regs[SlotTimestamp] = uint16(s.Timestamp)

	return regs
}

// EncodeName packs up to 16 ASCII characters into 8 registers,
// two bytes per register, big-endian. Non-printable bytes become '?'.
func EncodeName(name string) []uint16 {
	out := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}

	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
