// internal/tkg/constants.go
package tkg

import "github.com/tamzrod/tkg-transmitter/internal/bits"

// TKG frame layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- FRAME GEOMETRY ----

// FrameSize is the fixed number of bytes per frame.
const FrameSize = 7

// Byte positions.
const (
	PosHeader = 0
	PosVelX   = 1
	PosVelY   = 2
	PosVelYaw = 3
	PosFiring = 4
	PosOpt2   = 5
	PosCrc    = 6
)

// ---- HEADER (byte 0) ----

var (
	HeaderNotEstop  = bits.Field{Offset: 7, Width: 1} // 1 normal, 0 ESTOP active
	HeaderDataType  = bits.Field{Offset: 5, Width: 2}
	HeaderTimestamp = bits.Field{Offset: 2, Width: 3}
	HeaderNoDef     = bits.Field{Offset: 0, Width: 2} // always 0
)

// DataTypeCmd1 is the only data type this transmitter emits.
const DataTypeCmd1 uint8 = 0x01

// ---- FIRING (byte 4) ----

var (
	FiringWheel   = bits.Field{Offset: 6, Width: 2}
	FiringFire    = bits.Field{Offset: 4, Width: 2}
	FiringTaimatu = bits.Field{Offset: 2, Width: 2}
	FiringHand    = bits.Field{Offset: 1, Width: 1} // 1 forward, 0 backward
	FiringAngle   = bits.Field{Offset: 0, Width: 1}
)

// ---- OPT2 (byte 5) ----

var (
	Opt2SpeedMode = bits.Field{Offset: 7, Width: 1} // 0 standard, 1 low speed
	Opt2MG        = bits.Field{Offset: 5, Width: 2}
	Opt2None      = bits.Field{Offset: 0, Width: 5} // always 0
)

// ---- VELOCITY ----

// DutyScale maps duty 1.0 to the byte value. -128 is never produced.
const DutyScale = 127
