// internal/tkg/check.go
package tkg

import (
	"fmt"
	"strings"

	"github.com/tamzrod/tkg-transmitter/internal/bits"
	"github.com/tamzrod/tkg-transmitter/internal/crc"
)

// Decoded is every field of a frame, unpacked for display and verification.
type Decoded struct {
	Frame Frame

	Estop     bool
	DataType  uint8
	Timestamp uint8
	NoDef     uint8

	VelX   int8
	VelY   int8
	VelYaw int8

	Wheel       uint8
	Fire        uint8
	Taimatu     uint8
	HandForward bool
	FireAngle   bool

	LowSpeed bool
	MG       uint8
	Opt2None uint8

	CRC         byte
	ExpectedCRC byte
	CRCOK       bool
}

// Check unpacks every field and recomputes the checksum.
// A mismatch is reported in CRCOK, never as an error.
func Check(f Frame) Decoded {
	h, fi, o := f[PosHeader], f[PosFiring], f[PosOpt2]
	want := crc.Sum(f[:PosCrc])

	return Decoded{
		Frame: f,

		Estop:     bits.Unpack(h, HeaderNotEstop) == 0,
		DataType:  bits.Unpack(h, HeaderDataType),
		Timestamp: bits.Unpack(h, HeaderTimestamp),
		NoDef:     bits.Unpack(h, HeaderNoDef),

		VelX:   int8(f[PosVelX]),
		VelY:   int8(f[PosVelY]),
		VelYaw: int8(f[PosVelYaw]),

		Wheel:       bits.Unpack(fi, FiringWheel),
		Fire:        bits.Unpack(fi, FiringFire),
		Taimatu:     bits.Unpack(fi, FiringTaimatu),
		HandForward: bits.Unpack(fi, FiringHand) == 1,
		FireAngle:   bits.Unpack(fi, FiringAngle) == 1,

		LowSpeed: bits.Unpack(o, Opt2SpeedMode) == 1,
		MG:       bits.Unpack(o, Opt2MG),
		Opt2None: bits.Unpack(o, Opt2None),

		CRC:         f[PosCrc],
		ExpectedCRC: want,
		CRCOK:       f[PosCrc] == want,
	}
}

// CheckWire decodes a wire message and checks it.
func CheckWire(line []byte) (Decoded, error) {
	f, err := Decode(line)
	if err != nil {
		return Decoded{}, err
	}
	return Check(f), nil
}

// CRCStatus renders "OK" or "NG(expected xx)".
func (d Decoded) CRCStatus() string {
	if d.CRCOK {
		return "OK"
	}
	return fmt.Sprintf("NG(expected %02x)", d.ExpectedCRC)
}

// Hex renders the raw bytes as "a4 3f ...".
func (d Decoded) Hex() string {
	parts := make([]string, FrameSize)
	for i, b := range d.Frame {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

// String renders every field on one line.
func (d Decoded) String() string {
	spd := "std"
	if d.LowSpeed {
		spd = "slow"
	}
	return fmt.Sprintf(
		"estop=%s ts=%d dtype=%d vel=(%+4d,%+4d,%+4d) whl=%d fire=%d tai=%d hand=%d ang=%d spd=%s mg=%d crc=%s",
		yn(d.Estop), d.Timestamp, d.DataType,
		d.VelX, d.VelY, d.VelYaw,
		d.Wheel, d.Fire, d.Taimatu, b2i(d.HandForward), b2i(d.FireAngle),
		spd, d.MG, d.CRCStatus(),
	)
}

func yn(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}
