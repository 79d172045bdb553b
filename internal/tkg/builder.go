// internal/tkg/builder.go
package tkg

import (
	"github.com/tamzrod/tkg-transmitter/internal/bits"
	"github.com/tamzrod/tkg-transmitter/internal/state"
)

// Builder composes frames from protocol state and body duties.
type Builder struct {
	// ZeroVelocityOnEstop forces VelX/VelY/VelYaw to 0 while ESTOP is latched.
	// Off by default: the receiver applies its own stop on the header bit.
	ZeroVelocityOnEstop bool
}

// Build composes one sealed frame.
// Total over well-formed state and duties. No IO.
func (b Builder) Build(s state.State, vx, vy, vyaw float64) Frame {
	var f Frame

	wheel := s.WheelLevel
	taimatu := s.Taimatu
	hand := s.HandForward
	if s.Estop {
		wheel = 0
		taimatu = 0
		hand = false
		if b.ZeroVelocityOnEstop {
			vx, vy, vyaw = 0, 0, 0
		}
	}

	f[PosHeader] = bits.Pack(
		HeaderNotEstop.Flag(!s.Estop),
		HeaderDataType.Of(DataTypeCmd1),
		HeaderTimestamp.Of(s.Timestamp),
	)

	f[PosVelX] = DutyToByte(vx)
	f[PosVelY] = DutyToByte(vy)
	f[PosVelYaw] = DutyToByte(vyaw)

	f[PosFiring] = bits.Pack(
		FiringWheel.Of(wheel),
		FiringFire.Of(s.Fire),
		FiringTaimatu.Of(taimatu),
		FiringHand.Flag(hand),
		FiringAngle.Flag(s.FireAngle),
	)

	f[PosOpt2] = bits.Pack(
		Opt2SpeedMode.Flag(!s.StandardSpeed),
		Opt2MG.Of(s.MG),
	)

	f.Seal()
	return f
}

// Build composes a frame with the default builder.
func Build(s state.State, vx, vy, vyaw float64) Frame {
	return Builder{}.Build(s, vx, vy, vyaw)
}

// DutyToByte maps a duty in [-1.0, 1.0] to a two's complement byte.
// Truncates toward zero, then clamps to [-127, 127].
func DutyToByte(duty float64) byte {
	v := DutyToSigned(duty)
	return byte(v)
}

// DutyToSigned is DutyToByte before the two's complement cast.
func DutyToSigned(duty float64) int8 {
	scaled := duty * DutyScale
	// NaN compares false everywhere; treat it as stop.
	if scaled != scaled {
		return 0
	}
	if scaled >= DutyScale {
		return DutyScale
	}
	if scaled <= -DutyScale {
		return -DutyScale
	}
	return int8(scaled)
}
