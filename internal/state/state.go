// internal/state/state.go
package state

import "github.com/tamzrod/tkg-transmitter/internal/input"

// ---- FIELD RANGES ----

const (
	TimestampModulo = 8
	WheelMax        = 3
)

// Fire codes (momentary).
const (
	FireIdle   uint8 = 0
	FireSingle uint8 = 1
	FireRapid  uint8 = 2
)

// Taimatu lift codes (level).
const (
	TaimatuHold uint8 = 0
	TaimatuUp   uint8 = 1
	TaimatuDown uint8 = 2
)

// MG codes (level).
const (
	MGStop     uint8 = 0
	MGForward  uint8 = 1
	MGBackward uint8 = 2
)

// State is the frame-to-frame protocol state.
// It is owned by exactly one tick task and advanced only through Advance.
type State struct {
	Timestamp  uint8
	WheelLevel uint8
	Fire       uint8
	Taimatu    uint8
	MG         uint8

	HandForward   bool
	Estop         bool
	FireAngle     bool
	StandardSpeed bool

	// PrevButtons is the previous tick's button levels, for edge detection only.
	PrevButtons map[string]int
}

// Initial returns the boot state: ESTOP latched, everything else zero.
func Initial() State {
	return State{Estop: true}
}

// Advance derives the next state from prev and the current snapshot.
// Pure: no IO, no blocking, never fails.
func Advance(prev State, snap input.Snapshot, b Bindings) State {
	next := prev
	rising := func(name string) bool {
		return name != "" && snap.Held(name) && prev.PrevButtons[name] == 0
	}

	// ---- timestamp (unconditional) ----
	next.Timestamp = (prev.Timestamp + 1) % TimestampModulo

	// ---- wheel level (edge, clamped) ----
	if rising(b.WheelUp) && next.WheelLevel < WheelMax {
		next.WheelLevel++
	}
	if rising(b.WheelDown) && next.WheelLevel > 0 {
		next.WheelLevel--
	}

	// ---- fire (level) ----
	switch {
	case snap.Held(b.FireRapid):
		next.Fire = FireRapid
	case snap.Held(b.FireSingle):
		next.Fire = FireSingle
	default:
		next.Fire = FireIdle
	}
	next.FireAngle = snap.Held(b.FireAngle)

	// ---- taimatu lift (level) ----
	switch {
	case snap.Held(b.TaimatuUp):
		next.Taimatu = TaimatuUp
	case snap.Held(b.TaimatuDown):
		next.Taimatu = TaimatuDown
	default:
		next.Taimatu = TaimatuHold
	}

	// ---- hand / ESTOP latches (edge; set wins over clear on the same tick) ----
	if rising(b.HandBackward) {
		next.HandForward = false
	}
	if rising(b.HandForward) {
		next.HandForward = true
	}

	if rising(b.EstopOff) {
		next.Estop = false
	}
	if rising(b.EstopOn) {
		next.Estop = true
	}

	// ---- ESTOP clears stored drive state, not just the frame ----
	if next.Estop {
		next.WheelLevel = 0
		next.HandForward = false
	}

	// ---- MG (level; forward wins) ----
	switch {
	case snap.Held(b.MGForward):
		next.MG = MGForward
	case snap.Held(b.MGBackward):
		next.MG = MGBackward
	default:
		next.MG = MGStop
	}

	// ---- speed mode (level) ----
	next.StandardSpeed = snap.Held(b.StandardSpeed)

	next.PrevButtons = make(map[string]int, len(snap.Buttons))
	for k, v := range snap.Buttons {
		next.PrevButtons[k] = v
	}

	return next
}
