// internal/input/snapshot.go
package input

// ---- CHANNEL NAMES ----

// Buttons lists every button the upstream controller reader reports.
var Buttons = []string{
	"triangle", "circle", "cross", "square",
	"L1", "R1", "L3", "R3",
	"dpad_up", "dpad_down", "dpad_left", "dpad_right",
	"select", "start", "ps", "touchpad",
}

// Sticks are centered axes (neutral 128).
var Sticks = []string{"left_x", "left_y", "right_x", "right_y"}

// Triggers are one-sided axes (neutral 0).
var Triggers = []string{"L2", "R2"}

const (
	StickNeutral   = 128
	TriggerNeutral = 0
	AxisMax        = 255
)

// Snapshot is one tick of normalized controller input.
// Buttons are 0/1, analog values are 0-255.
// Once handed to the core it MUST NOT be mutated; use Clone.
type Snapshot struct {
	Buttons map[string]int `json:"buttons" yaml:"buttons"`
	Analog  map[string]int `json:"analog" yaml:"analog"`
}

// Neutral returns a snapshot with nothing pressed and sticks centered.
func Neutral() Snapshot {
	s := Snapshot{
		Buttons: make(map[string]int, len(Buttons)),
		Analog:  make(map[string]int, len(Sticks)+len(Triggers)),
	}
	for _, b := range Buttons {
		s.Buttons[b] = 0
	}
	for _, a := range Sticks {
		s.Analog[a] = StickNeutral
	}
	for _, a := range Triggers {
		s.Analog[a] = TriggerNeutral
	}
	return s
}

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Buttons: make(map[string]int, len(s.Buttons)),
		Analog:  make(map[string]int, len(s.Analog)),
	}
	for k, v := range s.Buttons {
		out.Buttons[k] = v
	}
	for k, v := range s.Analog {
		out.Analog[k] = v
	}
	return out
}

// Held reports whether the named button is pressed.
// Unknown names read as released.
func (s Snapshot) Held(name string) bool {
	return name != "" && s.Buttons[name] != 0
}

// Axis returns the named axis value, or its neutral value when absent.
func (s Snapshot) Axis(name string) int {
	if v, ok := s.Analog[name]; ok {
		return v
	}
	for _, t := range Triggers {
		if t == name {
			return TriggerNeutral
		}
	}
	return StickNeutral
}

// Merge overlays s on top of a neutral snapshot so every channel is present.
// Button values are forced to 0/1 and axes clamped to 0-255.
func (s Snapshot) Merge() Snapshot {
	out := Neutral()
	for k, v := range s.Buttons {
		if v != 0 {
			out.Buttons[k] = 1
		} else {
			out.Buttons[k] = 0
		}
	}
	for k, v := range s.Analog {
		out.Analog[k] = clampAxis(v)
	}
	return out
}

func clampAxis(v int) int {
	if v < 0 {
		return 0
	}
	if v > AxisMax {
		return AxisMax
	}
	return v
}
