// internal/state/bindings.go
package state

import "fmt"

// Bindings maps each protocol role to a controller button name.
// A role bound to "" never fires.
type Bindings struct {
	WheelUp       string `yaml:"wheel_up"`
	WheelDown     string `yaml:"wheel_down"`
	FireRapid     string `yaml:"fire_rapid"`
	FireSingle    string `yaml:"fire_single"`
	FireAngle     string `yaml:"fire_angle"`
	TaimatuUp     string `yaml:"taimatu_up"`
	TaimatuDown   string `yaml:"taimatu_down"`
	HandForward   string `yaml:"hand_forward"`
	HandBackward  string `yaml:"hand_backward"`
	MGForward     string `yaml:"mg_forward"`
	MGBackward    string `yaml:"mg_backward"`
	EstopOn       string `yaml:"estop_on"`
	EstopOff      string `yaml:"estop_off"`
	StandardSpeed string `yaml:"standard_speed"`
}

// DefaultBindings follows the DualShock/DualSense layout used on the vehicle console.
func DefaultBindings() Bindings {
	return Bindings{
		WheelUp:       "dpad_up",
		WheelDown:     "dpad_down",
		FireRapid:     "circle",
		FireSingle:    "cross",
		FireAngle:     "triangle",
		TaimatuUp:     "dpad_up",
		TaimatuDown:   "dpad_down",
		HandForward:   "square",
		HandBackward:  "R1",
		MGForward:     "dpad_right",
		MGBackward:    "dpad_left",
		EstopOn:       "select",
		EstopOff:      "start",
		StandardSpeed: "L1",
	}
}

// Roles returns role name -> bound button, in a stable order.
func (b Bindings) Roles() [][2]string {
	return [][2]string{
		{"wheel_up", b.WheelUp},
		{"wheel_down", b.WheelDown},
		{"fire_rapid", b.FireRapid},
		{"fire_single", b.FireSingle},
		{"fire_angle", b.FireAngle},
		{"taimatu_up", b.TaimatuUp},
		{"taimatu_down", b.TaimatuDown},
		{"hand_forward", b.HandForward},
		{"hand_backward", b.HandBackward},
		{"mg_forward", b.MGForward},
		{"mg_backward", b.MGBackward},
		{"estop_on", b.EstopOn},
		{"estop_off", b.EstopOff},
		{"standard_speed", b.StandardSpeed},
	}
}

// WithDefaults fills every unbound role from DefaultBindings.
func (b Bindings) WithDefaults() Bindings {
	d := DefaultBindings()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&b.WheelUp, d.WheelUp)
	fill(&b.WheelDown, d.WheelDown)
	fill(&b.FireRapid, d.FireRapid)
	fill(&b.FireSingle, d.FireSingle)
	fill(&b.FireAngle, d.FireAngle)
	fill(&b.TaimatuUp, d.TaimatuUp)
	fill(&b.TaimatuDown, d.TaimatuDown)
	fill(&b.HandForward, d.HandForward)
	fill(&b.HandBackward, d.HandBackward)
	fill(&b.MGForward, d.MGForward)
	fill(&b.MGBackward, d.MGBackward)
	fill(&b.EstopOn, d.EstopOn)
	fill(&b.EstopOff, d.EstopOff)
	fill(&b.StandardSpeed, d.StandardSpeed)
	return b
}

// Validate rejects opposing role pairs bound to the same button.
// A shared button would set and clear on the same edge.
func (b Bindings) Validate() error {
	pairs := []struct {
		name     string
		set, clr string
	}{
		{"hand", b.HandForward, b.HandBackward},
		{"mg", b.MGForward, b.MGBackward},
		{"estop", b.EstopOn, b.EstopOff},
		{"wheel", b.WheelUp, b.WheelDown},
	}
	for _, p := range pairs {
		if p.set != "" && p.set == p.clr {
			return fmt.Errorf("bindings: %s set and clear both bound to %q", p.name, p.set)
		}
	}
	return nil
}
