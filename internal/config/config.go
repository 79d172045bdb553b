// internal/config/config.go
package config

import "github.com/tamzrod/tkg-transmitter/internal/state"

type Config struct {
	Serial   SerialConfig   `yaml:"serial"`
	Transmit TransmitConfig `yaml:"transmit"`
	Input    InputConfig    `yaml:"input"`
	Bindings state.Bindings `yaml:"bindings"`

	// Link status mirror (optional, opt-in)
	Mirror *MirrorConfig `yaml:"mirror"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Port      string `yaml:"port"`
	Baud      int    `yaml:"baud"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- TRANSMIT ----

type TransmitConfig struct {
	RateHz              float64 `yaml:"rate_hz"`
	ZeroVelocityOnEstop bool    `yaml:"zero_velocity_on_estop"`
	DryRun              bool    `yaml:"dry_run"`
}

// ---- INPUT ----

const (
	InputStdin    = "stdin"
	InputScenario = "scenario"
	InputNeutral  = "neutral"
)

type InputConfig struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"` // scenario file
}

// ---- MIRROR ----

type MirrorConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	BaseSlot   uint16 `yaml:"base_slot"`
	DeviceName string `yaml:"device_name"`
	TimeoutMs  int    `yaml:"timeout_ms"`
}

// ---- DEFAULTS ----

const (
	DefaultRateHz          = 50.0
	DefaultBaud            = 115200
	DefaultSerialTimeoutMs = 500
	DefaultMirrorTimeoutMs = 1000
	MaxRateHz              = 1000.0
	DeviceNameMaxChars     = 16
)
