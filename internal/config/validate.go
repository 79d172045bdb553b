// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/tamzrod/tkg-transmitter/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	// ------------------------------------------------------------
	// SERIAL / TRANSMIT
	// ------------------------------------------------------------

	if cfg.Serial.Baud < 0 {
		return fmt.Errorf("serial: baud %d must not be negative", cfg.Serial.Baud)
	}
	if cfg.Serial.TimeoutMs < 0 {
		return fmt.Errorf("serial: timeout_ms %d must not be negative", cfg.Serial.TimeoutMs)
	}

	r := cfg.Transmit.RateHz
	if math.IsNaN(r) || r < 0 || r > MaxRateHz {
		return fmt.Errorf("transmit: rate_hz %v out of range (0, %v]", r, MaxRateHz)
	}

	// a real link needs a port; dry-run never opens one
	if !cfg.Transmit.DryRun && cfg.Serial.Port == "" {
		return errors.New("serial: port required unless transmit.dry_run is set")
	}

	// ------------------------------------------------------------
	// INPUT
	// ------------------------------------------------------------

	switch cfg.Input.Source {
	case "", InputStdin, InputNeutral:
	case InputScenario:
		if cfg.Input.Path == "" {
			return errors.New("input: scenario source requires path")
		}
	default:
		return fmt.Errorf("input: unknown source %q", cfg.Input.Source)
	}

	// ------------------------------------------------------------
	// BINDINGS
	// ------------------------------------------------------------

	if err := cfg.Bindings.WithDefaults().Validate(); err != nil {
		return err
	}

	// ------------------------------------------------------------
	// LINK STATUS MIRROR (OPT-IN)
	// ------------------------------------------------------------

	m := cfg.Mirror
	if m == nil {
		return nil
	}

	if m.Endpoint == "" {
		return errors.New("mirror: endpoint required")
	}
	if m.TimeoutMs < 0 {
		return fmt.Errorf("mirror: timeout_ms %d must not be negative", m.TimeoutMs)
	}

	// the whole block must be addressable
	last := uint32(m.BaseSlot)*status.SlotsPerBlock + status.SlotsPerBlock - 1
	if last > math.MaxUint16 {
		return fmt.Errorf("mirror: base_slot %d places the status block beyond register 65535", m.BaseSlot)
	}

	// device_name sanity (ASCII only)
	for i := 0; i < len(m.DeviceName); i++ {
		if m.DeviceName[i] > 0x7F {
			return errors.New("mirror: device_name must contain ASCII characters only")
		}
	}

	return nil
}
