// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = DefaultBaud
	}
	if cfg.Serial.TimeoutMs == 0 {
		cfg.Serial.TimeoutMs = DefaultSerialTimeoutMs
	}
	if cfg.Transmit.RateHz == 0 {
		cfg.Transmit.RateHz = DefaultRateHz
	}
	if cfg.Input.Source == "" {
		cfg.Input.Source = InputStdin
	}

	cfg.Bindings = cfg.Bindings.WithDefaults()

	// Skip the mirror if not opted in
	if cfg.Mirror == nil {
		return
	}

	if cfg.Mirror.TimeoutMs == 0 {
		cfg.Mirror.TimeoutMs = DefaultMirrorTimeoutMs
	}

	// ASCII already validated; truncate to max 16 characters
	if len(cfg.Mirror.DeviceName) > DeviceNameMaxChars {
		cfg.Mirror.DeviceName = cfg.Mirror.DeviceName[:DeviceNameMaxChars]
	}
}
