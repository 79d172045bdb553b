// internal/cmd/run.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/tamzrod/tkg-transmitter/internal/config"
	"github.com/tamzrod/tkg-transmitter/internal/input"
	"github.com/tamzrod/tkg-transmitter/internal/report"
	"github.com/tamzrod/tkg-transmitter/internal/sampler"
	"github.com/tamzrod/tkg-transmitter/internal/transmitter"
	"github.com/tamzrod/tkg-transmitter/internal/writer"
)

type Run struct {
	Config              string  `help:"YAML config file" type:"existingfile" env:"TKGTX_CONFIG"`
	Port                string  `help:"Serial port (e.g. /dev/ttyUSB0, COM3)" env:"TKGTX_PORT"`
	Baud                int     `help:"Serial baud rate (default 115200)"`
	Rate                float64 `help:"Transmit rate in Hz (default 50)"`
	DryRun              bool    `help:"Print decoded frames instead of opening the port"`
	Echo                bool    `help:"Also print decoded frames while transmitting"`
	Input               string  `help:"Input: stdin (JSON lines), neutral, or a scenario .yaml file"`
	ZeroVelocityOnEstop bool    `help:"Send zero velocity while ESTOP is active"`
	Frames              uint64  `help:"Stop after this many frames (0 = until interrupted)"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger zerolog.Logger, st *Streams) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return r.run(ctx, logger, st)
}

func (r *Run) run(ctx context.Context, logger zerolog.Logger, st *Streams) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg := &config.Config{}
	if r.Config != "" {
		loaded, err := config.Load(r.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	r.applyFlags(cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// ---- input ----
	src, err := buildSource(ctx, cfg.Input, st, logger)
	if err != nil {
		return err
	}

	// ---- frame writer ----
	var out writer.FrameWriter
	if cfg.Transmit.DryRun {
		out = writer.NewConsole(st.Out, logger)
	} else {
		sw, closePort, err := writer.BuildSerialWriter(cfg.Serial)
		if err != nil {
			return err
		}
		defer closePort()
		logger.Info().Str("port", cfg.Serial.Port).Int("baud", cfg.Serial.Baud).Msg("serial port opened")

		out = sw
		if r.Echo {
			out = writer.Fanout{sw, writer.NewConsole(st.Out, logger)}
		}
	}

	// ---- status mirror (optional) ----
	var mirror writer.StatusWriter
	if cfg.Mirror != nil {
		sm, closeMirror, err := writer.BuildStatusMirror(cfg.Mirror)
		if err != nil {
			// mirror is advisory; transmit without it
			logger.Warn().Err(err).Str("endpoint", cfg.Mirror.Endpoint).Msg("status mirror disabled")
		} else {
			defer closeMirror()
			mirror = sm
		}
	}

	// ---- transmitter ----
	tx, err := transmitter.New(transmitter.Config{
		ZeroVelocityOnEstop: cfg.Transmit.ZeroVelocityOnEstop,
		Bindings:            cfg.Bindings,
		MaxFrames:           r.Frames,
	}, out, mirror, logger)
	if err != nil {
		return err
	}

	// ---- sampler ----
	interval, err := sampler.IntervalFromRate(cfg.Transmit.RateHz)
	if err != nil {
		return err
	}
	smp, err := sampler.New(sampler.Config{Interval: interval}, src)
	if err != nil {
		return err
	}

	samples := make(chan sampler.Sample)
	go smp.Run(ctx, samples)

	logger.Info().
		Float64("rate_hz", cfg.Transmit.RateHz).
		Bool("dry_run", cfg.Transmit.DryRun).
		Str("input", cfg.Input.Source).
		Msg("transmitting")

	stats, runErr := tx.Run(ctx, samples)
	cancel()

	fmt.Fprintln(st.Out, report.Summary(stats.Frames, stats.Elapsed))
	logger.Info().
		Uint64("frames", stats.Frames).
		Dur("elapsed", stats.Elapsed).
		Float64("avg_hz", stats.Rate).
		Msg("stopped")

	return runErr
}

// applyFlags lets command line flags override file values.
func (r *Run) applyFlags(cfg *config.Config) {
	if r.Port != "" {
		cfg.Serial.Port = r.Port
	}
	if r.Baud != 0 {
		cfg.Serial.Baud = r.Baud
	}
	if r.Rate != 0 {
		cfg.Transmit.RateHz = r.Rate
	}
	if r.DryRun {
		cfg.Transmit.DryRun = true
	}
	if r.ZeroVelocityOnEstop {
		cfg.Transmit.ZeroVelocityOnEstop = true
	}

	switch in := strings.TrimSpace(r.Input); {
	case in == "":
	case in == config.InputStdin || in == "-":
		cfg.Input = config.InputConfig{Source: config.InputStdin}
	case in == config.InputNeutral:
		cfg.Input = config.InputConfig{Source: config.InputNeutral}
	default:
		cfg.Input = config.InputConfig{Source: config.InputScenario, Path: in}
	}
}

func buildSource(ctx context.Context, in config.InputConfig, st *Streams, logger zerolog.Logger) (input.Source, error) {
	switch in.Source {
	case config.InputNeutral:
		return input.NeutralSource(), nil

	case config.InputScenario:
		sc, err := input.LoadScenario(in.Path)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", in.Path).Int("steps", sc.Len()).Msg("scenario loaded")
		return sc, nil

	default:
		jl := input.NewJSONLines(st.In, logger)
		go func() {
			if err := jl.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("input reader stopped")
			}
		}()
		return jl, nil
	}
}
