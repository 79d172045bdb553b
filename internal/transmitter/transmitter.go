// internal/transmitter/transmitter.go
package transmitter

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/tkg-transmitter/internal/input"
	"github.com/tamzrod/tkg-transmitter/internal/state"
	"github.com/tamzrod/tkg-transmitter/internal/status"
	"github.com/tamzrod/tkg-transmitter/internal/tkg"
	"github.com/tamzrod/tkg-transmitter/internal/writer"
)

// Config is the minimal runtime config the tick loop needs.
type Config struct {
	ZeroVelocityOnEstop bool
	Bindings            state.Bindings

	// StatusInterval paces the seconds-in-error counter and periodic
	// mirror refresh. Zero means one second.
	StatusInterval time.Duration

	// MaxFrames ends Run after that many frames. Zero means no limit.
	MaxFrames uint64
}

// Stats is what a finished run reports.
type Stats struct {
	Frames  uint64
	Elapsed time.Duration
	Rate    float64
}

// Transmitter owns the protocol state. It is driven by exactly one
// goroutine; nothing else reads or mutates the state.
type Transmitter struct {
	cfg     Config
	builder tkg.Builder
	out     writer.FrameWriter
	mirror  writer.StatusWriter
	log     zerolog.Logger

	st     state.State
	link   status.Snapshot
	frames uint64
	now    func() time.Time
}

// New builds a transmitter. mirror may be nil.
func New(cfg Config, out writer.FrameWriter, mirror writer.StatusWriter, log zerolog.Logger) (*Transmitter, error) {
	if out == nil {
		return nil, errors.New("transmitter: frame writer required")
	}
	if cfg.StatusInterval <= 0 {
		cfg.StatusInterval = time.Second
	}
	cfg.Bindings = cfg.Bindings.WithDefaults()
	if err := cfg.Bindings.Validate(); err != nil {
		return nil, fmt.Errorf("transmitter: %w", err)
	}

	return &Transmitter{
		cfg:     cfg,
		builder: tkg.Builder{ZeroVelocityOnEstop: cfg.ZeroVelocityOnEstop},
		out:     out,
		mirror:  mirror,
		log:     log,
		st:      state.Initial(),
		link:    status.Snapshot{Health: status.HealthUnknown},
		now:     time.Now,
	}, nil
}

// State returns the current protocol state.
func (t *Transmitter) State() state.State { return t.st }

// Frames is the number of frames written so far.
func (t *Transmitter) Frames() uint64 { return t.frames }

// Step performs one tick: advance, build, encode, write.
// The state advances even if the write fails; a failed write is
// returned and ends the run.
func (t *Transmitter) Step(snap input.Snapshot) (tkg.Frame, []byte, error) {
	prevEstop := t.st.Estop

	t.st = state.Advance(t.st, snap, t.cfg.Bindings)

	vx, vy, vyaw := input.Velocity(snap)
	f := t.builder.Build(t.st, vx, vy, vyaw)
	wire := tkg.Encode(f)

	if t.st.Estop != prevEstop {
		t.log.Info().Bool("estop", t.st.Estop).Uint8("ts", t.st.Timestamp).Msg("estop changed")
	}

	if err := t.out.WriteFrame(f, wire); err != nil {
		t.linkError(err)
		return f, wire, fmt.Errorf("transmitter: frame %d: %w", t.frames+1, err)
	}

	t.frames++
	t.linkOK(f)

	return f, wire, nil
}

// ---- link status ----

func (t *Transmitter) linkOK(f tkg.Frame) {
	health := status.HealthOK
	if t.st.Estop {
		health = status.HealthEstop
	}

	changed := t.link.Health != health

	t.link.Health = health
	t.link.LastErrorCode = 0
	t.link.SecondsInError = 0
	t.link.FramesSent = uint32(t.frames)
	t.link.LastFrame = f
	t.link.Timestamp = t.st.Timestamp

	// health edges go out at once; counters ride the status tick
	if changed {
		t.pushStatus()
	}
}

func (t *Transmitter) linkError(err error) {
	t.link.Health = status.HealthError
	t.link.LastErrorCode = errorCode(err)
	t.pushStatus()
}

// statusTick runs at StatusInterval.
func (t *Transmitter) statusTick() {
	if t.link.Health == status.HealthError && t.link.SecondsInError < status.SecondsInErrorMax {
		t.link.SecondsInError++
	}
	t.pushStatus()
}

func (t *Transmitter) pushStatus() {
	if t.mirror == nil {
		return
	}
	if err := t.mirror.WriteStatus(t.link); err != nil {
		// mirror is advisory; the radio link keeps running
		t.log.Warn().Err(err).Msg("status mirror write failed")
	}
}
