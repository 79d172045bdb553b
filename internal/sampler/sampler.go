// internal/sampler/sampler.go
package sampler

import (
	"errors"
	"time"

	"github.com/tamzrod/tkg-transmitter/internal/input"
)

// Config is the minimal runtime config the sampler needs.
type Config struct {
	Interval time.Duration
}

// Sampler is a dumb, clock-driven reader of the input source.
// It has no protocol knowledge.
type Sampler struct {
	cfg Config
	src input.Source
	seq uint64
	now func() time.Time
}

// New creates a sampler with immutable config.
func New(cfg Config, src input.Source) (*Sampler, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("sampler: interval must be > 0")
	}
	if src == nil {
		return nil, errors.New("sampler: input source required")
	}
	return &Sampler{cfg: cfg, src: src, now: time.Now}, nil
}

// IntervalFromRate converts a rate in Hz to a tick interval.
func IntervalFromRate(hz float64) (time.Duration, error) {
	if hz <= 0 {
		return 0, errors.New("sampler: rate must be > 0")
	}
	return time.Duration(float64(time.Second) / hz), nil
}

// SampleOnce captures exactly one sample.
func (s *Sampler) SampleOnce() Sample {
	s.seq++
	return Sample{
		Seq:      s.seq,
		At:       s.now(),
		Snapshot: s.src.Latest(),
	}
}
