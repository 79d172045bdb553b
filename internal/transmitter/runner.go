// internal/transmitter/runner.go
package transmitter

import (
	"context"
	"time"

	"github.com/tamzrod/tkg-transmitter/internal/report"
	"github.com/tamzrod/tkg-transmitter/internal/sampler"
)

// Run consumes samples until ctx is done, samples is closed or
// MaxFrames frames have been written.
// Cancellation is observed between ticks, so a started frame is
// always written in full. A write error stops the loop and is returned
// together with the stats so far.
func (t *Transmitter) Run(ctx context.Context, samples <-chan sampler.Sample) (Stats, error) {
	start := t.now()
	stats := func() Stats {
		el := t.now().Sub(start)
		return Stats{
			Frames:  t.frames,
			Elapsed: el,
			Rate:    report.AverageRate(t.frames, el),
		}
	}

	statusTicker := time.NewTicker(t.cfg.StatusInterval)
	defer statusTicker.Stop()

	// Full block write on start (identity re-assert) if enabled.
	t.pushStatus()

	for {
		if ctx.Err() != nil {
			return stats(), nil
		}

		select {
		case <-ctx.Done():
			return stats(), nil

		case <-statusTicker.C:
			t.statusTick()

		case s, ok := <-samples:
			if !ok {
				return stats(), nil
			}
			if _, _, err := t.Step(s.Snapshot); err != nil {
				return stats(), err
			}
			if t.cfg.MaxFrames > 0 && t.frames >= t.cfg.MaxFrames {
				return stats(), nil
			}
		}
	}
}
