// internal/report/report.go
package report

import (
	"fmt"
	"time"

	"github.com/tamzrod/tkg-transmitter/internal/tkg"
)

// Line renders one diagnostic line for a transmitted or received frame.
//
//	#12 t=0.240s rate=50.0Hz estop=N ts=4 ... crc=OK [a4 7f 81 3f 20 a0 38]
func Line(seq uint64, elapsed time.Duration, rate float64, d tkg.Decoded) string {
	return fmt.Sprintf("#%d t=%.3fs rate=%.1fHz %s [%s]",
		seq, elapsed.Seconds(), rate, d.String(), d.Hex())
}

// Summary renders the end-of-run line.
func Summary(frames uint64, elapsed time.Duration) string {
	return fmt.Sprintf("frames=%d elapsed=%.2fs avg=%.1fHz",
		frames, elapsed.Seconds(), AverageRate(frames, elapsed))
}

// AverageRate is frames per second over elapsed; zero when nothing elapsed.
func AverageRate(frames uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(frames) / elapsed.Seconds()
}

// Meter tracks elapsed time and the instantaneous rate between marks.
// Not safe for concurrent use; owned by the tick loop.
type Meter struct {
	start time.Time
	last  time.Time
	seq   uint64
}

// Mark records one event at now and returns its sequence number,
// time since the first mark and the rate derived from the previous gap.
func (m *Meter) Mark(now time.Time) (seq uint64, elapsed time.Duration, rate float64) {
	if m.seq == 0 {
		m.start = now
		m.last = now
	}

	gap := now.Sub(m.last)
	if gap > 0 {
		rate = 1 / gap.Seconds()
	}

	m.seq++
	m.last = now

	return m.seq, now.Sub(m.start), rate
}

// Count is the number of marks so far.
func (m *Meter) Count() uint64 { return m.seq }
