// internal/writer/console.go
package writer

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/tkg-transmitter/internal/report"
	"github.com/tamzrod/tkg-transmitter/internal/tkg"
)

// Console is the dry-run writer. Each frame is decoded back from its
// wire form and printed as one diagnostic line.
type Console struct {
	out   io.Writer
	log   zerolog.Logger
	meter report.Meter
	now   func() time.Time
}

func NewConsole(out io.Writer, log zerolog.Logger) *Console {
	return &Console{
		out: out,
		log: log,
		now: time.Now,
	}
}

func (c *Console) WriteFrame(f tkg.Frame, wire []byte) error {
	d, err := tkg.CheckWire(wire)
	if err != nil {
		return fmt.Errorf("writer console: self-check: %w", err)
	}
	if d.Frame != f {
		return fmt.Errorf("writer console: self-check: wire %q does not round-trip", bytes.TrimSpace(wire))
	}
	if !d.CRCOK {
		c.log.Warn().
			Str("got", fmt.Sprintf("%02x", d.CRC)).
			Str("expected", fmt.Sprintf("%02x", d.ExpectedCRC)).
			Msg("crc mismatch")
	}

	seq, elapsed, rate := c.meter.Mark(c.now())

	if _, err := fmt.Fprintln(c.out, report.Line(seq, elapsed, rate, d)); err != nil {
		return fmt.Errorf("writer console: %w", err)
	}
	return nil
}
