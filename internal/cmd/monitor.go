// internal/cmd/monitor.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/tkg-transmitter/internal/report"
	"github.com/tamzrod/tkg-transmitter/internal/tkg"
	wserial "github.com/tamzrod/tkg-transmitter/internal/writer/serial"
)

type Monitor struct {
	Port string        `help:"Serial port to listen on" required:"" env:"TKGTX_PORT"`
	Baud int           `help:"Serial baud rate" default:"115200"`
	Poll time.Duration `help:"Read timeout between cancellation checks" default:"200ms"`
}

// lineSource is what the monitor reads from; the serial port in production.
type lineSource interface {
	ReadLines(ctx context.Context, fn func(line []byte)) error
}

// Run is called by Kong when the monitor command is executed.
func (m *Monitor) Run(logger zerolog.Logger, st *Streams) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := wserial.Open(wserial.Config{
		Address:  m.Port,
		BaudRate: m.Baud,
		Timeout:  m.Poll,
	})
	if err != nil {
		return err
	}
	defer p.Close()

	logger.Info().Str("port", m.Port).Int("baud", m.Baud).Msg("monitoring")
	return monitor(ctx, p, logger, st, time.Now)
}

func monitor(ctx context.Context, src lineSource, logger zerolog.Logger, st *Streams, now func() time.Time) error {
	var meter report.Meter
	var malformed, crcErrors uint64

	err := src.ReadLines(ctx, func(line []byte) {
		if len(line) == 0 {
			return
		}
		d, err := tkg.CheckWire(line)
		if err != nil {
			malformed++
			logger.Warn().Err(err).Str("line", string(line)).Msg("malformed line")
			return
		}
		if !d.CRCOK {
			crcErrors++
		}
		seq, elapsed, rate := meter.Mark(now())
		fmt.Fprintln(st.Out, report.Line(seq, elapsed, rate, d))
	})

	logger.Info().
		Uint64("frames", meter.Count()).
		Uint64("malformed", malformed).
		Uint64("crc_errors", crcErrors).
		Msg("monitor stopped")

	return err
}
