// internal/writer/serial/port.go
package serial

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goburrow/serial"
)

// Config for one serial link. Framing is fixed at 8N1, no flow control.
type Config struct {
	Address  string
	BaudRate int
	Timeout  time.Duration
}

const (
	DefaultBaudRate = 115200
	defaultTimeout  = 500 * time.Millisecond
)

// Port is an open serial link. Writes are serialized.
type Port struct {
	mu   sync.Mutex
	addr string
	rwc  io.ReadWriteCloser
}

// opener is swapped in tests.
var opener = func(c *serial.Config) (io.ReadWriteCloser, error) {
	return serial.Open(c)
}

func Open(cfg Config) (*Port, error) {
	if cfg.Address == "" {
		return nil, errors.New("writer serial: port required")
	}
	if cfg.BaudRate <= 0 {
		cfg.BaudRate = DefaultBaudRate
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	rwc, err := opener(&serial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("writer serial: open %s: %w", cfg.Address, err)
	}

	return &Port{addr: cfg.Address, rwc: rwc}, nil
}

// Write sends b in full. An incomplete write is io.ErrShortWrite.
func (p *Port) Write(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, err := p.rwc.Write(b)
	if err != nil {
		return fmt.Errorf("writer serial: write %s: %w", p.addr, err)
	}
	if n != len(b) {
		return fmt.Errorf("writer serial: write %s: %w (%d of %d bytes)", p.addr, io.ErrShortWrite, n, len(b))
	}
	return nil
}

// ReadLines calls fn for every CR/LF or LF terminated line read from
// the port until ctx is done or the port reports EOF. Line endings are
// stripped; line is only valid for the duration of the call. Read
// timeouts are not errors: a partial line is kept and reading resumes.
func (p *Port) ReadLines(ctx context.Context, fn func(line []byte)) error {
	r := bufio.NewReader(p.rwc)
	var buf []byte

	for ctx.Err() == nil {
		chunk, err := r.ReadBytes('\n')
		buf = append(buf, chunk...)

		switch {
		case err == nil:
			fn(bytes.TrimRight(buf, "\r\n"))
			buf = buf[:0]
		case errors.Is(err, serial.ErrTimeout):
		case errors.Is(err, io.EOF):
			if rest := bytes.TrimRight(buf, "\r\n"); len(rest) > 0 {
				fn(rest)
			}
			return nil
		default:
			return fmt.Errorf("writer serial: read %s: %w", p.addr, err)
		}
	}
	return nil
}

func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rwc.Close()
}
