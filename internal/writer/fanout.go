// internal/writer/fanout.go
package writer

import (
	"errors"

	"github.com/tamzrod/tkg-transmitter/internal/tkg"
)

// Fanout delivers every frame to each writer in order.
// All writers are attempted; failures are joined with errors.Join so
// callers can still match the underlying causes.
type Fanout []FrameWriter

func (fw Fanout) WriteFrame(f tkg.Frame, wire []byte) error {
	var errs []error

	for _, w := range fw {
		if w == nil {
			continue
		}
		if err := w.WriteFrame(f, wire); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
