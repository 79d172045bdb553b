// internal/transmitter/errors.go
package transmitter

import (
	"errors"
	"io"
	"os"
)

// Link error codes published in the status block.
const (
	ErrCodeNone       uint16 = 0
	ErrCodeGeneric    uint16 = 1
	ErrCodeShortWrite uint16 = 2
	ErrCodeTimeout    uint16 = 3
	ErrCodeClosed     uint16 = 4
)

// errorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// If the error does not expose a code, returns ErrCodeGeneric.
func errorCode(err error) uint16 {
	if err == nil {
		return ErrCodeNone
	}

	type coder interface{ Code() uint16 }
	type timeout interface{ Timeout() bool }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	switch {
	case errors.Is(err, io.ErrShortWrite):
		return ErrCodeShortWrite
	case errors.Is(err, os.ErrDeadlineExceeded):
		return ErrCodeTimeout
	case errors.Is(err, os.ErrClosed), errors.Is(err, io.ErrClosedPipe):
		return ErrCodeClosed
	}

	var to timeout
	if errors.As(err, &to) && to.Timeout() {
		return ErrCodeTimeout
	}

	return ErrCodeGeneric
}
