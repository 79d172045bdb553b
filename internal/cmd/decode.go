// internal/cmd/decode.go
package cmd

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tamzrod/tkg-transmitter/internal/tkg"
)

type Decode struct {
	Lines []string `arg:"" optional:"" help:"Wire lines such as a4,7f,81,3f,20,a0,38 (default: read stdin)"`
}

// Run is called by Kong when the decode command is executed.
// Every line is printed; malformed lines are logged and fail the command.
func (d *Decode) Run(logger zerolog.Logger, st *Streams) error {
	bad := 0

	decodeOne := func(line []byte) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			return
		}
		dec, err := tkg.CheckWire(line)
		if err != nil {
			bad++
			logger.Error().Err(err).Str("line", string(line)).Msg("malformed line")
			return
		}
		if !dec.CRCOK {
			logger.Warn().Str("line", string(line)).Msg("crc mismatch")
		}
		fmt.Fprintf(st.Out, "%s [%s]\n", dec.String(), dec.Hex())
	}

	if len(d.Lines) > 0 {
		for _, l := range d.Lines {
			decodeOne([]byte(l))
		}
	} else {
		sc := bufio.NewScanner(st.In)
		for sc.Scan() {
			decodeOne(sc.Bytes())
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("decode: read: %w", err)
		}
	}

	if bad > 0 {
		return fmt.Errorf("decode: %d malformed line(s)", bad)
	}
	return nil
}
