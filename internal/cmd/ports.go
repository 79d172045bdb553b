// internal/cmd/ports.go
package cmd

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tamzrod/tkg-transmitter/internal/ports"
)

type Ports struct {
	USB    bool   `help:"Only list USB serial adapters"`
	VIDPID string `name:"vidpid" help:"Only list adapters with this VID:PID (e.g. 0403:6001)"`
}

// Run is called by Kong when the ports command is executed.
func (c *Ports) Run(logger zerolog.Logger, st *Streams) error {
	list, err := ports.List()
	if err != nil {
		return err
	}

	shown := 0
	for _, p := range list {
		if (c.USB || c.VIDPID != "") && !p.USB {
			continue
		}
		if c.VIDPID != "" && !p.Matches(c.VIDPID) {
			continue
		}
		fmt.Fprintln(st.Out, p.String())
		shown++
	}

	logger.Debug().Int("found", len(list)).Int("shown", shown).Msg("ports listed")
	return nil
}
