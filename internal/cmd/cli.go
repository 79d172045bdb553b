// internal/cmd/cli.go
package cmd

import (
	"io"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" env:"TKGTX_LOG_LEVEL"`
	NoColor bool   `help:"Disable colored log output" env:"TKGTX_LOG_NO_COLOR"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log-"`

	Run     Run     `cmd:"" help:"Transmit TKG frames from controller input"`
	Decode  Decode  `cmd:"" help:"Decode wire lines from arguments or stdin"`
	Monitor Monitor `cmd:"" help:"Print decoded frames received on a serial port"`
	Ports   Ports   `cmd:"" help:"List serial ports"`
}

// Streams are the process's standard streams, bound so commands can be tested.
type Streams struct {
	In  io.Reader
	Out io.Writer
}
