// cmd/tkgtx/main.go
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tamzrod/tkg-transmitter/internal/cmd"
	"github.com/tamzrod/tkg-transmitter/internal/logging"
)

func main() {
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name(logging.AppName),
		kong.Description("TKG command-frame transmitter for the serial radio link."),
		kong.UsageOnError(),
	)

	logger, err := logging.Init(logging.Options{
		Level:   cli.Log.Level,
		NoColor: cli.Log.NoColor,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}

	ctx.Bind(logger)
	ctx.Bind(&cmd.Streams{In: os.Stdin, Out: os.Stdout})

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
