// internal/logging/logger.go
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

const (
	AppName  = "tkgtx"
	LevelEnv = "TKGTX_LOG_LEVEL"
)

// Options controls logger construction. Zero value logs info to stderr.
type Options struct {
	Level   string
	NoColor bool
	Out     io.Writer
}

// ParseLevel accepts zerolog level names; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
	return lvl, nil
}

// Init builds the process logger and installs it as the global zerolog logger.
// The level comes from opts.Level, then TKGTX_LOG_LEVEL, then info.
func Init(opts Options) (zerolog.Logger, error) {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LevelEnv)
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor || !isTerminal(out),
	}
	logger := zerolog.New(output).Level(lvl).With().Timestamp().Str("app", AppName).Logger()
	log.Logger = logger
	return logger, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
