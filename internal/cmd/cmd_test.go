// internal/cmd/cmd_test.go
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/tkg-transmitter/internal/config"
)

func streams(in string) (*Streams, *bytes.Buffer) {
	var out bytes.Buffer
	return &Streams{In: strings.NewReader(in), Out: &out}, &out
}

// ---- CLI wiring ----

func TestCLI_Parses(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("tkgtx"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--log-level=debug", "run", "--dry-run", "--rate=20", "--input=neutral", "--frames=5"})
	require.NoError(t, err)
	assert.Equal(t, "run", ctx.Command())
	assert.Equal(t, "debug", cli.Log.Level)
	assert.True(t, cli.Run.DryRun)
	assert.Equal(t, 20.0, cli.Run.Rate)
	assert.Equal(t, uint64(5), cli.Run.Frames)

	ctx, err = parser.Parse([]string{"decode", "a4,00,00,00,00,80,8b", "24,00,00,00,00,80,a9"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ctx.Command(), "decode"), ctx.Command())
	assert.Len(t, cli.Decode.Lines, 2)
}

// ---- decode ----

func TestDecode_Args(t *testing.T) {
	st, out := streams("")
	d := &Decode{Lines: []string{"a4,7f,81,3f,20,a0,38"}}

	require.NoError(t, d.Run(zerolog.Nop(), st))
	assert.Equal(t,
		"estop=N ts=1 dtype=1 vel=(+127,-127, +63) whl=0 fire=2 tai=0 hand=0 ang=0 spd=slow mg=1 crc=OK [a4 7f 81 3f 20 a0 38]\n",
		out.String(),
	)
}

func TestDecode_StdinWithBadLines(t *testing.T) {
	st, out := streams("a4,00,00,00,00,80,8b\r\n\r\nnot,a,frame\n24,00,00,00,00,80,00\n")
	d := &Decode{}

	err := d.Run(zerolog.Nop(), st)
	require.EqualError(t, err, "decode: 1 malformed line(s)")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "crc=OK")
	assert.Contains(t, lines[1], "crc=NG(expected a9)")
}

// ---- monitor ----

type fakeLines []string

func (f fakeLines) ReadLines(_ context.Context, fn func([]byte)) error {
	for _, l := range f {
		fn([]byte(l))
	}
	return nil
}

func TestMonitor_PrintsFrames(t *testing.T) {
	st, out := streams("")

	t0 := time.Unix(0, 0)
	n := 0
	now := func() time.Time {
		n++
		return t0.Add(time.Duration(n-1) * 20 * time.Millisecond)
	}

	err := monitor(context.Background(), fakeLines{"24,00,00,00,00,80,a9", "", "garbage", "a4,00,00,00,00,80,8b"}, zerolog.Nop(), st, now)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "#1 t=0.000s rate=0.0Hz estop=Y ts=1"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "#2 t=0.020s rate=50.0Hz estop=N ts=1"), lines[1])
}

// ---- run ----

func TestRun_DryRunNeutral(t *testing.T) {
	st, out := streams("")
	r := &Run{DryRun: true, Input: "neutral", Rate: 500, Frames: 3}

	require.NoError(t, r.run(context.Background(), zerolog.Nop(), st))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "#1 "), lines[0])
	assert.Contains(t, lines[0], "estop=Y ts=1")
	assert.Contains(t, lines[0], "[24 00 00 00 00 80 a9]")
	assert.Contains(t, lines[2], "ts=3")
	assert.True(t, strings.HasPrefix(lines[3], "frames=3 elapsed="), lines[3])
}

func TestRun_ScenarioReleasesEstop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drive.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps:
  - ticks: 1
  - ticks: 1
    buttons: {start: 1}
  - ticks: 1
    analog: {left_y: 0}
`), 0o644))

	st, out := streams("")
	r := &Run{DryRun: true, Input: path, Rate: 500, Frames: 3}

	require.NoError(t, r.run(context.Background(), zerolog.Nop(), st))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "estop=Y")
	assert.Contains(t, lines[1], "estop=N")
	assert.Contains(t, lines[2], "vel=(+127")
}

func TestRun_ConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tkgtx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
serial:
  port: /dev/does-not-exist
transmit:
  rate_hz: 500
  dry_run: true
input:
  source: neutral
`), 0o644))

	st, out := streams("")
	r := &Run{Config: path, Frames: 1}

	require.NoError(t, r.run(context.Background(), zerolog.Nop(), st))
	assert.Contains(t, out.String(), "frames=1 ")
}

func TestRun_RequiresPortWithoutDryRun(t *testing.T) {
	st, _ := streams("")
	r := &Run{Input: "neutral"}

	err := r.run(context.Background(), zerolog.Nop(), st)
	require.ErrorContains(t, err, "port required")
}

func TestRun_CancelledContextStillSummarizes(t *testing.T) {
	st, out := streams("")
	r := &Run{DryRun: true, Input: "neutral"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, r.run(ctx, zerolog.Nop(), st))
	assert.True(t, strings.HasPrefix(out.String(), "frames=0 "), out.String())
}

func TestApplyFlags(t *testing.T) {
	cfg := &config.Config{}
	(&Run{Port: "COM3", Baud: 9600, Rate: 25, ZeroVelocityOnEstop: true, Input: "demo.yaml"}).applyFlags(cfg)

	assert.Equal(t, "COM3", cfg.Serial.Port)
	assert.Equal(t, 9600, cfg.Serial.Baud)
	assert.Equal(t, 25.0, cfg.Transmit.RateHz)
	assert.True(t, cfg.Transmit.ZeroVelocityOnEstop)
	assert.Equal(t, config.InputConfig{Source: config.InputScenario, Path: "demo.yaml"}, cfg.Input)

	(&Run{Input: "-"}).applyFlags(cfg)
	assert.Equal(t, config.InputStdin, cfg.Input.Source)
}
