// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	"github.com/tamzrod/tkg-transmitter/internal/config"
	"github.com/tamzrod/tkg-transmitter/internal/tkg"
	wmodbus "github.com/tamzrod/tkg-transmitter/internal/writer/modbus"
	wserial "github.com/tamzrod/tkg-transmitter/internal/writer/serial"
)

// BuildMirrorPlan converts the mirror config into a MirrorPlan.
// Assumes config has already passed validation.
func BuildMirrorPlan(m *config.MirrorConfig) (MirrorPlan, error) {
	if m == nil {
		return MirrorPlan{}, errors.New("writer: mirror config required")
	}
	if m.Endpoint == "" {
		return MirrorPlan{}, errors.New("writer: mirror.endpoint required")
	}

	return MirrorPlan{
		Endpoint:   m.Endpoint,
		UnitID:     m.UnitID,
		BaseSlot:   m.BaseSlot,
		DeviceName: m.DeviceName,
	}, nil
}

// BuildStatusMirror connects to the mirror endpoint.
// The returned closer releases the TCP connection.
func BuildStatusMirror(m *config.MirrorConfig) (*StatusMirror, func() error, error) {
	plan, err := BuildMirrorPlan(m)
	if err != nil {
		return nil, nil, err
	}

	cli, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: plan.Endpoint,
		Timeout:  time.Duration(m.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	return NewStatusMirror(plan, cli), cli.Close, nil
}

// serialFrameWriter adapts a serial port to FrameWriter; only wire bytes go out.
type serialFrameWriter struct {
	port *wserial.Port
}

func (w serialFrameWriter) WriteFrame(_ tkg.Frame, wire []byte) error {
	return w.port.Write(wire)
}

// BuildSerialWriter opens the configured serial port.
func BuildSerialWriter(s config.SerialConfig) (FrameWriter, func() error, error) {
	p, err := wserial.Open(wserial.Config{
		Address:  s.Port,
		BaudRate: s.Baud,
		Timeout:  time.Duration(s.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	return serialFrameWriter{port: p}, p.Close, nil
}
