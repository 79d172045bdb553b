// internal/writer/types.go
package writer

import (
	"github.com/tamzrod/tkg-transmitter/internal/status"
	"github.com/tamzrod/tkg-transmitter/internal/tkg"
)

// FrameWriter delivers one encoded frame per tick.
// wire is always tkg.Encode(f); implementations pick whichever form they need.
type FrameWriter interface {
	WriteFrame(f tkg.Frame, wire []byte) error
}

// StatusWriter is the delivery-only contract for link status.
// It receives a snapshot and writes it verbatim.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// MirrorPlan is where the link status block lives on the Modbus endpoint.
type MirrorPlan struct {
	Endpoint   string
	UnitID     uint8
	BaseSlot   uint16
	DeviceName string
}

// endpointClient is the exact contract the status mirror uses.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}
