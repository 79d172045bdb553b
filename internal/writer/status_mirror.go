// internal/writer/status_mirror.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/tkg-transmitter/internal/status"
)

// StatusMirror writes the link status block into holding registers.
// It keeps only what it last delivered, to know which slots changed.
type StatusMirror struct {
	plan MirrorPlan
	cli  endpointClient

	needFull bool
	last     []uint16
	nameRegs []uint16
}

// NewStatusMirror builds a mirror for one endpoint client.
func NewStatusMirror(plan MirrorPlan, cli endpointClient) *StatusMirror {
	return &StatusMirror{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		nameRegs: status.EncodeName(plan.DeviceName),
	}
}

// WriteStatus delivers a snapshot into status memory.
// On any write failure, the next call re-asserts the full block.
func (sm *StatusMirror) WriteStatus(s status.Snapshot) error {
	if sm == nil {
		return errors.New("status mirror: disabled")
	}
	if sm.cli == nil {
		return fmt.Errorf("status mirror: missing client for endpoint %s", sm.plan.Endpoint)
	}

	regs := sm.blockRegs(s)
	base := sm.baseAddr()

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sm.needFull {
		if err := sm.cli.WriteRegisters(sm.plan.UnitID, base, regs); err != nil {
			return fmt.Errorf("status mirror: full block write failed: %w", err)
		}
		sm.needFull = false
		sm.last = regs
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: one write per contiguous run of changed slots.
	// Name slots never change after the full write.
	// ------------------------------------------------------------
	var errs []string

	for start := 0; start < status.SlotDeviceNameStart; {
		if sm.last[start] == regs[start] {
			start++
			continue
		}
		end := start
		for end < status.SlotDeviceNameStart && sm.last[end] != regs[end] {
			end++
		}

		if err := sm.cli.WriteRegisters(sm.plan.UnitID, base+uint16(start), regs[start:end]); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d write failed: %v", start, end-1, err))
		} else {
			copy(sm.last[start:end], regs[start:end])
		}
		start = end
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next call.
		sm.needFull = true
		return errors.New("status mirror: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sm *StatusMirror) baseAddr() uint16 {
	// Each transmitter owns a fixed SlotsPerBlock block.
	return sm.plan.BaseSlot * status.SlotsPerBlock
}

func (sm *StatusMirror) blockRegs(s status.Snapshot) []uint16 {
	regs := status.Encode(s)
	copy(regs[status.SlotDeviceNameStart:status.SlotDeviceNameEnd+1], sm.nameRegs)
	return regs
}
