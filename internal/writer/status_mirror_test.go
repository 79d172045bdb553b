// internal/writer/status_mirror_test.go
package writer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/tkg-transmitter/internal/status"
)

// ---- fake endpoint client ----

type writeCall struct {
	unitID uint8
	addr   uint16
	regs   []uint16
}

type fakeEndpointClient struct {
	writes []writeCall
	fail   error
}

func (f *fakeEndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if f.fail != nil {
		return f.fail
	}
	f.writes = append(f.writes, writeCall{
		unitID: unitID,
		addr:   addr,
		regs:   append([]uint16(nil), regs...),
	})
	return nil
}

func (f *fakeEndpointClient) last() writeCall {
	return f.writes[len(f.writes)-1]
}

// ---- tests ----

func testPlan() MirrorPlan {
	return MirrorPlan{
		Endpoint:   "status-endpoint",
		UnitID:     1,
		BaseSlot:   2,
		DeviceName: "TKG-01",
	}
}

func TestStatusMirror_FullBlockFirst(t *testing.T) {
	cli := &fakeEndpointClient{}
	sm := NewStatusMirror(testPlan(), cli)

	require.NoError(t, sm.WriteStatus(status.Snapshot{Health: status.HealthEstop, FramesSent: 1}))

	require.Len(t, cli.writes, 1)
	w := cli.last()
	assert.Equal(t, uint8(1), w.unitID)
	assert.Equal(t, uint16(2*status.SlotsPerBlock), w.addr)
	require.Len(t, w.regs, status.SlotsPerBlock)
	assert.Equal(t, status.HealthEstop, w.regs[status.SlotHealthCode])
	assert.Equal(t,
		status.EncodeName("TKG-01"),
		w.regs[status.SlotDeviceNameStart:status.SlotDeviceNameEnd+1],
	)
}

func TestStatusMirror_IncrementalRuns(t *testing.T) {
	cli := &fakeEndpointClient{}
	sm := NewStatusMirror(testPlan(), cli)
	base := uint16(2 * status.SlotsPerBlock)

	first := status.Snapshot{Health: status.HealthOK, FramesSent: 10, Timestamp: 2}
	require.NoError(t, sm.WriteStatus(first))

	// unchanged snapshot writes nothing
	require.NoError(t, sm.WriteStatus(first))
	assert.Len(t, cli.writes, 1)

	second := first
	second.FramesSent = 11
	second.Timestamp = 3
	require.NoError(t, sm.WriteStatus(second))

	require.Len(t, cli.writes, 3)
	assert.Equal(t, writeCall{unitID: 1, addr: base + status.SlotFramesLo, regs: []uint16{11}}, cli.writes[1])
	assert.Equal(t, writeCall{unitID: 1, addr: base + status.SlotTimestamp, regs: []uint16{3}}, cli.writes[2])

	for _, w := range cli.writes[1:] {
		assert.Less(t, int(w.addr-base), status.SlotDeviceNameStart, "name must not be rewritten")
	}
}

func TestStatusMirror_ContiguousChangesShareOneWrite(t *testing.T) {
	cli := &fakeEndpointClient{}
	sm := NewStatusMirror(testPlan(), cli)
	base := uint16(2 * status.SlotsPerBlock)

	require.NoError(t, sm.WriteStatus(status.Snapshot{Health: status.HealthOK}))
	require.NoError(t, sm.WriteStatus(status.Snapshot{Health: status.HealthError, LastErrorCode: 1, SecondsInError: 1}))

	require.Len(t, cli.writes, 2)
	assert.Equal(t, base, cli.last().addr)
	assert.Equal(t, []uint16{status.HealthError, 1, 1}, cli.last().regs)
}

func TestStatusMirror_FailureForcesFullReassert(t *testing.T) {
	cli := &fakeEndpointClient{}
	sm := NewStatusMirror(testPlan(), cli)

	require.NoError(t, sm.WriteStatus(status.Snapshot{Health: status.HealthOK}))

	cli.fail = errors.New("timeout")
	require.Error(t, sm.WriteStatus(status.Snapshot{Health: status.HealthEstop}))

	cli.fail = nil
	require.NoError(t, sm.WriteStatus(status.Snapshot{Health: status.HealthEstop}))
	assert.Len(t, cli.last().regs, status.SlotsPerBlock)
}

func TestStatusMirror_SecondsInErrorResetOnRecovery(t *testing.T) {
	cli := &fakeEndpointClient{}
	sm := NewStatusMirror(testPlan(), cli)
	base := uint16(2 * status.SlotsPerBlock)

	require.NoError(t, sm.WriteStatus(status.Snapshot{Health: status.HealthError, LastErrorCode: 0, SecondsInError: 3}))
	require.NoError(t, sm.WriteStatus(status.Snapshot{Health: status.HealthError, LastErrorCode: 0, SecondsInError: 0}))

	assert.Equal(t, base+status.SlotSecondsInError, cli.last().addr)
	assert.Equal(t, []uint16{0}, cli.last().regs)
}

func TestStatusMirror_MissingClient(t *testing.T) {
	sm := NewStatusMirror(testPlan(), nil)
	require.Error(t, sm.WriteStatus(status.Snapshot{}))

	var nilMirror *StatusMirror
	require.Error(t, nilMirror.WriteStatus(status.Snapshot{}))
}
