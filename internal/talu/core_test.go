package talu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpeixoto/fam/internal/memory"
	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

func addr(a int) *wire.Addr {
	v := wire.Addr(a)
	return &v
}

// fakeRegisters is a minimal stand-in for the register bank, just enough to
// drive a Core's reader/writer wires directly in isolation from the cpu
// tick engine.
type fakeRegisters struct {
	cells map[wire.Addr]word.Word
}

func newFakeRegisters() *fakeRegisters {
	return &fakeRegisters{cells: map[wire.Addr]word.Word{}}
}

func (f *fakeRegisters) set(a wire.Addr, v word.Word) { f.cells[a] = v }
func (f *fakeRegisters) get(a wire.Addr) word.Word     { return f.cells[a] }

func (f *fakeRegisters) satisfyRead(r *wire.DataReader) {
	req, ok := r.GetReadRequest()
	if !ok {
		return
	}
	req.Satisfy(f.get(req.Addr()))
}

func (f *fakeRegisters) satisfyActRead(r *wire.ActivationReader) {
	req, ok := r.GetReadRequest()
	if !ok {
		return
	}
	req.Satisfy(f.get(req.Addr()))
}

func (f *fakeRegisters) applyWrite(w *wire.DataWriter) {
	req, ok := w.GetWriteRequest()
	if !ok {
		return
	}
	f.set(req.Addr(), req.Value())
}

func (f *fakeRegisters) applyActWrite(w *wire.ActivationWriter) {
	req, ok := w.GetWriteRequest()
	if !ok {
		return
	}
	f.set(req.Addr(), req.Value())
}

func TestMovComputesOut0EqualsIn0(t *testing.T) {
	regs := newFakeRegisters()
	core := NewCore(0, memory.New(1))
	core.SetNewOperation(Mov{
		DataIn0:       addr(0),
		ActivationIn:  addr(1),
		DataOut0:      addr(2),
		ActivationOut: addr(3),
	})

	regs.set(0, 7)
	regs.set(1, word.ToWord(true))

	regs.satisfyRead(&core.DataInput0)
	regs.satisfyActRead(&core.ActivationIn)
	require.NoError(t, core.Execute())
	regs.applyWrite(&core.DataOutput0)
	regs.applyActWrite(&core.ActivationOut)

	assert.Equal(t, word.Word(7), regs.get(2))
	assert.Equal(t, word.ToWord(true), regs.get(3))
	assert.Equal(t, JustProcessed, core.State)
}

// TestActivationPulseIsOneTickHigh exercises the quantified "activation
// pulse" property from the testable-properties section: Active-then-
// Inactive on the activation input yields true-then-false-then-absent
// across three ticks, regardless of which variant is configured.
func TestActivationPulseIsOneTickHigh(t *testing.T) {
	regs := newFakeRegisters()
	core := NewCore(0, memory.New(1))
	core.SetNewOperation(Mov{
		DataIn0:       addr(0),
		ActivationIn:  addr(1),
		DataOut0:      addr(2),
		ActivationOut: addr(3),
	})
	regs.set(0, 0)

	tick := func(activationInput bool) (word.Word, bool) {
		regs.set(1, word.ToWord(activationInput))
		core.ActivationOut.Clear()
		regs.satisfyRead(&core.DataInput0)
		regs.satisfyActRead(&core.ActivationIn)
		require.NoError(t, core.Execute())
		req, ok := core.ActivationOut.GetWriteRequest()
		if !ok {
			return 0, false
		}
		return req.Value(), true
	}

	v, ok := tick(true)
	require.True(t, ok)
	assert.Equal(t, word.ToWord(true), v)

	v, ok = tick(false)
	require.True(t, ok)
	assert.Equal(t, word.ToWord(false), v)

	_, ok = tick(false)
	assert.False(t, ok, "third tick should leave no pending activation write")
}

func TestCmpLessThan(t *testing.T) {
	regs := newFakeRegisters()
	core := NewCore(0, memory.New(1))
	core.SetNewOperation(Cmp{
		Op:            LessThan,
		DataIn0:       addr(0),
		DataIn1:       addr(1),
		ActivationIn:  addr(2),
		DataOut0:      addr(3),
		ActivationOut: addr(4),
	})
	regs.set(0, 3)
	regs.set(1, 5)
	regs.set(2, word.ToWord(true))

	regs.satisfyRead(&core.DataInput0)
	regs.satisfyRead(&core.DataInput1)
	regs.satisfyActRead(&core.ActivationIn)
	require.NoError(t, core.Execute())
	regs.applyWrite(&core.DataOutput0)

	assert.Equal(t, word.Word(-1), regs.get(3), "true is encoded as all-ones")
}

func TestDivByZero(t *testing.T) {
	regs := newFakeRegisters()
	core := NewCore(0, memory.New(1))
	core.SetNewOperation(Div{divRem{
		DataIn0:             addr(0),
		DataIn1:             addr(1),
		ActivationIn:        addr(2),
		DataOut0:            addr(3),
		DivByZeroFlagOutput: addr(4),
		ActivationOut:       addr(5),
	}})
	regs.set(0, 10)
	regs.set(1, 0)
	regs.set(2, word.ToWord(true))

	regs.satisfyRead(&core.DataInput0)
	regs.satisfyRead(&core.DataInput1)
	regs.satisfyActRead(&core.ActivationIn)
	require.NoError(t, core.Execute())
	regs.applyWrite(&core.DataOutput0)
	regs.applyWrite(&core.DataOutput1)

	assert.Equal(t, word.Word(0), regs.get(3))
	assert.Equal(t, word.Word(1), regs.get(4))
}

func TestLatchIsUnimplemented(t *testing.T) {
	core := NewCore(0, memory.New(1))
	core.SetNewOperation(Latch{
		DataIn0:       addr(0),
		DataIn1:       addr(1),
		ActivationIn:  addr(2),
		DataOut0:      addr(3),
		ActivationOut: addr(4),
	})
	err := core.Execute()
	assert.ErrorIs(t, err, ErrUnimplementedOperation)
}

func TestPortsInfoReflectsCurrentOperation(t *testing.T) {
	core := NewCore(0, memory.New(1))
	core.SetNewOperation(Mov{
		DataIn0:       addr(0),
		ActivationIn:  addr(1),
		DataOut0:      addr(2),
		ActivationOut: nil,
	})

	info := core.PortsInfo()
	assert.True(t, info.DataIn0.Connected)
	assert.Equal(t, FlowIn, info.DataIn0.Flow)
	assert.Equal(t, KindData, info.DataIn0.Kind)

	assert.False(t, info.DataIn1.Connected, "Mov does not use DataIn1")
	assert.False(t, info.ActivationOut.Connected)
	assert.Equal(t, KindActivation, info.ActivationIn.Kind)
	assert.Equal(t, FlowOut, info.DataOut0.Flow)

	assert.True(t, info.SetupIn.Connected, "SetupIn is always connected")
	assert.Equal(t, KindSetup, info.SetupIn.Kind)
}

func TestSetNewOperationDisablesUnusedPorts(t *testing.T) {
	core := NewCore(0, memory.New(1))
	core.SetNewOperation(Mov{
		DataIn0:       addr(0),
		ActivationIn:  addr(1),
		DataOut0:      addr(2),
		ActivationOut: addr(3),
	})
	assert.False(t, core.DataInput1.IsActive(), "Mov does not use DataIn1")
	assert.False(t, core.DataOutput1.IsActive(), "Mov does not use DataOut1")
}
