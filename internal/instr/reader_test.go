package instr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

// fakePC stands in for the register bank cell backing the program counter,
// letting tests drive Reader's wires directly.
type fakePC struct {
	value word.Word
}

func (f *fakePC) satisfyRead(r *wire.DataReader) {
	req, ok := r.GetReadRequest()
	if !ok {
		return
	}
	req.Satisfy(f.value)
}

func (f *fakePC) applyWrite(w *wire.DataWriter) {
	req, ok := w.GetWriteRequest()
	if !ok {
		return
	}
	f.value = req.Value()
}

func TestReadByProgramCounter(t *testing.T) {
	mem := NewMemory([]Instruction{NoOp{}, Jump{Addr: 0}})
	r := NewReader(mem, wire.Addr(63))
	pc := &fakePC{value: 1}

	pc.satisfyRead(&r.ProgramCounterReader)
	instrn, ok := r.Read()
	require.True(t, ok)
	assert.Equal(t, Jump{Addr: 0}, instrn)
}

func TestReadPastEndReturnsFalse(t *testing.T) {
	mem := NewMemory([]Instruction{NoOp{}})
	r := NewReader(mem, wire.Addr(63))
	pc := &fakePC{value: 5}

	pc.satisfyRead(&r.ProgramCounterReader)
	_, ok := r.Read()
	assert.False(t, ok)
}

func TestStepIncrement(t *testing.T) {
	mem := NewMemory([]Instruction{NoOp{}, NoOp{}})
	r := NewReader(mem, wire.Addr(63))
	pc := &fakePC{value: 3}

	pc.satisfyRead(&r.ProgramCounterReader)
	r.SetIncrementCmd(Increment())
	r.Step()
	pc.applyWrite(&r.ProgramCounterWriter)

	assert.Equal(t, word.Word(4), pc.value)
}

func TestStepGoTo(t *testing.T) {
	mem := NewMemory([]Instruction{NoOp{}})
	r := NewReader(mem, wire.Addr(63))
	pc := &fakePC{value: 3}

	pc.satisfyRead(&r.ProgramCounterReader)
	r.SetIncrementCmd(GoTo(0))
	r.Step()
	pc.applyWrite(&r.ProgramCounterWriter)

	assert.Equal(t, word.Word(0), pc.value)
}

func TestStepNoIncrementLeavesNoPendingWrite(t *testing.T) {
	mem := NewMemory([]Instruction{NoOp{}})
	r := NewReader(mem, wire.Addr(63))

	r.SetIncrementCmd(NoIncrement())
	r.Step()
	_, ok := r.ProgramCounterWriter.GetWriteRequest()
	assert.False(t, ok)
}
