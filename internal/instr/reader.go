package instr

import (
	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

// IncrementKind is the instruction reader's command for how the program
// counter advances at the end of a tick.
type IncrementKind int

const (
	KindIncrement IncrementKind = iota
	KindNoIncrement
	KindGoTo
)

// IncrementCmd is the tagged union {Increment, NoIncrement, GoTo(word)}.
type IncrementCmd struct {
	Kind   IncrementKind
	Target word.Word
}

// Increment advances the program counter by one.
func Increment() IncrementCmd { return IncrementCmd{Kind: KindIncrement} }

// NoIncrement leaves the program counter unchanged.
func NoIncrement() IncrementCmd { return IncrementCmd{Kind: KindNoIncrement} }

// GoTo sets the program counter to target.
func GoTo(target word.Word) IncrementCmd { return IncrementCmd{Kind: KindGoTo, Target: target} }

// Reader sequences a Memory via a program-counter read/write wire pair.
// Both wires stay permanently connected to pcAddr: the program counter is
// always readable and writable, only the increment command varies per
// tick.
type Reader struct {
	memory *Memory

	ProgramCounterReader wire.DataReader
	ProgramCounterWriter wire.DataWriter

	incrementCmd IncrementCmd
}

// NewReader returns a Reader over memory, with both PC wires wired to
// pcAddr.
func NewReader(memory *Memory, pcAddr wire.Addr) *Reader {
	r := &Reader{memory: memory, incrementCmd: Increment()}
	addr := pcAddr
	r.ProgramCounterReader.SetConnection(&addr)
	r.ProgramCounterWriter.SetConnection(&addr)
	return r
}

// Read returns the instruction at the program counter's cached value (set
// earlier this tick by satisfying ProgramCounterReader's request), or false
// if the cache is unpopulated or the program counter is past the end of
// the program.
func (r *Reader) Read() (Instruction, bool) {
	pc, ok := r.ProgramCounterReader.Read()
	if !ok {
		return nil, false
	}
	return r.memory.At(int(pc))
}

// SetIncrementCmd records how Step should move the program counter.
func (r *Reader) SetIncrementCmd(cmd IncrementCmd) {
	r.incrementCmd = cmd
}

// Step stages the program-counter write implied by the current increment
// command. It must run after Read, using the same cached PC value as its
// base for Increment.
func (r *Reader) Step() {
	switch r.incrementCmd.Kind {
	case KindIncrement:
		pc, ok := r.ProgramCounterReader.Read()
		if !ok {
			return
		}
		r.ProgramCounterWriter.Write(pc + 1)
	case KindGoTo:
		r.ProgramCounterWriter.Write(r.incrementCmd.Target)
	case KindNoIncrement:
	}
}
