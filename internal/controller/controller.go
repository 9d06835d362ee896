// Package controller implements the instruction sequencer: a two-state
// machine (Running / WaitingForActivation) that decodes one instruction per
// tick and drives the register bank's reader/writer wires and the TALU
// bank's configuration channel.
package controller

import (
	"github.com/artpeixoto/fam/internal/instr"
	"github.com/artpeixoto/fam/internal/talu"
	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

// State is the controller's execution state.
type State int

const (
	Running State = iota
	WaitingForActivation
)

// Controller sequences InstructionReader's program, producing register and
// TALU-config writes and, while WaitingForActivation, polling a register
// for an activation signal.
type Controller struct {
	RegisterReader   wire.DataReader
	RegisterWriter   wire.DataWriter
	TaluConfigWriter TaluConfigWriter
	State            State

	InstructionReader *instr.Reader
}

// New returns a Running controller sequencing instructionReader, with both
// register wires and the TALU config writer deactivated.
func New(instructionReader *instr.Reader) *Controller {
	return &Controller{
		TaluConfigWriter:  TaluConfigWriter{Kind: Deactivated},
		State:             Running,
		InstructionReader: instructionReader,
	}
}

// ResetOutputs deactivates the TALU config writer and the register writer.
// The tick engine calls this once their prior values have been consumed and
// before Execute runs, so a dispatch that doesn't touch one of these writers
// doesn't leave last tick's value to be silently re-applied forever.
func (c *Controller) ResetOutputs() {
	c.TaluConfigWriter = TaluConfigWriter{Kind: Deactivated}
	c.RegisterWriter.SetConnection(nil)
}

// Execute runs one dispatch step. It returns false when the program counter
// has run past the end of the program, signalling program completion.
func (c *Controller) Execute() bool {
	switch c.State {
	case Running:
		if !c.dispatch() {
			return false
		}
	case WaitingForActivation:
		c.pollActivation()
	}
	c.InstructionReader.Step()
	return true
}

func (c *Controller) dispatch() bool {
	current, ok := c.InstructionReader.Read()
	if !ok {
		return false
	}

	switch in := current.(type) {
	case instr.SetTaluConfig:
		c.TaluConfigWriter = TaluConfigWriter{
			Kind:     WritingToSingle,
			TaluAddr: in.TaluAddr,
			Op:       in.Config,
		}
		c.InstructionReader.SetIncrementCmd(instr.Increment())

	case instr.ResetAllTalus:
		c.TaluConfigWriter = TaluConfigWriter{Kind: WritingToAll, Op: talu.NoOp{}}
		c.InstructionReader.SetIncrementCmd(instr.Increment())

	case instr.SetLiteral:
		addr := in.RegAddr
		c.RegisterWriter.SetConnection(&addr)
		c.RegisterWriter.Write(in.Literal)
		c.InstructionReader.SetIncrementCmd(instr.Increment())

	case instr.WaitForActivationSignal:
		addr := in.RegAddr
		c.RegisterReader.SetConnection(&addr)
		c.State = WaitingForActivation
		c.InstructionReader.SetIncrementCmd(instr.NoIncrement())

	case instr.Jump:
		c.InstructionReader.SetIncrementCmd(instr.GoTo(in.Addr))

	case instr.NoOp:
		c.InstructionReader.SetIncrementCmd(instr.Increment())
	}
	return true
}

func (c *Controller) pollActivation() {
	v, ok := c.RegisterReader.Read()
	if ok && v.ToActivation() == word.Active {
		c.InstructionReader.SetIncrementCmd(instr.Increment())
		c.State = Running
		return
	}
	c.InstructionReader.SetIncrementCmd(instr.NoIncrement())
}
