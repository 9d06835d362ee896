// Package program supplies the program construction surface. There is no
// textual assembler: programs are built in code. Builder is the plain Go
// constructor API; LoadLua (lua.go) is a data-driven variant of the same
// surface, not a text assembler.
package program

import (
	"github.com/artpeixoto/fam/internal/instr"
	"github.com/artpeixoto/fam/internal/talu"
	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

// Builder accumulates a program one instruction at a time via a fluent
// API mirroring each Instruction variant's constructor.
type Builder struct {
	instructions []instr.Instruction
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns the accumulated program.
func (b *Builder) Build() []instr.Instruction {
	out := make([]instr.Instruction, len(b.instructions))
	copy(out, b.instructions)
	return out
}

// SetTaluConfig appends an instr.SetTaluConfig.
func (b *Builder) SetTaluConfig(taluAddr int, op talu.Operation) *Builder {
	b.instructions = append(b.instructions, instr.SetTaluConfig{TaluAddr: taluAddr, Config: op})
	return b
}

// ResetAllTalus appends an instr.ResetAllTalus.
func (b *Builder) ResetAllTalus() *Builder {
	b.instructions = append(b.instructions, instr.ResetAllTalus{})
	return b
}

// SetLiteral appends an instr.SetLiteral.
func (b *Builder) SetLiteral(literal word.Word, regAddr wire.Addr) *Builder {
	b.instructions = append(b.instructions, instr.SetLiteral{Literal: literal, RegAddr: regAddr})
	return b
}

// WaitForActivationSignal appends an instr.WaitForActivationSignal.
func (b *Builder) WaitForActivationSignal(regAddr wire.Addr) *Builder {
	b.instructions = append(b.instructions, instr.WaitForActivationSignal{RegAddr: regAddr})
	return b
}

// Jump appends an instr.Jump.
func (b *Builder) Jump(addr word.Word) *Builder {
	b.instructions = append(b.instructions, instr.Jump{Addr: addr})
	return b
}

// NoOp appends an instr.NoOp.
func (b *Builder) NoOp() *Builder {
	b.instructions = append(b.instructions, instr.NoOp{})
	return b
}
