// Package instr implements the Instruction tagged union the controller
// decodes, and the instruction memory / program-counter-driven reader that
// sequences through it.
package instr

import (
	"github.com/artpeixoto/fam/internal/talu"
	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

// Instruction is the controller's tagged-union program element. Every
// variant is a distinct Go type.
type Instruction interface {
	instruction()
}

// SetTaluConfig reconfigures the TALU at TaluAddr with Config.
type SetTaluConfig struct {
	TaluAddr int
	Config   talu.Operation
}

func (SetTaluConfig) instruction() {}

// ResetAllTalus reconfigures every TALU in the bank to NoOp.
type ResetAllTalus struct{}

func (ResetAllTalus) instruction() {}

// SetLiteral writes Literal into RegAddr.
type SetLiteral struct {
	Literal word.Word
	RegAddr wire.Addr
}

func (SetLiteral) instruction() {}

// WaitForActivationSignal parks the controller until RegAddr's activation
// interpretation reads Active.
type WaitForActivationSignal struct {
	RegAddr wire.Addr
}

func (WaitForActivationSignal) instruction() {}

// Jump sets the program counter to Addr.
type Jump struct {
	Addr word.Word
}

func (Jump) instruction() {}

// NoOp advances the program counter with no other effect.
type NoOp struct{}

func (NoOp) instruction() {}
