package talu

import "github.com/artpeixoto/fam/internal/wire"

// CmpOp selects the comparison Cmp computes.
type CmpOp int

const (
	LessThan CmpOp = iota
	LessThanOrEq
	GreaterThan
	GreaterThanOrEq
	Eq
	NotEq
)

// PortConfig is the total function from a TaluOperation to its enabled
// ports, one field per data/activation port. A nil field means that port is
// disabled: its reader/writer is deactivated and contributes nothing to a
// tick's connection set. SetupIn is not part of PortConfig — it is wired
// directly by the tick engine when it applies a configuration, not through
// a per-tick reader/writer.
type PortConfig struct {
	DataIn0       *wire.Addr
	DataIn1       *wire.Addr
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr
	DataOut1      *wire.Addr
	ActivationOut *wire.Addr
}

// Operation is the TALU's tagged-union operation. Every variant is a
// distinct Go type implementing this interface; PortConfig() is the total
// variant-to-ports mapping.
type Operation interface {
	PortConfig() PortConfig
	taluOperation()
}

// NoOp disables every port; Execute leaves the core's state unchanged.
type NoOp struct{}

func (NoOp) taluOperation()         {}
func (NoOp) PortConfig() PortConfig { return PortConfig{} }

// Mov copies DataIn0 to DataOut0 when activated.
type Mov struct {
	DataIn0       *wire.Addr
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr
	ActivationOut *wire.Addr
}

func (Mov) taluOperation() {}
func (o Mov) PortConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		ActivationOut: o.ActivationOut,
	}
}

// Cmp writes the all-ones/zero word encoding of (DataIn0 Op DataIn1).
type Cmp struct {
	Op            CmpOp
	DataIn0       *wire.Addr
	DataIn1       *wire.Addr
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr
	ActivationOut *wire.Addr
}

func (Cmp) taluOperation() {}
func (o Cmp) PortConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		DataIn1:       o.DataIn1,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		ActivationOut: o.ActivationOut,
	}
}

// Latch has no defined semantics yet. It is accepted as a configurable
// operation but Execute refuses to compute a result for it — see
// ErrUnimplementedOperation.
type Latch struct {
	DataIn0       *wire.Addr // value
	DataIn1       *wire.Addr // hold flag
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr
	ActivationOut *wire.Addr
}

func (Latch) taluOperation() {}
func (o Latch) PortConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		DataIn1:       o.DataIn1,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		ActivationOut: o.ActivationOut,
	}
}

// Not writes the bitwise complement of DataIn0.
type Not struct {
	DataIn0       *wire.Addr
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr
	ActivationOut *wire.Addr
}

func (Not) taluOperation() {}
func (o Not) PortConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		ActivationOut: o.ActivationOut,
	}
}

// binaryBitwise is the shared port shape for And, Or, Xor, ShiftLeft and
// ShiftRight: two data inputs, one data output.
type binaryBitwise struct {
	DataIn0       *wire.Addr
	DataIn1       *wire.Addr
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr
	ActivationOut *wire.Addr
}

func (o binaryBitwise) portConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		DataIn1:       o.DataIn1,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		ActivationOut: o.ActivationOut,
	}
}

type And struct{ binaryBitwise }
type Or struct{ binaryBitwise }
type Xor struct{ binaryBitwise }
type ShiftLeft struct{ binaryBitwise }
type ShiftRight struct{ binaryBitwise }

func (And) taluOperation()                  {}
func (o And) PortConfig() PortConfig        { return o.binaryBitwise.portConfig() }
func (Or) taluOperation()                   {}
func (o Or) PortConfig() PortConfig         { return o.binaryBitwise.portConfig() }
func (Xor) taluOperation()                  {}
func (o Xor) PortConfig() PortConfig        { return o.binaryBitwise.portConfig() }
func (ShiftLeft) taluOperation()            {}
func (o ShiftLeft) PortConfig() PortConfig  { return o.binaryBitwise.portConfig() }
func (ShiftRight) taluOperation()           {}
func (o ShiftRight) PortConfig() PortConfig { return o.binaryBitwise.portConfig() }

// NewAnd, NewOr, NewXor, NewShiftLeft and NewShiftRight build the
// corresponding binary-bitwise operation. They exist because binaryBitwise
// is unexported (it is a shared implementation detail, not part of the
// tagged union's public shape), so callers outside this package — the
// Lua-hosted program builder in internal/program, notably — need a
// constructor rather than a struct literal to build these five variants.
func NewAnd(dataIn0, dataIn1, activationIn, dataOut0, activationOut *wire.Addr) And {
	return And{binaryBitwise{dataIn0, dataIn1, activationIn, dataOut0, activationOut}}
}

func NewOr(dataIn0, dataIn1, activationIn, dataOut0, activationOut *wire.Addr) Or {
	return Or{binaryBitwise{dataIn0, dataIn1, activationIn, dataOut0, activationOut}}
}

func NewXor(dataIn0, dataIn1, activationIn, dataOut0, activationOut *wire.Addr) Xor {
	return Xor{binaryBitwise{dataIn0, dataIn1, activationIn, dataOut0, activationOut}}
}

func NewShiftLeft(dataIn0, dataIn1, activationIn, dataOut0, activationOut *wire.Addr) ShiftLeft {
	return ShiftLeft{binaryBitwise{dataIn0, dataIn1, activationIn, dataOut0, activationOut}}
}

func NewShiftRight(dataIn0, dataIn1, activationIn, dataOut0, activationOut *wire.Addr) ShiftRight {
	return ShiftRight{binaryBitwise{dataIn0, dataIn1, activationIn, dataOut0, activationOut}}
}

// SelectPart has no defined semantics yet, same treatment as Latch.
type SelectPart struct {
	DataIn0       *wire.Addr // value
	DataIn1       *wire.Addr // part selector
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr
	ActivationOut *wire.Addr
}

func (SelectPart) taluOperation() {}
func (o SelectPart) PortConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		DataIn1:       o.DataIn1,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		ActivationOut: o.ActivationOut,
	}
}

// widening is the shared port shape for Add and Sub: two data inputs, a
// result and a flag output (overflow / borrow).
type widening struct {
	DataIn0       *wire.Addr
	DataIn1       *wire.Addr
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr // result
	DataOut1      *wire.Addr // overflow / borrow flag
	ActivationOut *wire.Addr
}

func (o widening) portConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		DataIn1:       o.DataIn1,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		DataOut1:      o.DataOut1,
		ActivationOut: o.ActivationOut,
	}
}

type Add struct{ widening }
type Sub struct{ widening }

func (Add) taluOperation()           {}
func (o Add) PortConfig() PortConfig { return o.widening.portConfig() }
func (Sub) taluOperation()           {}
func (o Sub) PortConfig() PortConfig { return o.widening.portConfig() }

// NewAdd and NewSub build the corresponding widening operation; widening is
// unexported for the same reason binaryBitwise is (see NewAnd).
func NewAdd(dataIn0, dataIn1, activationIn, dataOut0, dataOut1, activationOut *wire.Addr) Add {
	return Add{widening{dataIn0, dataIn1, activationIn, dataOut0, dataOut1, activationOut}}
}

func NewSub(dataIn0, dataIn1, activationIn, dataOut0, dataOut1, activationOut *wire.Addr) Sub {
	return Sub{widening{dataIn0, dataIn1, activationIn, dataOut0, dataOut1, activationOut}}
}

// Mul computes in0*in1. When SecondWordOutput is configured, DataOut0/
// DataOut1 hold the low/high words of a widening signed multiply; otherwise
// only DataOut0 is written, with the product wrapped to a single word.
type Mul struct {
	DataIn0          *wire.Addr
	DataIn1          *wire.Addr
	ActivationIn     *wire.Addr
	DataOut0         *wire.Addr
	SecondWordOutput *wire.Addr
	ActivationOut    *wire.Addr
}

func (Mul) taluOperation() {}
func (o Mul) PortConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		DataIn1:       o.DataIn1,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		DataOut1:      o.SecondWordOutput,
		ActivationOut: o.ActivationOut,
	}
}

// divRem is the shared port shape for Div and Rem.
type divRem struct {
	DataIn0             *wire.Addr // dividend
	DataIn1             *wire.Addr // divisor
	ActivationIn        *wire.Addr
	DataOut0            *wire.Addr
	DivByZeroFlagOutput *wire.Addr
	ActivationOut       *wire.Addr
}

func (o divRem) portConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		DataIn1:       o.DataIn1,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		DataOut1:      o.DivByZeroFlagOutput,
		ActivationOut: o.ActivationOut,
	}
}

type Div struct{ divRem }
type Rem struct{ divRem }

func (Div) taluOperation()           {}
func (o Div) PortConfig() PortConfig { return o.divRem.portConfig() }
func (Rem) taluOperation()           {}
func (o Rem) PortConfig() PortConfig { return o.divRem.portConfig() }

// NewDiv and NewRem build the corresponding divRem operation; divRem is
// unexported for the same reason binaryBitwise is (see NewAnd).
func NewDiv(dataIn0, dataIn1, activationIn, dataOut0, divByZeroFlagOutput, activationOut *wire.Addr) Div {
	return Div{divRem{dataIn0, dataIn1, activationIn, dataOut0, divByZeroFlagOutput, activationOut}}
}

func NewRem(dataIn0, dataIn1, activationIn, dataOut0, divByZeroFlagOutput, activationOut *wire.Addr) Rem {
	return Rem{divRem{dataIn0, dataIn1, activationIn, dataOut0, divByZeroFlagOutput, activationOut}}
}

// Neg writes the arithmetic negation of DataIn0.
type Neg struct {
	DataIn0       *wire.Addr
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr
	ActivationOut *wire.Addr
}

func (Neg) taluOperation() {}
func (o Neg) PortConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		ActivationOut: o.ActivationOut,
	}
}

// ReadFromMem writes main_memory[DataIn0] to DataOut0.
type ReadFromMem struct {
	DataIn0       *wire.Addr // address
	ActivationIn  *wire.Addr
	DataOut0      *wire.Addr
	ActivationOut *wire.Addr
}

func (ReadFromMem) taluOperation() {}
func (o ReadFromMem) PortConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		ActivationIn:  o.ActivationIn,
		DataOut0:      o.DataOut0,
		ActivationOut: o.ActivationOut,
	}
}

// WriteToMem stores DataIn0 into main_memory[DataIn1]. It has no data
// output.
type WriteToMem struct {
	DataIn0       *wire.Addr // data
	DataIn1       *wire.Addr // address
	ActivationIn  *wire.Addr
	ActivationOut *wire.Addr
}

func (WriteToMem) taluOperation() {}
func (o WriteToMem) PortConfig() PortConfig {
	return PortConfig{
		DataIn0:       o.DataIn0,
		DataIn1:       o.DataIn1,
		ActivationIn:  o.ActivationIn,
		ActivationOut: o.ActivationOut,
	}
}
