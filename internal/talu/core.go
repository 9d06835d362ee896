// Package talu implements the reconfigurable arithmetic unit ("TALU"): a
// single core with up to six data/activation ports plus an out-of-band
// SetupIn configuration path, and the tagged-union TaluOperation it is
// reconfigured to execute.
package talu

import (
	"errors"

	"github.com/artpeixoto/fam/internal/memory"
	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

// TaluCount is the fixed size of a TALU bank.
const TaluCount = 32

// State is a TALU's lifecycle tag, driving the one-tick activation pulse.
type State int

const (
	Closing State = iota
	JustProcessed
	Done
)

// ErrUnimplementedOperation is returned by Execute for the Latch and
// SelectPart variants, whose semantics are not yet defined. Execute
// performs no computation and leaves state and outputs untouched when
// this error is returned.
var ErrUnimplementedOperation = errors.New("talu: operation not implemented")

// Core is a single reconfigurable arithmetic unit.
type Core struct {
	Addr         int
	State        State
	Operation    Operation
	OldOperation Operation

	mainMemory *memory.Memory

	innerMemory0 word.Word
	innerMemory1 word.Word

	DataInput0    wire.DataReader
	DataInput1    wire.DataReader
	ActivationIn  wire.ActivationReader
	DataOutput0   wire.DataWriter
	DataOutput1   wire.DataWriter
	ActivationOut wire.ActivationWriter
}

// NewCore returns a TALU core at addr, wired to mainMemory for
// ReadFromMem/WriteToMem, configured with NoOp.
func NewCore(addr int, mainMemory *memory.Memory) *Core {
	c := &Core{
		Addr:         addr,
		State:        Closing,
		Operation:    NoOp{},
		OldOperation: NoOp{},
		mainMemory:   mainMemory,
	}
	return c
}

// SetNewOperation reconfigures the core: the current operation becomes
// OldOperation, state resets to Done, every data/activation port is
// (re)connected per op's PortConfig, and inner memory slots are cleared.
func (c *Core) SetNewOperation(op Operation) {
	c.OldOperation = c.Operation
	c.Operation = op
	c.State = Done

	cfg := op.PortConfig()
	c.DataInput0.SetConnection(cfg.DataIn0)
	c.DataInput1.SetConnection(cfg.DataIn1)
	c.ActivationIn.SetConnection(cfg.ActivationIn)
	c.DataOutput0.SetConnection(cfg.DataOut0)
	c.DataOutput1.SetConnection(cfg.DataOut1)
	c.ActivationOut.SetConnection(cfg.ActivationOut)

	c.innerMemory0 = 0
	c.innerMemory1 = 0
}

// Bank is the fixed array of TaluCount TALU cores.
type Bank [TaluCount]*Core

// NewBank returns a Bank of fresh, NoOp-configured cores, all wired to
// mainMemory.
func NewBank(mainMemory *memory.Memory) *Bank {
	var b Bank
	for i := range b {
		b[i] = NewCore(i, mainMemory)
	}
	return &b
}

// runPulsed centralizes the Closing/JustProcessed/Done transitions common
// to every non-NoOp variant: compute is invoked only while the activation
// input reads Active, and is expected to populate the relevant data
// outputs. The resulting activation output is a one-tick pulse: true on
// the processing tick, false the tick after, then absent.
func (c *Core) runPulsed(compute func()) {
	active, ok := c.ActivationIn.Read()
	if ok && active == word.Active {
		compute()
		c.ActivationOut.Write(true)
		c.State = JustProcessed
		return
	}
	if c.State == JustProcessed {
		c.ActivationOut.Write(false)
		c.State = Closing
		return
	}
	c.State = Done
	c.ActivationOut.Clear()
}

// boolWord encodes a boolean as the all-ones/zero word the rest of the
// system uses for activation-style flags.
func boolWord(b bool) word.Word {
	return word.ToWord(b)
}

// Execute runs one step of the currently configured operation. It is a
// no-op for NoOp, and returns ErrUnimplementedOperation for Latch and
// SelectPart without touching state or outputs.
func (c *Core) Execute() error {
	switch op := c.Operation.(type) {
	case NoOp:
		return nil

	case Mov:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			c.DataOutput0.Write(in0)
		})
		return nil

	case Cmp:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			in1, _ := c.DataInput1.Read()
			var result bool
			switch op.Op {
			case LessThan:
				result = in0 < in1
			case LessThanOrEq:
				result = in0 <= in1
			case GreaterThan:
				result = in0 > in1
			case GreaterThanOrEq:
				result = in0 >= in1
			case Eq:
				result = in0 == in1
			case NotEq:
				result = in0 != in1
			}
			c.DataOutput0.Write(boolWord(result))
		})
		return nil

	case Not:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			c.DataOutput0.Write(^in0)
		})
		return nil

	case And:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			in1, _ := c.DataInput1.Read()
			c.DataOutput0.Write(in0 & in1)
		})
		return nil

	case Or:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			in1, _ := c.DataInput1.Read()
			c.DataOutput0.Write(in0 | in1)
		})
		return nil

	case Xor:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			in1, _ := c.DataInput1.Read()
			c.DataOutput0.Write(in0 ^ in1)
		})
		return nil

	case ShiftLeft:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			in1, _ := c.DataInput1.Read()
			c.DataOutput0.Write(word.Word(int32(in0) << uint32(in1)))
		})
		return nil

	case ShiftRight:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			in1, _ := c.DataInput1.Read()
			c.DataOutput0.Write(word.Word(int32(in0) >> uint32(in1)))
		})
		return nil

	case Add:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			in1, _ := c.DataInput1.Read()
			sum := int64(in0) + int64(in1)
			wrapped := word.Word(int32(sum))
			c.DataOutput0.Write(wrapped)
			c.DataOutput1.Write(boolWord(sum != int64(wrapped)))
		})
		return nil

	case Sub:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			in1, _ := c.DataInput1.Read()
			diff := int64(in0) - int64(in1)
			wrapped := word.Word(int32(diff))
			c.DataOutput0.Write(wrapped)
			c.DataOutput1.Write(boolWord(diff != int64(wrapped)))
		})
		return nil

	case Mul:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			in1, _ := c.DataInput1.Read()
			product := int64(in0) * int64(in1)
			if op.SecondWordOutput != nil {
				c.DataOutput0.Write(word.Word(int32(product)))
				c.DataOutput1.Write(word.Word(int32(product >> 32)))
			} else {
				c.DataOutput0.Write(word.Word(int32(product)))
			}
		})
		return nil

	case Div:
		c.runPulsed(func() {
			dividend, _ := c.DataInput0.Read()
			divisor, _ := c.DataInput1.Read()
			if divisor == 0 {
				if op.DivByZeroFlagOutput != nil {
					c.DataOutput1.Write(1)
				}
				c.DataOutput0.Write(0)
				return
			}
			c.DataOutput1.Write(dividend / divisor)
			// A configured zero-flag port overwrites the quotient with 0 on
			// the success path.
			if op.DivByZeroFlagOutput != nil {
				c.DataOutput1.Write(0)
			}
		})
		return nil

	case Rem:
		c.runPulsed(func() {
			dividend, _ := c.DataInput0.Read()
			divisor, _ := c.DataInput1.Read()
			if divisor == 0 {
				if op.DivByZeroFlagOutput != nil {
					c.DataOutput1.Write(1)
				}
				c.DataOutput0.Write(0)
				return
			}
			c.DataOutput1.Write(dividend % divisor)
			if op.DivByZeroFlagOutput != nil {
				c.DataOutput1.Write(0)
			}
		})
		return nil

	case Neg:
		c.runPulsed(func() {
			in0, _ := c.DataInput0.Read()
			c.DataOutput0.Write(-in0)
		})
		return nil

	case ReadFromMem:
		c.runPulsed(func() {
			addr, _ := c.DataInput0.Read()
			c.DataOutput0.Write(c.mainMemory.Read(int(addr)))
		})
		return nil

	case WriteToMem:
		c.runPulsed(func() {
			data, _ := c.DataInput0.Read()
			addr, _ := c.DataInput1.Read()
			c.mainMemory.Write(int(addr), data)
		})
		return nil

	case Latch, SelectPart:
		return ErrUnimplementedOperation

	default:
		return ErrUnimplementedOperation
	}
}
