package program

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/artpeixoto/fam/internal/instr"
	"github.com/artpeixoto/fam/internal/talu"
	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

// LoadLua runs src through an embedded Lua VM, with a builder exposed as a
// set of Lua global functions matching Builder's Go constructors one for
// one, and returns the resulting instruction slice. This is explicitly not
// an assembler: there is no mnemonic grammar, no operand parsing, no
// label-resolution pass. Each Lua statement is a plain function call —
// set_literal(42, 7), jump(0) — the same shape a JSON or YAML program
// description would have, just hosted in an existing scripting language
// instead of an invented one.
func LoadLua(src string) ([]instr.Instruction, error) {
	b := NewBuilder()
	L := lua.NewState()
	defer L.Close()

	register(L, b)

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("fam: lua program load failed: %w", err)
	}
	return b.Build(), nil
}

func register(L *lua.LState, b *Builder) {
	L.SetGlobal("set_literal", L.NewFunction(func(L *lua.LState) int {
		literal := word.Word(L.CheckInt(1))
		addr := wire.Addr(L.CheckInt(2))
		b.SetLiteral(literal, addr)
		return 0
	}))

	L.SetGlobal("jump", L.NewFunction(func(L *lua.LState) int {
		b.Jump(word.Word(L.CheckInt(1)))
		return 0
	}))

	L.SetGlobal("wait_for_activation", L.NewFunction(func(L *lua.LState) int {
		b.WaitForActivationSignal(wire.Addr(L.CheckInt(1)))
		return 0
	}))

	L.SetGlobal("reset_all_talus", L.NewFunction(func(L *lua.LState) int {
		b.ResetAllTalus()
		return 0
	}))

	L.SetGlobal("no_op", L.NewFunction(func(L *lua.LState) int {
		b.NoOp()
		return 0
	}))

	L.SetGlobal("set_talu_noop", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.NoOp{})
		return 0
	}))

	L.SetGlobal("set_talu_mov", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.Mov{
			DataIn0:       optAddr(L, 2),
			ActivationIn:  optAddr(L, 3),
			DataOut0:      optAddr(L, 4),
			ActivationOut: optAddr(L, 5),
		})
		return 0
	}))

	L.SetGlobal("set_talu_cmp", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.Cmp{
			Op:            talu.CmpOp(L.CheckInt(2)),
			DataIn0:       optAddr(L, 3),
			DataIn1:       optAddr(L, 4),
			ActivationIn:  optAddr(L, 5),
			DataOut0:      optAddr(L, 6),
			ActivationOut: optAddr(L, 7),
		})
		return 0
	}))

	L.SetGlobal("set_talu_not", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.Not{
			DataIn0:       optAddr(L, 2),
			ActivationIn:  optAddr(L, 3),
			DataOut0:      optAddr(L, 4),
			ActivationOut: optAddr(L, 5),
		})
		return 0
	}))

	registerBinaryBitwise(L, b, "set_talu_and", func(a binaryBitwiseArgs) talu.Operation {
		return talu.NewAnd(a.dataIn0, a.dataIn1, a.activationIn, a.dataOut0, a.activationOut)
	})
	registerBinaryBitwise(L, b, "set_talu_or", func(a binaryBitwiseArgs) talu.Operation {
		return talu.NewOr(a.dataIn0, a.dataIn1, a.activationIn, a.dataOut0, a.activationOut)
	})
	registerBinaryBitwise(L, b, "set_talu_xor", func(a binaryBitwiseArgs) talu.Operation {
		return talu.NewXor(a.dataIn0, a.dataIn1, a.activationIn, a.dataOut0, a.activationOut)
	})
	registerBinaryBitwise(L, b, "set_talu_shl", func(a binaryBitwiseArgs) talu.Operation {
		return talu.NewShiftLeft(a.dataIn0, a.dataIn1, a.activationIn, a.dataOut0, a.activationOut)
	})
	registerBinaryBitwise(L, b, "set_talu_shr", func(a binaryBitwiseArgs) talu.Operation {
		return talu.NewShiftRight(a.dataIn0, a.dataIn1, a.activationIn, a.dataOut0, a.activationOut)
	})

	L.SetGlobal("set_talu_add", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.NewAdd(optAddr(L, 2), optAddr(L, 3), optAddr(L, 4), optAddr(L, 5), optAddr(L, 6), optAddr(L, 7)))
		return 0
	}))
	L.SetGlobal("set_talu_sub", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.NewSub(optAddr(L, 2), optAddr(L, 3), optAddr(L, 4), optAddr(L, 5), optAddr(L, 6), optAddr(L, 7)))
		return 0
	}))

	L.SetGlobal("set_talu_mul", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.Mul{
			DataIn0:          optAddr(L, 2),
			DataIn1:          optAddr(L, 3),
			ActivationIn:     optAddr(L, 4),
			DataOut0:         optAddr(L, 5),
			SecondWordOutput: optAddr(L, 6),
			ActivationOut:    optAddr(L, 7),
		})
		return 0
	}))

	L.SetGlobal("set_talu_div", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.NewDiv(optAddr(L, 2), optAddr(L, 3), optAddr(L, 4), optAddr(L, 5), optAddr(L, 6), optAddr(L, 7)))
		return 0
	}))
	L.SetGlobal("set_talu_rem", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.NewRem(optAddr(L, 2), optAddr(L, 3), optAddr(L, 4), optAddr(L, 5), optAddr(L, 6), optAddr(L, 7)))
		return 0
	}))

	L.SetGlobal("set_talu_neg", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.Neg{
			DataIn0:       optAddr(L, 2),
			ActivationIn:  optAddr(L, 3),
			DataOut0:      optAddr(L, 4),
			ActivationOut: optAddr(L, 5),
		})
		return 0
	}))

	L.SetGlobal("set_talu_read_mem", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.ReadFromMem{
			DataIn0:       optAddr(L, 2),
			ActivationIn:  optAddr(L, 3),
			DataOut0:      optAddr(L, 4),
			ActivationOut: optAddr(L, 5),
		})
		return 0
	}))

	L.SetGlobal("set_talu_write_mem", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		b.SetTaluConfig(addr, talu.WriteToMem{
			DataIn0:       optAddr(L, 2),
			DataIn1:       optAddr(L, 3),
			ActivationIn:  optAddr(L, 4),
			ActivationOut: optAddr(L, 5),
		})
		return 0
	}))
}

// optAddr reads argument idx as an optional register address: Lua nil (or
// an omitted trailing argument) disables the port, matching a nil
// *wire.Addr field in the Go constructors.
func optAddr(L *lua.LState, idx int) *wire.Addr {
	v := L.Get(idx)
	if v == lua.LNil {
		return nil
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		L.ArgError(idx, "expected a register address or nil")
		return nil
	}
	a := wire.Addr(int(n))
	return &a
}

type binaryBitwiseArgs struct {
	dataIn0, dataIn1, activationIn, dataOut0, activationOut *wire.Addr
}

func registerBinaryBitwise(L *lua.LState, b *Builder, name string, build func(binaryBitwiseArgs) talu.Operation) {
	L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		args := binaryBitwiseArgs{
			dataIn0:       optAddr(L, 2),
			dataIn1:       optAddr(L, 3),
			activationIn:  optAddr(L, 4),
			dataOut0:      optAddr(L, 5),
			activationOut: optAddr(L, 6),
		}
		b.SetTaluConfig(addr, build(args))
		return 0
	}))
}
