// Package register implements the fixed-size CPU register bank. It is not
// safe for concurrent use: the tick engine is single-threaded by design,
// so no mutex guards these reads/writes.
package register

import (
	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

// Count is the fixed number of registers in the bank.
const Count = 64

// ProgramCounterAddr is the reserved register address the controller's
// instruction reader uses for the program counter.
const ProgramCounterAddr wire.Addr = 63

// Bank is a fixed array of Count word cells, indexed by address.
type Bank struct {
	cells [Count]word.Word
}

// New returns a zeroed register bank.
func New() *Bank {
	return &Bank{}
}

// Read returns the value stored at addr. Address bounds are a contract
// invariant enforced at configuration time: out-of-range addresses panic
// via the array index rather than being checked here.
func (b *Bank) Read(addr wire.Addr) word.Word {
	return b.cells[addr]
}

// Write stores v at addr.
func (b *Bank) Write(addr wire.Addr, v word.Word) {
	b.cells[addr] = v
}

// SatisfyRead applies a read request, copying the bank's value at the
// request's address into the reader's cache.
func (b *Bank) SatisfyRead(req wire.ReadRequest) {
	req.Satisfy(b.Read(req.Addr()))
}

// SatisfyWrite applies a write request to the bank.
func (b *Bank) SatisfyWrite(req wire.WriteRequest) {
	b.Write(req.Addr(), req.Value())
}
