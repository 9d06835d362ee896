// Package memory implements FAM's main memory: a word-indexed store sized
// from the loaded program image at construction time. Like register.Bank,
// it carries no concurrency guards of its own — the tick engine is the
// only caller, and it calls in single file.
package memory

import (
	"fmt"

	"github.com/artpeixoto/fam/internal/wire"
	"github.com/artpeixoto/fam/internal/word"
)

// Memory is a fixed-size, word-addressed store. Its size is fixed at
// construction to the loaded image's length; it never grows or shrinks
// afterward.
type Memory struct {
	cells []word.Word
}

// New returns a Memory of size words, all zeroed.
func New(size int) *Memory {
	return &Memory{cells: make([]word.Word, size)}
}

// FromImage returns a Memory initialized from image, copied so the caller's
// slice may be reused or mutated afterward.
func FromImage(image []word.Word) *Memory {
	cells := make([]word.Word, len(image))
	copy(cells, image)
	return &Memory{cells: cells}
}

// Len returns the number of addressable words.
func (m *Memory) Len() int {
	return len(m.cells)
}

// Read returns the value at addr. Out-of-range access is a fatal contract
// violation at the core level: it panics rather than returning an error,
// matching register.Bank — addressing is validated at configuration time,
// not at every access.
func (m *Memory) Read(addr int) word.Word {
	if addr < 0 || addr >= len(m.cells) {
		panic(fmt.Sprintf("memory: read out of range: addr=%d len=%d", addr, len(m.cells)))
	}
	return m.cells[addr]
}

// Write stores v at addr, panicking on out-of-range addr.
func (m *Memory) Write(addr int, v word.Word) {
	if addr < 0 || addr >= len(m.cells) {
		panic(fmt.Sprintf("memory: write out of range: addr=%d len=%d", addr, len(m.cells)))
	}
	m.cells[addr] = v
}

// SatisfyRead applies a wire read request against this memory, treating the
// request's register address as a plain integer index.
func (m *Memory) SatisfyRead(req wire.ReadRequest) {
	req.Satisfy(m.Read(int(req.Addr())))
}

// SatisfyWrite applies a wire write request against this memory.
func (m *Memory) SatisfyWrite(req wire.WriteRequest) {
	m.Write(int(req.Addr()), req.Value())
}
