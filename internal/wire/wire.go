// Package wire implements the typed port reader/writer primitives that
// connect a component port to a register address for the duration of a
// tick, and the request-handle pattern the CPU tick engine uses to
// decouple "declare what this wire wants" from "apply the effect".
//
// A reader or writer with no configured register address is Deactivated and
// contributes nothing to a tick's connection set. Once configured, it stays
// Active/Connected until explicitly reconfigured — reconfiguration always
// clears any cached value, so callers never observe a stale read across a
// config change.
package wire

import "github.com/artpeixoto/fam/internal/word"

// Addr is a register address as seen from a wire's perspective. It is
// defined here (rather than imported from the register package) to avoid
// an import cycle: both wire and register are leaves, and wires only need
// the bare integer, not the bank.
type Addr int

// DataReader is a two-state machine: Deactivated, or Active and pointed at
// a source register address, optionally holding a cached value satisfied
// earlier this tick.
type DataReader struct {
	active bool
	source Addr
	cached *word.Word
}

// SetConnection points the reader at addr, or deactivates it when addr is
// nil. Any previously cached value is discarded.
func (r *DataReader) SetConnection(addr *Addr) {
	if addr == nil {
		r.active = false
		r.cached = nil
		return
	}
	r.active = true
	r.source = *addr
	r.cached = nil
}

// IsActive reports whether the reader is configured to read from a register.
func (r *DataReader) IsActive() bool {
	return r.active
}

// Source returns the configured source address and whether the reader is
// active.
func (r *DataReader) Source() (Addr, bool) {
	return r.source, r.active
}

// Read returns the cached value satisfied earlier this tick, if any.
func (r *DataReader) Read() (word.Word, bool) {
	if r.cached == nil {
		return 0, false
	}
	return *r.cached, true
}

// ReadRequest is a handle borrowing the reader's source address and cache
// slot. It is produced once per tick by GetReadRequest and consumed exactly
// once by Satisfy, which is the only code path permitted to populate the
// cache.
type ReadRequest struct {
	addr  Addr
	cache *word.Word
}

// GetReadRequest returns a request handle when the reader is active, or
// false otherwise. The handle must be satisfied (or discarded) before the
// next tick reconfigures the reader.
func (r *DataReader) GetReadRequest() (ReadRequest, bool) {
	if !r.active {
		return ReadRequest{}, false
	}
	if r.cached == nil {
		r.cached = new(word.Word)
	}
	return ReadRequest{addr: r.source, cache: r.cached}, true
}

// Addr returns the register address this request reads from.
func (req ReadRequest) Addr() Addr {
	return req.addr
}

// Satisfy copies v — the value read from the source register bank — into
// the reader's cache slot.
func (req ReadRequest) Satisfy(v word.Word) {
	*req.cache = v
}

// DataWriter is a two-state machine: Deactivated, or Connected to a target
// register address with an optional pending value to be applied this tick.
type DataWriter struct {
	connected bool
	target    Addr
	pending   *word.Word
}

// SetConnection points the writer at addr, or deactivates it when addr is
// nil. Any previously pending value is discarded.
func (w *DataWriter) SetConnection(addr *Addr) {
	if addr == nil {
		w.connected = false
		w.pending = nil
		return
	}
	w.connected = true
	w.target = *addr
	w.pending = nil
}

// IsActive reports whether the writer is configured to write to a register.
func (w *DataWriter) IsActive() bool {
	return w.connected
}

// Target returns the configured target address and whether the writer is
// connected.
func (w *DataWriter) Target() (Addr, bool) {
	return w.target, w.connected
}

// Write stages v to be applied to the target register this tick.
func (w *DataWriter) Write(v word.Word) {
	if !w.connected {
		return
	}
	val := v
	w.pending = &val
}

// Clear discards any pending value without deactivating the writer.
func (w *DataWriter) Clear() {
	w.pending = nil
}

// WriteRequest is a handle borrowing the writer's target address and
// pending value. Produced once per tick by GetWriteRequest, consumed once
// by Satisfy.
type WriteRequest struct {
	addr  Addr
	value word.Word
}

// GetWriteRequest returns a request handle when the writer is connected and
// holds a pending value, or false otherwise.
func (w *DataWriter) GetWriteRequest() (WriteRequest, bool) {
	if !w.connected || w.pending == nil {
		return WriteRequest{}, false
	}
	return WriteRequest{addr: w.target, value: *w.pending}, true
}

// Addr returns the register address this request writes to.
func (req WriteRequest) Addr() Addr {
	return req.addr
}

// Value returns the value this request will apply.
func (req WriteRequest) Value() word.Word {
	return req.value
}

// ActivationReader wraps a DataReader, coercing the cached word to an
// Activation on read.
type ActivationReader struct {
	inner DataReader
}

func (r *ActivationReader) SetConnection(addr *Addr) { r.inner.SetConnection(addr) }
func (r *ActivationReader) IsActive() bool           { return r.inner.IsActive() }
func (r *ActivationReader) GetReadRequest() (ReadRequest, bool) {
	return r.inner.GetReadRequest()
}
func (r *ActivationReader) Read() (word.Activation, bool) {
	v, ok := r.inner.Read()
	if !ok {
		return word.Inactive, false
	}
	return v.ToActivation(), true
}

// ActivationWriter wraps a DataWriter, coercing a written Activation to its
// all-ones/zero word encoding.
type ActivationWriter struct {
	inner DataWriter
}

func (w *ActivationWriter) SetConnection(addr *Addr) { w.inner.SetConnection(addr) }
func (w *ActivationWriter) IsActive() bool           { return w.inner.IsActive() }
func (w *ActivationWriter) Clear()           { w.inner.Clear() }
func (w *ActivationWriter) Write(active bool) { w.inner.Write(word.ToWord(active)) }
func (w *ActivationWriter) GetWriteRequest() (WriteRequest, bool) {
	return w.inner.GetWriteRequest()
}
