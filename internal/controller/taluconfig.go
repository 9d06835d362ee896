package controller

import "github.com/artpeixoto/fam/internal/talu"

// TaluConfigWriterKind selects which of the three TaluConfigWriter states
// is active.
type TaluConfigWriterKind int

const (
	Deactivated TaluConfigWriterKind = iota
	WritingToSingle
	WritingToAll
)

// TaluConfigWriter is the controller's out-of-band configuration channel
// to the TALU bank: either silent, targeting one TALU, or broadcasting to
// every TALU.
type TaluConfigWriter struct {
	Kind     TaluConfigWriterKind
	TaluAddr int
	Op       talu.Operation
}

// TaluConfigWriteRequest is the handle produced by
// TaluConfigWriter.GetConfigWriteRequest and consumed by Satisfy, mirroring
// the reader/writer request-handle pattern used throughout the tick engine.
type TaluConfigWriteRequest struct {
	addr    *int
	op      talu.Operation
	allTalu bool
}

// Addr returns the single TALU address this request targets, or false when
// it targets every TALU.
func (r TaluConfigWriteRequest) Addr() (int, bool) {
	if r.addr == nil {
		return 0, false
	}
	return *r.addr, true
}

// Satisfy applies the configuration to bank: one core when targeted, every
// core when broadcasting.
func (r TaluConfigWriteRequest) Satisfy(bank *talu.Bank) {
	if r.addr != nil {
		bank[*r.addr].SetNewOperation(r.op)
		return
	}
	for _, core := range bank {
		core.SetNewOperation(r.op)
	}
}

// GetConfigWriteRequest returns a request handle when the writer is not
// Deactivated.
func (w TaluConfigWriter) GetConfigWriteRequest() (TaluConfigWriteRequest, bool) {
	switch w.Kind {
	case WritingToSingle:
		addr := w.TaluAddr
		return TaluConfigWriteRequest{addr: &addr, op: w.Op}, true
	case WritingToAll:
		return TaluConfigWriteRequest{addr: nil, op: w.Op, allTalu: true}, true
	default:
		return TaluConfigWriteRequest{}, false
	}
}
