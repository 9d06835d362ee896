package register

import (
	"testing"

	"github.com/artpeixoto/fam/internal/wire"
)

func TestReadWrite(t *testing.T) {
	b := New()
	b.Write(5, 42)
	if got := b.Read(5); got != 42 {
		t.Fatalf("Read(5) = %d, want 42", got)
	}
	if got := b.Read(6); got != 0 {
		t.Fatalf("fresh bank should read zero, got %d", got)
	}
}

func TestSatisfyReadWriteRoundTrip(t *testing.T) {
	b := New()
	b.Write(2, 100)

	var r wire.DataReader
	addr := wire.Addr(2)
	r.SetConnection(&addr)
	req, ok := r.GetReadRequest()
	if !ok {
		t.Fatalf("expected an active read request")
	}
	b.SatisfyRead(req)
	v, ok := r.Read()
	if !ok || v != 100 {
		t.Fatalf("expected cached value 100, got %d (ok=%v)", v, ok)
	}

	var w wire.DataWriter
	w.SetConnection(&addr)
	w.Write(7)
	wreq, ok := w.GetWriteRequest()
	if !ok {
		t.Fatalf("expected an active write request")
	}
	b.SatisfyWrite(wreq)
	if got := b.Read(2); got != 7 {
		t.Fatalf("Read(2) after write = %d, want 7", got)
	}
}

func TestProgramCounterAddrInRange(t *testing.T) {
	if ProgramCounterAddr < 0 || int(ProgramCounterAddr) >= Count {
		t.Fatalf("ProgramCounterAddr %d out of register range [0,%d)", ProgramCounterAddr, Count)
	}
}
