package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artpeixoto/fam/internal/word"
)

func TestDataReaderLifecycle(t *testing.T) {
	var r DataReader
	assert.False(t, r.IsActive())

	_, ok := r.GetReadRequest()
	assert.False(t, ok, "inactive reader should not yield a request")

	addr := Addr(7)
	r.SetConnection(&addr)
	assert.True(t, r.IsActive())

	_, ok = r.Read()
	assert.False(t, ok, "unsatisfied reader should have no cached value")

	req, ok := r.GetReadRequest()
	assert.True(t, ok)
	assert.Equal(t, addr, req.Addr())
	req.Satisfy(42)

	v, ok := r.Read()
	assert.True(t, ok)
	assert.Equal(t, word.Word(42), v)

	r.SetConnection(nil)
	assert.False(t, r.IsActive())
	_, ok = r.Read()
	assert.False(t, ok, "deactivated reader should not retain its cache")
}

func TestDataWriterLifecycle(t *testing.T) {
	var w DataWriter
	w.Write(5) // no-op: not yet connected

	_, ok := w.GetWriteRequest()
	assert.False(t, ok)

	addr := Addr(3)
	w.SetConnection(&addr)
	_, ok = w.GetWriteRequest()
	assert.False(t, ok, "connected writer with no pending value yields no request")

	w.Write(99)
	req, ok := w.GetWriteRequest()
	assert.True(t, ok)
	assert.Equal(t, addr, req.Addr())
	assert.Equal(t, word.Word(99), req.Value())

	w.Clear()
	_, ok = w.GetWriteRequest()
	assert.False(t, ok, "Clear should remove the pending value without deactivating")
	assert.True(t, w.IsActive())
}

func TestActivationReaderWriterCoercion(t *testing.T) {
	var r ActivationReader
	addr := Addr(1)
	r.SetConnection(&addr)
	req, ok := r.GetReadRequest()
	assert.True(t, ok)
	req.Satisfy(word.ToWord(true))

	act, ok := r.Read()
	assert.True(t, ok)
	assert.Equal(t, word.Active, act)

	var w ActivationWriter
	w.SetConnection(&addr)
	w.Write(true)
	wreq, ok := w.GetWriteRequest()
	assert.True(t, ok)
	assert.Equal(t, word.Word(-1), wreq.Value())

	w.Write(false)
	wreq, ok = w.GetWriteRequest()
	assert.True(t, ok)
	assert.Equal(t, word.Word(0), wreq.Value())
}
