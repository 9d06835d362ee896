package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinClosure(t *testing.T) {
	n := New[string]()
	n.Join("A", "B")
	n.Join("B", "C")

	assert.True(t, n.Same("A", "C"), "A and C should share a netlist via B")
	assert.True(t, n.Same("A", "B"))
	assert.True(t, n.Same("B", "C"))
}

func TestJoinOrderIndependent(t *testing.T) {
	// Union-find must not undersplit regardless of the order connections
	// arrive in, unlike the union-by-insertion scheme it replaces.
	forward := New[string]()
	forward.Join("A", "B")
	forward.Join("C", "D")
	forward.Join("B", "C")

	backward := New[string]()
	backward.Join("B", "C")
	backward.Join("C", "D")
	backward.Join("A", "B")

	assert.True(t, forward.Same("A", "D"))
	assert.True(t, backward.Same("A", "D"))
}

func TestUnobservedEndpointsAreSingleton(t *testing.T) {
	n := New[string]()
	n.Join("A", "B")
	assert.False(t, n.Same("A", "Z"))
	assert.False(t, n.Same("Z", "Y"))
	assert.True(t, n.Same("Z", "Z"))
}

func TestIDsGroupSharedRoots(t *testing.T) {
	n := New[string]()
	n.Join("A", "B")
	n.Join("C", "D")

	ids := n.IDs()
	assert.Equal(t, ids["A"], ids["B"])
	assert.Equal(t, ids["C"], ids["D"])
	assert.NotEqual(t, ids["A"], ids["C"])
}
