package cpu

// Connection is an unordered pair of endpoints, canonicalized by the total
// order on Endpoint so {A,B} == {B,A}. Both fields are plain comparable
// values, so Connection itself is comparable and can key maps (paths,
// forbidden sets) directly.
type Connection struct {
	First  Endpoint
	Second Endpoint
}

// NewConnection returns the canonical Connection over a and b: the
// endpoint that sorts first under Endpoint's total order becomes First.
func NewConnection(a, b Endpoint) Connection {
	if b.less(a) {
		a, b = b, a
	}
	return Connection{First: a, Second: b}
}

// Less extends Endpoint's total order to Connection, comparing First and
// then Second. Used by the router to process a tick's connections in a
// stable, deterministic order.
func (c Connection) Less(other Connection) bool {
	if c.First != other.First {
		return c.First.Less(other.First)
	}
	return c.Second.Less(other.Second)
}
