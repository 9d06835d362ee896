package router

import (
	"errors"
	"fmt"

	"github.com/artpeixoto/fam/internal/cpu"
)

// InvalidPointReason classifies why a connection's starting or ending
// point was rejected before search even began.
type InvalidPointReason int

const (
	OutOfBounds InvalidPointReason = iota
	Blocked
	InAnotherPath
)

func (r InvalidPointReason) String() string {
	switch r {
	case OutOfBounds:
		return "out of bounds"
	case Blocked:
		return "blocked"
	case InAnotherPath:
		return "in another path"
	default:
		return "unknown reason"
	}
}

// Sentinel errors a *PathError wraps, so callers can use errors.Is without
// inspecting PathError's fields.
var (
	ErrInvalidStartingPoint = errors.New("fam: invalid starting point")
	ErrInvalidEndingPoint   = errors.New("fam: invalid ending point")
	ErrNoPathFound          = errors.New("fam: no path found")
)

// PathError is the router's single error type, surfacing which connection
// failed to route and why.
type PathError struct {
	Connection cpu.Connection
	Reason     InvalidPointReason // only meaningful when wrapping Err*InvalidPoint
	err        error
}

func (e *PathError) Error() string {
	if e.err == ErrNoPathFound {
		return fmt.Sprintf("fam: no path found for connection %+v", e.Connection)
	}
	return fmt.Sprintf("%s: connection %+v (%s)", e.err, e.Connection, e.Reason)
}

func (e *PathError) Unwrap() error {
	return e.err
}

func invalidStart(conn cpu.Connection, reason InvalidPointReason) error {
	return &PathError{Connection: conn, Reason: reason, err: ErrInvalidStartingPoint}
}

func invalidEnd(conn cpu.Connection, reason InvalidPointReason) error {
	return &PathError{Connection: conn, Reason: reason, err: ErrInvalidEndingPoint}
}

func noPathFound(conn cpu.Connection) error {
	return &PathError{Connection: conn, err: ErrNoPathFound}
}
