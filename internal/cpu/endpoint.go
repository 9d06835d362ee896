package cpu

import "github.com/artpeixoto/fam/internal/wire"

// EndpointKind selects which of the four connection-endpoint variants an
// Endpoint holds.
type EndpointKind int

const (
	EndpointRegister EndpointKind = iota
	EndpointTalu
	EndpointController
	EndpointMainMemory
)

// RegisterPort is the closed set of register port names.
type RegisterPort int

const (
	RegisterInput RegisterPort = iota
	RegisterOutput
)

// TaluPort is the closed set of TALU port names.
type TaluPort int

const (
	DataIn0 TaluPort = iota
	DataIn1
	ActivationIn
	DataOut0
	DataOut1
	ActivationOut
	SetupIn
)

// ControllerPort is the closed set of controller port names.
type ControllerPort int

const (
	ControllerRegisterReader ControllerPort = iota
	ControllerRegisterWriter
	ControllerProgramCounterReader
	ControllerProgramCounterWriter
	ControllerTaluConfigWriter
	ControllerMainMemoryReader
)

// Endpoint is the CpuConnectionEndpoint tagged union: Register(addr, port)
// | Talu(addr, port) | Controller(port) | MainMemory. It is a plain
// comparable struct (not an interface) so values can key maps directly —
// Connection and the netlist/router layers both rely on that.
type Endpoint struct {
	Kind EndpointKind

	RegAddr wire.Addr
	RegPort RegisterPort

	TaluAddr int
	TaluPort TaluPort

	ControllerPort ControllerPort
}

// RegisterEndpoint builds a Register(addr, port) endpoint.
func RegisterEndpoint(addr wire.Addr, port RegisterPort) Endpoint {
	return Endpoint{Kind: EndpointRegister, RegAddr: addr, RegPort: port}
}

// TaluEndpoint builds a Talu(addr, port) endpoint.
func TaluEndpoint(addr int, port TaluPort) Endpoint {
	return Endpoint{Kind: EndpointTalu, TaluAddr: addr, TaluPort: port}
}

// ControllerEndpoint builds a Controller(port) endpoint.
func ControllerEndpoint(port ControllerPort) Endpoint {
	return Endpoint{Kind: EndpointController, ControllerPort: port}
}

// MainMemoryEndpoint is the single MainMemory endpoint.
func MainMemoryEndpoint() Endpoint {
	return Endpoint{Kind: EndpointMainMemory}
}

// key reduces an Endpoint to a totally ordered tuple: Kind first
// (Register < Talu < Controller < MainMemory), then variant-specific
// fields.
func (e Endpoint) key() [4]int {
	switch e.Kind {
	case EndpointRegister:
		return [4]int{int(EndpointRegister), int(e.RegAddr), int(e.RegPort), 0}
	case EndpointTalu:
		return [4]int{int(EndpointTalu), e.TaluAddr, int(e.TaluPort), 0}
	case EndpointController:
		return [4]int{int(EndpointController), int(e.ControllerPort), 0, 0}
	default:
		return [4]int{int(EndpointMainMemory), 0, 0, 0}
	}
}

// less reports whether e sorts before other under the canonical total
// order used to pick a Connection's first/second endpoint.
func (e Endpoint) less(other Endpoint) bool {
	a, b := e.key(), other.key()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Less exposes the same total order publicly so other packages (notably
// the router, which needs a stable iteration order over a tick's
// connections) can sort endpoints without duplicating the comparison.
func (e Endpoint) Less(other Endpoint) bool {
	return e.less(other)
}
