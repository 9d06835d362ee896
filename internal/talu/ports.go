package talu

// PortFlow is the direction a port's signal travels, seen from the core.
type PortFlow int

const (
	FlowIn PortFlow = iota
	FlowOut
)

// PortKind is a port's semantic signal type.
type PortKind int

const (
	KindData PortKind = iota
	KindActivation
	KindSetup
)

// PortInfo describes a single port for the rendering collaborator: which
// way its signal flows, what kind of signal it carries, and whether the
// currently configured operation has it connected to a register.
type PortInfo struct {
	Flow      PortFlow
	Kind      PortKind
	Connected bool
}

// PortsInfo holds the PortInfo of each of a core's seven ports.
type PortsInfo struct {
	DataIn0       PortInfo
	DataIn1       PortInfo
	ActivationIn  PortInfo
	DataOut0      PortInfo
	DataOut1      PortInfo
	ActivationOut PortInfo
	SetupIn       PortInfo
}

// PortsInfo reports the flow, kind and connected state of every port under
// the current operation. SetupIn is always connected: it is the
// configuration path itself, wired by the tick engine rather than by the
// operation's PortConfig.
func (c *Core) PortsInfo() PortsInfo {
	return PortsInfo{
		DataIn0:       PortInfo{Flow: FlowIn, Kind: KindData, Connected: c.DataInput0.IsActive()},
		DataIn1:       PortInfo{Flow: FlowIn, Kind: KindData, Connected: c.DataInput1.IsActive()},
		ActivationIn:  PortInfo{Flow: FlowIn, Kind: KindActivation, Connected: c.ActivationIn.IsActive()},
		DataOut0:      PortInfo{Flow: FlowOut, Kind: KindData, Connected: c.DataOutput0.IsActive()},
		DataOut1:      PortInfo{Flow: FlowOut, Kind: KindData, Connected: c.DataOutput1.IsActive()},
		ActivationOut: PortInfo{Flow: FlowOut, Kind: KindActivation, Connected: c.ActivationOut.IsActive()},
		SetupIn:       PortInfo{Flow: FlowIn, Kind: KindSetup, Connected: true},
	}
}
