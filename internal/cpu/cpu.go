// Package cpu implements the per-tick execution engine: it materializes
// the current tick's connection set from every active reader/writer wire,
// satisfies reads before running the controller and TALU bank, satisfies
// writes afterward, and rebuilds netlists from the observed connections.
package cpu

import (
	"github.com/artpeixoto/fam/internal/controller"
	"github.com/artpeixoto/fam/internal/memory"
	"github.com/artpeixoto/fam/internal/netlist"
	"github.com/artpeixoto/fam/internal/register"
	"github.com/artpeixoto/fam/internal/talu"
	"github.com/artpeixoto/fam/internal/wire"
)

// CPU owns every component exclusively: register bank, main memory, TALU
// bank, and controller. No other code may reach into them mid-tick.
type CPU struct {
	Registers  *register.Bank
	Memory     *memory.Memory
	Talus      *talu.Bank
	Controller *controller.Controller

	Connections []Connection
	Netlists    *netlist.Netlists[Endpoint]

	isDone bool
}

// New returns a CPU wiring the given components together. The caller is
// responsible for constructing Talus with mainMemory already wired in
// (talu.NewBank) and for loading Controller's instruction reader program
// ahead of time.
func New(registers *register.Bank, mem *memory.Memory, talus *talu.Bank, ctrl *controller.Controller) *CPU {
	return &CPU{
		Registers:  registers,
		Memory:     mem,
		Talus:      talus,
		Controller: ctrl,
		Netlists:   netlist.New[Endpoint](),
	}
}

// IsDone reports whether the program has completed. Completion is
// terminal: once set, Tick never runs another step.
func (c *CPU) IsDone() bool {
	return c.isDone
}

// Tick runs one simulation step and returns whether the program should
// continue. Once the program completes, every subsequent Tick is a no-op
// returning false.
func (c *CPU) Tick() bool {
	if c.isDone {
		return false
	}

	c.Connections = c.Connections[:0]

	c.satisfyControllerReads()
	c.satisfyTaluConfigWrite()

	// The TALU-config writer and register writer are both consumed exactly
	// once, on the tick after controller.Execute() sets them (TaluConfigWriter)
	// or the same tick it sets them (RegisterWriter, consumed below in
	// satisfyControllerWrites). Reset both to Deactivated right after the
	// TALU-config writer's prior value has been applied, and before this
	// tick's Execute call can install a fresh one — otherwise either writer
	// would keep re-firing every subsequent tick instead of pulsing once.
	c.Controller.ResetOutputs()

	c.satisfyTaluReads()

	if !c.Controller.Execute() {
		c.isDone = true
	}

	c.executeTalus()

	c.satisfyTaluWrites()
	c.satisfyControllerWrites()

	c.rebuildNetlists()

	return !c.isDone
}

func (c *CPU) connect(a, b Endpoint) {
	c.Connections = append(c.Connections, NewConnection(a, b))
}

func (c *CPU) satisfyControllerReads() {
	if req, ok := c.Controller.RegisterReader.GetReadRequest(); ok {
		c.connect(ControllerEndpoint(ControllerRegisterReader), RegisterEndpoint(req.Addr(), RegisterOutput))
		c.Registers.SatisfyRead(req)
	}
	if req, ok := c.Controller.InstructionReader.ProgramCounterReader.GetReadRequest(); ok {
		c.connect(ControllerEndpoint(ControllerProgramCounterReader), RegisterEndpoint(req.Addr(), RegisterOutput))
		c.Registers.SatisfyRead(req)
	}
}

func (c *CPU) satisfyTaluConfigWrite() {
	req, ok := c.Controller.TaluConfigWriter.GetConfigWriteRequest()
	if !ok {
		return
	}
	if addr, single := req.Addr(); single {
		c.connect(ControllerEndpoint(ControllerTaluConfigWriter), TaluEndpoint(addr, SetupIn))
	} else {
		for addr := range c.Talus {
			c.connect(ControllerEndpoint(ControllerTaluConfigWriter), TaluEndpoint(addr, SetupIn))
		}
	}
	req.Satisfy(c.Talus)
}

func (c *CPU) satisfyTaluReads() {
	for addr, core := range c.Talus {
		c.satisfyDataRead(TaluEndpoint(addr, DataIn0), &core.DataInput0)
		c.satisfyDataRead(TaluEndpoint(addr, DataIn1), &core.DataInput1)
		c.satisfyActRead(TaluEndpoint(addr, ActivationIn), &core.ActivationIn)
	}
}

func (c *CPU) executeTalus() {
	for _, core := range c.Talus {
		// Latch/SelectPart return ErrUnimplementedOperation and leave their
		// state untouched; every other variant cannot fail.
		_ = core.Execute()
	}
}

func (c *CPU) satisfyTaluWrites() {
	for addr, core := range c.Talus {
		c.satisfyDataWrite(TaluEndpoint(addr, DataOut0), &core.DataOutput0)
		c.satisfyDataWrite(TaluEndpoint(addr, DataOut1), &core.DataOutput1)
		c.satisfyActWrite(TaluEndpoint(addr, ActivationOut), &core.ActivationOut)
	}
}

func (c *CPU) satisfyControllerWrites() {
	if req, ok := c.Controller.RegisterWriter.GetWriteRequest(); ok {
		c.connect(ControllerEndpoint(ControllerRegisterWriter), RegisterEndpoint(req.Addr(), RegisterInput))
		c.Registers.SatisfyWrite(req)
	}
	if req, ok := c.Controller.InstructionReader.ProgramCounterWriter.GetWriteRequest(); ok {
		c.connect(ControllerEndpoint(ControllerProgramCounterWriter), RegisterEndpoint(req.Addr(), RegisterInput))
		c.Registers.SatisfyWrite(req)
	}
}

func (c *CPU) satisfyDataRead(talu Endpoint, r *wire.DataReader) {
	req, ok := r.GetReadRequest()
	if !ok {
		return
	}
	c.connect(talu, RegisterEndpoint(req.Addr(), RegisterOutput))
	c.Registers.SatisfyRead(req)
}

func (c *CPU) satisfyActRead(talu Endpoint, r *wire.ActivationReader) {
	req, ok := r.GetReadRequest()
	if !ok {
		return
	}
	c.connect(talu, RegisterEndpoint(req.Addr(), RegisterOutput))
	c.Registers.SatisfyRead(req)
}

func (c *CPU) satisfyDataWrite(talu Endpoint, w *wire.DataWriter) {
	req, ok := w.GetWriteRequest()
	if !ok {
		return
	}
	c.connect(talu, RegisterEndpoint(req.Addr(), RegisterInput))
	c.Registers.SatisfyWrite(req)
}

func (c *CPU) satisfyActWrite(talu Endpoint, w *wire.ActivationWriter) {
	req, ok := w.GetWriteRequest()
	if !ok {
		return
	}
	c.connect(talu, RegisterEndpoint(req.Addr(), RegisterInput))
	c.Registers.SatisfyWrite(req)
}

func (c *CPU) rebuildNetlists() {
	nl := netlist.New[Endpoint]()
	for _, conn := range c.Connections {
		nl.Join(conn.First, conn.Second)
	}
	c.Netlists = nl
}
