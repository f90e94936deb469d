// Package core wraps the functional model as a clocked simulation
// component. It presents the hardware port contract: a stimulus port
// carrying the reset line and the flattened A/B operands each cycle, and a
// result port carrying the flattened C outputs of the same cycle.
package core

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/harshithparitala/systolic-array-3x3-matrix/engine"
	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// Core is the engine as a ticking component. Each engine-clock tick
// consumes at most one StimulusMsg, applies it to the model, and emits a
// ResultMsg with the same-cycle finalized outputs. There is no added
// latency: the outputs are combinational with respect to the registers the
// stimulus just committed.
type Core struct {
	*sim.TickingComponent

	model *engine.Driver

	stimulus     sim.Port
	result       sim.Port
	resultRemote sim.RemotePort
}

// Shape returns the engine dimensions.
func (c *Core) Shape() systolic.Shape {
	return c.model.Shape()
}

// StimulusPort returns the port stimulus vectors arrive on.
func (c *Core) StimulusPort() sim.Port {
	return c.stimulus
}

// ResultPort returns the port finalized outputs leave on.
func (c *Core) ResultPort() sim.Port {
	return c.result
}

// SetResultRemote sets the destination of the result messages.
func (c *Core) SetResultRemote(port sim.RemotePort) {
	c.resultRemote = port
}

// Model returns the underlying functional model, for state inspection.
func (c *Core) Model() *engine.Driver {
	return c.model
}

// Tick runs the engine for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	return c.doStep()
}

func (c *Core) doStep() bool {
	item := c.stimulus.PeekIncoming()
	if item == nil {
		return false
	}

	// The cycle commits as a whole. If the result cannot leave, the
	// stimulus is not consumed and no register changes.
	if !c.result.CanSend() {
		return false
	}

	msg, ok := item.(*systolic.StimulusMsg)
	if !ok {
		panic(fmt.Sprintf("unexpected message type %T on stimulus port", item))
	}

	c.model.Reset(msg.Reset)
	if err := c.model.Tick(msg.A, msg.B); err != nil {
		// Shape errors are caught at the driver API boundary; a
		// malformed stimulus on the wire is a harness bug.
		panic(err)
	}

	rsp := systolic.ResultMsgBuilder{}.
		WithSrc(c.result.AsRemote()).
		WithDst(c.resultRemote).
		WithOutputs(c.model.ReadOutputs()).
		Build()
	if err := c.result.Send(rsp); err != nil {
		panic("engine cannot handle the result rate")
	}

	c.stimulus.RetrieveIncoming()

	engine.Trace("CoreStep",
		"Component", c.Name(),
		"Cycle", c.model.Cycle(),
		"State", c.model.State().Name(),
		"Reset", msg.Reset,
	)

	return true
}
