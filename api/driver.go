// Package api defines the driver API for the systolic engine testbench.
package api

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// Driver provides the interface to stimulate the engine and collect its
// outputs, one vector per clock cycle.
type Driver interface {
	// RegisterCore connects the driver to a port-level engine model.
	RegisterCore(device systolic.Device)

	// FeedIn queues stimulus vectors; each is applied on its own cycle
	// in order. Vectors are validated up front: a shape error rejects
	// the whole batch and queues nothing.
	FeedIn(vectors []systolic.Vector) error

	// Collect appends each cycle's finalized output matrix to dst, in
	// cycle order.
	Collect(dst *[][]uint16)

	// Run runs all queued stimulus to completion.
	Run()
}

type portFactory interface {
	make(c sim.Component, name string) sim.Port
}

type driverImpl struct {
	*sim.TickingComponent

	device      systolic.Device
	portFactory portFactory

	stimulusOut sim.Port
	resultIn    sim.Port

	pending  []systolic.Vector
	collects []*[][]uint16
}

// Tick runs the driver for one cycle.
func (d *driverImpl) Tick() (madeProgress bool) {
	madeProgress = d.doFeedIn() || madeProgress
	madeProgress = d.doCollect() || madeProgress

	return madeProgress
}

func (d *driverImpl) doFeedIn() bool {
	if len(d.pending) == 0 {
		return false
	}

	if !d.stimulusOut.CanSend() {
		return false
	}

	v := d.pending[0]
	msg := systolic.StimulusMsgBuilder{}.
		WithSrc(d.stimulusOut.AsRemote()).
		WithDst(d.device.StimulusPort().AsRemote()).
		WithReset(v.Reset).
		WithOperands(v.A, v.B).
		Build()
	if err := d.stimulusOut.Send(msg); err != nil {
		panic("engine cannot handle the stimulus rate")
	}

	d.pending = d.pending[1:]

	return true
}

func (d *driverImpl) doCollect() bool {
	item := d.resultIn.PeekIncoming()
	if item == nil {
		return false
	}

	msg := item.(*systolic.ResultMsg)
	for _, dst := range d.collects {
		*dst = append(*dst, msg.C)
	}

	d.resultIn.RetrieveIncoming()

	return true
}

// RegisterCore connects the driver to a port-level engine model with one
// direct connection per port pair.
func (d *driverImpl) RegisterCore(device systolic.Device) {
	d.device = device

	d.stimulusOut = d.portFactory.make(d, d.Name()+".Stimulus")
	d.resultIn = d.portFactory.make(d, d.Name()+".Result")
	d.AddPort("Stimulus", d.stimulusOut)
	d.AddPort("Result", d.resultIn)

	d.connect(d.stimulusOut, device.StimulusPort(), ".StimulusConn")
	d.connect(d.resultIn, device.ResultPort(), ".ResultConn")

	device.SetResultRemote(d.resultIn.AsRemote())
}

func (d *driverImpl) connect(local, remote sim.Port, suffix string) {
	conn := directconnection.MakeBuilder().
		WithEngine(d.Engine).
		WithFreq(d.Freq).
		Build(d.Name() + suffix)
	conn.PlugIn(local)
	conn.PlugIn(remote)
}

// FeedIn queues stimulus vectors for upcoming cycles.
func (d *driverImpl) FeedIn(vectors []systolic.Vector) error {
	shape := d.device.Shape()
	for _, v := range vectors {
		if err := systolic.CheckVector(shape, v); err != nil {
			return err
		}
	}

	d.pending = append(d.pending, vectors...)

	return nil
}

// Collect registers a destination for per-cycle outputs.
func (d *driverImpl) Collect(dst *[][]uint16) {
	d.collects = append(d.collects, dst)
}

// Run runs all the queued stimulus in the driver.
func (d *driverImpl) Run() {
	d.TickNow()
	if err := d.Engine.Run(); err != nil {
		panic(err)
	}
}
