package engine

import (
	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// State identifies the driver's clock/reset state machine state.
type State int

const (
	StateReset State = iota
	StateRun
)

// Name returns the name of the state.
func (s State) Name() string {
	switch s {
	case StateReset:
		return "RESET"
	case StateRun:
		return "RUN"
	default:
		panic("invalid state")
	}
}

// Driver is the clock/reset state machine. It steps the grid and the
// completion network once per tick and exposes the engine to external
// stimulus. The register array is reachable only through its accessors.
type Driver struct {
	shape systolic.Shape
	grid  *Grid
	net   CompletionNetwork

	// resetLine is level-sensitive and sampled at each tick. It powers
	// up asserted, so the machine starts in RESET.
	resetLine bool
	state     State
	outputs   []uint16
	cycle     uint64
}

// NewDriver creates a driver with cleared registers, the reset line
// asserted, and all-zero outputs.
func NewDriver(shape systolic.Shape) *Driver {
	return &Driver{
		shape:     shape,
		grid:      NewGrid(shape),
		net:       NewCompletionNetwork(shape),
		resetLine: true,
		state:     StateReset,
		outputs:   make([]uint16, shape.Cells()),
	}
}

// Reset sets the reset line. The new level takes effect at the next Tick;
// it may be reasserted at any time.
func (d *Driver) Reset(assert bool) {
	d.resetLine = assert
}

// Tick advances one clock cycle: the grid commits new register values
// from the supplied operands and the current reset level, then the
// completion network recomputes the outputs from the new registers and
// the same operands. A shape error leaves every register and the outputs
// unchanged.
func (d *Driver) Tick(a, b []uint8) error {
	regs, err := d.grid.Advance(d.resetLine, a, b)
	if err != nil {
		return err
	}

	if d.resetLine {
		d.state = StateReset
	} else {
		d.state = StateRun
	}

	d.outputs = d.net.Finalize(regs, a, b)
	d.cycle++

	Trace("Tick",
		"Cycle", d.cycle,
		"State", d.state.Name(),
		"Reset", d.resetLine,
	)

	return nil
}

// ReadOutputs returns the most recently finalized output matrix. It is
// valid immediately after any Tick, including ticks taken during reset,
// and never mutates engine state.
func (d *Driver) ReadOutputs() []uint16 {
	out := make([]uint16, len(d.outputs))
	copy(out, d.outputs)

	return out
}

// Registers returns a copy of the PE register array.
func (d *Driver) Registers() []uint16 {
	return d.grid.Registers()
}

// State returns the state entered by the most recent tick.
func (d *Driver) State() State {
	return d.state
}

// Cycle returns the number of ticks taken so far.
func (d *Driver) Cycle() uint64 {
	return d.cycle
}

// Shape returns the engine dimensions.
func (d *Driver) Shape() systolic.Shape {
	return d.shape
}
