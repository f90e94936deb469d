package engine

import (
	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// wire fixes the two operand slots of one processing element.
type wire struct {
	a, b int
}

// Grid owns the PE register array and advances all slots atomically per
// clock tick. No slot ever observes another slot's value from the same
// tick, and no PE output feeds another PE.
type Grid struct {
	shape  systolic.Shape
	pe     ProcessingElement
	wiring []wire
	regs   []uint16
}

// NewGrid creates a grid for the given shape with all registers cleared.
func NewGrid(shape systolic.Shape) *Grid {
	g := &Grid{
		shape: shape,
		regs:  make([]uint16, shape.Cells()),
	}

	// Slot (r, c) registers only the k=0 term of its dot product:
	// A[r, 0] * B[0, c]. The k>0 terms are supplied by the completion
	// network, not by chaining PEs.
	g.wiring = make([]wire, shape.Cells())
	for i := range g.wiring {
		r := i / shape.Cols
		c := i % shape.Cols
		g.wiring[i] = wire{a: shape.AIndex(r, 0), b: shape.BIndex(0, c)}
	}

	return g
}

// Shape returns the grid dimensions.
func (g *Grid) Shape() systolic.Shape {
	return g.shape
}

// Advance applies one clock edge to every slot. All slots read the same
// pre-tick snapshot of the operands; the new values are committed together
// afterwards. On a shape error nothing changes.
func (g *Grid) Advance(reset bool, a, b []uint8) ([]uint16, error) {
	if err := systolic.CheckA(g.shape, a); err != nil {
		return nil, err
	}
	if err := systolic.CheckB(g.shape, b); err != nil {
		return nil, err
	}

	next := make([]uint16, len(g.regs))
	for i, w := range g.wiring {
		// cPrev is wired to the constant 0.
		next[i] = g.pe.Step(reset, a[w.a], b[w.b], 0)
	}

	copy(g.regs, next)

	return next, nil
}

// Registers returns a copy of the PE register array. The array itself is
// owned exclusively by the grid and only Advance may change it.
func (g *Grid) Registers() []uint16 {
	regs := make([]uint16, len(g.regs))
	copy(regs, g.regs)

	return regs
}
