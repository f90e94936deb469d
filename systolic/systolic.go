// Package systolic defines the commonly used data structures for the
// systolic matrix-multiplication engine.
package systolic

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Shape fixes the dimensions of the engine: the product of a Rows x Depth
// operand matrix A and a Depth x Cols operand matrix B. The documented
// hardware is 3x3x3; the wiring is derived from the shape rather than
// duplicated per instance.
type Shape struct {
	Rows, Cols, Depth int
}

// Default3x3 returns the shape of the documented hardware.
func Default3x3() Shape {
	return Shape{Rows: 3, Cols: 3, Depth: 3}
}

// Cells returns the number of output cells, which is also the number of
// processing elements.
func (s Shape) Cells() int {
	return s.Rows * s.Cols
}

// ASize returns the length of a flattened A operand matrix.
func (s Shape) ASize() int {
	return s.Rows * s.Depth
}

// BSize returns the length of a flattened B operand matrix.
func (s Shape) BSize() int {
	return s.Depth * s.Cols
}

// CellIndex returns the row-major flattened index of output cell (r, c).
func (s Shape) CellIndex(r, c int) int {
	return r*s.Cols + c
}

// AIndex returns the row-major flattened index of A[r, k].
func (s Shape) AIndex(r, k int) int {
	return r*s.Depth + k
}

// BIndex returns the row-major flattened index of B[k, c].
func (s Shape) BIndex(k, c int) int {
	return k*s.Cols + c
}

// A Vector is the stimulus applied during one clock cycle: the level of the
// reset line and the two operand matrices, flattened row-major.
type Vector struct {
	Reset bool
	A, B  []uint8
}

// ColdStart returns the documented bring-up schedule for the given operands:
// reset held asserted for two ticks, then one live tick with the operands
// stable. The outputs are valid after the last vector.
func ColdStart(a, b []uint8) []Vector {
	return []Vector{
		{Reset: true, A: a, B: b},
		{Reset: true, A: a, B: b},
		{Reset: false, A: a, B: b},
	}
}

// Device is a port-level model of the engine. The stimulus driver connects
// to its ports and feeds one Vector per cycle.
type Device interface {
	StimulusPort() sim.Port
	ResultPort() sim.Port

	// SetResultRemote tells the device where finalized outputs go.
	SetResultRemote(port sim.RemotePort)

	Shape() Shape
}
