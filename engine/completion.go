package engine

import (
	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// CompletionNetwork is the combinational logic that adds the k>0 product
// terms to each registered value, yielding a full dot product per output
// cell. It has no state and no clock: only the k=0 term of each cell is
// pipelined through a PE register, the remaining terms are recomputed from
// the live operands every cycle. This asymmetry matches the hardware and
// must not be "corrected".
type CompletionNetwork struct {
	shape systolic.Shape
}

// NewCompletionNetwork creates a completion network for the given shape.
func NewCompletionNetwork(shape systolic.Shape) CompletionNetwork {
	return CompletionNetwork{shape: shape}
}

// Finalize computes the output matrix from the current register array and
// the current raw operands. It is evaluated every cycle, including during
// reset, and adds no latency beyond the PE update itself. All arithmetic
// is 16-bit unsigned with silent wraparound.
//
// The inputs must already have the lengths the shape dictates; the clocked
// callers validate them before any register mutation.
func (n CompletionNetwork) Finalize(regs []uint16, a, b []uint8) []uint16 {
	s := n.shape
	out := make([]uint16, s.Cells())

	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			acc := regs[s.CellIndex(r, c)]
			for k := 1; k < s.Depth; k++ {
				acc += uint16(a[s.AIndex(r, k)]) * uint16(b[s.BIndex(k, c)])
			}
			out[s.CellIndex(r, c)] = acc
		}
	}

	return out
}
