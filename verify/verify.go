// Package verify provides debugging tools for engine runs.
//
// It implements two complementary stages:
//
//  1. Static lint (lint.go): structural checks on a stimulus schedule,
//     covering operand shapes and the documented cold-start convention
//     (reset held for at least two ticks before the first live cycle).
//
//  2. Reference replay (verify.go): the same schedule replayed on a fresh
//     functional model, giving the per-cycle outputs a port-level run must
//     reproduce exactly, including outputs produced while reset is
//     asserted.
//
// Report (report.go) combines both stages with a cell-by-cell comparison
// of collected outputs.
package verify

import (
	"github.com/harshithparitala/systolic-array-3x3-matrix/engine"
	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// Reference replays a stimulus schedule on a fresh functional model and
// returns the finalized outputs of every cycle in order.
func Reference(
	shape systolic.Shape,
	vectors []systolic.Vector,
) ([][]uint16, error) {
	d := engine.NewDriver(shape)

	outs := make([][]uint16, 0, len(vectors))
	for _, v := range vectors {
		d.Reset(v.Reset)
		if err := d.Tick(v.A, v.B); err != nil {
			return nil, err
		}
		outs = append(outs, d.ReadOutputs())
	}

	return outs, nil
}
