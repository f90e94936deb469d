package engine

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderOperandMatrix renders a flattened 8-bit operand matrix as a table.
func RenderOperandMatrix(title string, rows, cols int, vals []uint8) string {
	wide := make([]uint16, len(vals))
	for i, v := range vals {
		wide[i] = uint16(v)
	}

	return RenderOutputMatrix(title, rows, cols, wide)
}

// RenderOutputMatrix renders a flattened 16-bit matrix as a table.
func RenderOutputMatrix(title string, rows, cols int, vals []uint16) string {
	t := table.NewWriter()
	t.SetTitle(title)

	header := table.Row{""}
	for c := 0; c < cols; c++ {
		header = append(header, fmt.Sprintf("c%d", c))
	}
	t.AppendHeader(header)

	for r := 0; r < rows; r++ {
		row := table.Row{fmt.Sprintf("r%d", r)}
		for c := 0; c < cols; c++ {
			row = append(row, vals[r*cols+c])
		}
		t.AppendRow(row)
	}

	return t.Render()
}

// RenderState renders the driver's register array and finalized outputs.
func RenderState(d *Driver) string {
	s := d.Shape()

	regs := RenderOutputMatrix(
		fmt.Sprintf("PE Registers (cycle %d, %s)", d.Cycle(), d.State().Name()),
		s.Rows, s.Cols, d.Registers())
	outs := RenderOutputMatrix("Outputs", s.Rows, s.Cols, d.ReadOutputs())

	return regs + "\n" + outs
}
