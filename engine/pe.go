// Package engine implements the cycle-accurate functional model of the
// systolic matrix-multiplication engine: a clocked grid of
// multiply-accumulate processing elements plus the combinational completion
// network that turns the registered products into full dot products.
package engine

// A ProcessingElement is a single 16-bit synchronous register implementing
// one multiply-accumulate slot.
type ProcessingElement struct{}

// Step returns the register value after one clock edge. Reset is
// synchronous and takes priority over the operands. The multiply widens
// 8x8 to 16 bits; the add wraps mod 2^16 with no saturation and no
// overflow flag.
//
// cPrev is decided by the caller. In this engine's fixed wiring it is
// always 0, so a slot holds a one-shot registered product rather than a
// running accumulator.
func (ProcessingElement) Step(reset bool, a, b uint8, cPrev uint16) uint16 {
	if reset {
		return 0
	}

	return cPrev + uint16(a)*uint16(b)
}
