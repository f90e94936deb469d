package core

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/harshithparitala/systolic-array-3x3-matrix/engine"
	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// Builder can create new cores.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	shape  systolic.Shape
}

// NewBuilder returns a builder with the documented 3x3 shape.
func NewBuilder() Builder {
	return Builder{
		shape: systolic.Default3x3(),
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(e sim.Engine) Builder {
	b.engine = e
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithShape sets the grid dimensions.
func (b Builder) WithShape(shape systolic.Shape) Builder {
	b.shape = shape
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	c := &Core{
		model: engine.NewDriver(b.shape),
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.stimulus = systolic.NewPort(c, 1, 1, name+".Stimulus")
	c.result = systolic.NewPort(c, 1, 1, name+".Result")
	c.AddPort("Stimulus", c.stimulus)
	c.AddPort("Result", c.result)

	return c
}
