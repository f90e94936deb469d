// Package config assembles a ready-to-run simulation platform: the
// engine core, the stimulus driver, and the connections between them.
package config

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/harshithparitala/systolic-array-3x3-matrix/api"
	"github.com/harshithparitala/systolic-array-3x3-matrix/core"
	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
)

// Platform bundles everything a testbench needs.
type Platform struct {
	Engine sim.Engine
	Core   *core.Core
	Driver api.Driver
}

// PlatformBuilder can build simulation platforms.
type PlatformBuilder struct {
	freq  sim.Freq
	shape systolic.Shape
}

// MakePlatformBuilder returns a builder with the documented 3x3 shape and
// a 1 GHz clock.
func MakePlatformBuilder() PlatformBuilder {
	return PlatformBuilder{
		freq:  1 * sim.GHz,
		shape: systolic.Default3x3(),
	}
}

// WithFreq sets the clock frequency of both the core and the driver.
func (b PlatformBuilder) WithFreq(freq sim.Freq) PlatformBuilder {
	b.freq = freq
	return b
}

// WithShape sets the grid dimensions.
func (b PlatformBuilder) WithShape(shape systolic.Shape) PlatformBuilder {
	b.shape = shape
	return b
}

// Build creates a platform on a fresh serial engine.
func (b PlatformBuilder) Build(name string) *Platform {
	engine := sim.NewSerialEngine()

	c := core.NewBuilder().
		WithEngine(engine).
		WithFreq(b.freq).
		WithShape(b.shape).
		Build(name + ".Core")

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(b.freq).
		Build(name + ".Driver")

	driver.RegisterCore(c)

	return &Platform{
		Engine: engine,
		Core:   c,
		Driver: driver,
	}
}
