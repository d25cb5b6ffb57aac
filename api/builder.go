package api

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/xsynth/hw"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine sim.Engine
	freq   sim.Freq
	kernel *hw.Kernel
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithKernel sets the delta-cycle kernel the driver steps.
func (b DriverBuilder) WithKernel(kernel *hw.Kernel) DriverBuilder {
	b.kernel = kernel
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	d := &driverImpl{
		engine: b.engine,
		kernel: b.kernel,
	}

	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)

	return d
}
