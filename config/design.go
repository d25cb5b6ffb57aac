// Package config assembles complete designs: kernel, branch control
// unit, driver, and selector, wired together and optionally monitored.
package config

import (
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/xsynth/api"
	"github.com/sarchlab/xsynth/fu"
	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/xil"
)

// A Design is an elaborated datapath control core: the kernel with its
// clock domain, the BCU sequencing it, the driver playing verbs, and
// the selector mapping instructions.
type Design struct {
	name string

	Engine   sim.Engine
	Kernel   *hw.Kernel
	BCU      *fu.BCU
	Driver   api.Driver
	Selector *api.Selector
}

// Name returns the design name.
func (d *Design) Name() string {
	return d.name
}

// PreInitialize does nothing: children elaborate during Build.
func (d *Design) PreInitialize(binder hw.AutoBinder) error {
	return nil
}

// Initialize does nothing: children elaborate during Build.
func (d *Design) Initialize(k *hw.Kernel) error {
	return nil
}

// OnAnalysis registers the design's functional units with the pass.
func (d *Design) OnAnalysis(ctx *hw.DesignContext) {
	for _, u := range d.Selector.Units() {
		ctx.Register(u)
	}
}

// DesignBuilder can build designs.
type DesignBuilder struct {
	engine  sim.Engine
	freq    sim.Freq
	monitor *monitoring.Monitor
	project xil.Project

	addrWidth   int
	latency     int
	startupAddr uint64
}

// WithEngine sets the engine that drives the simulation.
func (b DesignBuilder) WithEngine(engine sim.Engine) DesignBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency.
func (b DesignBuilder) WithFreq(freq sim.Freq) DesignBuilder {
	b.freq = freq
	return b
}

// WithMonitor sets the monitor that monitors the design.
func (b DesignBuilder) WithMonitor(monitor *monitoring.Monitor) DesignBuilder {
	b.monitor = monitor
	return b
}

// WithProject sets the opaque project handed to mappers.
func (b DesignBuilder) WithProject(project xil.Project) DesignBuilder {
	b.project = project
	return b
}

// WithAddrWidth sets the program-memory address width.
func (b DesignBuilder) WithAddrWidth(w int) DesignBuilder {
	b.addrWidth = w
	return b
}

// WithLatency sets the BCU pipeline latency.
func (b DesignBuilder) WithLatency(latency int) DesignBuilder {
	b.latency = latency
	return b
}

// WithStartupAddr sets the address emitted during reset.
func (b DesignBuilder) WithStartupAddr(addr uint64) DesignBuilder {
	b.startupAddr = addr
	return b
}

// Build creates a design.
func (b DesignBuilder) Build(name string) (*Design, error) {
	d := &Design{name: name}
	d.Engine = b.engine
	d.Kernel = hw.NewKernel(name + ".Kernel")

	bcu, err := fu.BCUBuilder{}.
		WithAddrWidth(b.addrWidth).
		WithStartupAddr(logic.Encode(b.startupAddr, b.addrWidth)).
		WithLatency(b.latency).
		Build(name + ".BCU")
	if err != nil {
		return nil, err
	}
	d.BCU = bcu

	binder := hw.DefaultBinder{Kernel: d.Kernel, Prefix: bcu.Name()}
	if err := bcu.TransactionSite().Establish(binder); err != nil {
		return nil, err
	}
	if err := bcu.Initialize(d.Kernel); err != nil {
		return nil, err
	}

	d.Driver = api.DriverBuilder{}.
		WithEngine(b.engine).
		WithFreq(b.freq).
		WithKernel(d.Kernel).
		Build(name + ".Driver")
	if b.monitor != nil {
		b.monitor.RegisterComponent(d.Driver)
	}

	d.Selector = api.NewSelector(name+".Selector", d, d.Kernel, b.project)
	d.Selector.RegisterMapper(fu.NewBCUMapper(bcu))
	d.Selector.RegisterMapper(fu.NewMUX2Mapper())
	d.Selector.AddUnit(bcu)

	return d, nil
}
