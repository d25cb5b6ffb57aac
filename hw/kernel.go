package hw

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/xsynth/logic"
)

// HookPosKernelDelta marks the commit of one delta: next values have
// just become current.
var HookPosKernelDelta = &sim.HookPos{Name: "Kernel Delta Commit"}

// HookPosKernelCycle marks the completion of one full clock cycle.
var HookPosKernelCycle = &sim.HookPos{Name: "Kernel Cycle"}

type process struct {
	name    string
	fn      func()
	pending bool
}

// A Kernel owns signals and processes and advances them in delta
// cycles: processes sensitive to changed signals fire until a fixed
// point, and next values become current at each delta boundary. The
// kernel runs on a single logical thread; processes run to completion
// atomically with respect to signal state.
type Kernel struct {
	sim.HookableBase

	name    string
	signals []*Signal
	procs   []*process
	sens    map[*Signal][]*process
	queue   []*process
	running *process

	cycle int

	// Clk and Rst are the kernel-owned clock and synchronous reset,
	// handed to components through the auto binder.
	Clk *Signal
	Rst *Signal
}

// NewKernel creates a kernel with its clock and reset signals.
func NewKernel(name string) *Kernel {
	k := &Kernel{
		name: name,
		sens: make(map[*Signal][]*process),
	}
	k.Clk = k.NewSignal(name+".Clk", logic.Zeros(1))
	k.Rst = k.NewSignal(name+".Rst", logic.Zeros(1))
	return k
}

// Name returns the kernel name.
func (k *Kernel) Name() string {
	return k.name
}

// Cycle returns the number of completed clock cycles.
func (k *Kernel) Cycle() int {
	return k.cycle
}

// NewSignal allocates a signal owned by this kernel. The initial value
// fixes the width.
func (k *Kernel) NewSignal(name string, initial logic.Vector) *Signal {
	s := &Signal{
		kernel: k,
		name:   name,
		prev:   initial,
		cur:    initial,
		next:   initial,
	}
	k.signals = append(k.signals, s)
	return s
}

// RegisterProcess adds a process that fires whenever one of its
// sensitivity signals changes. The process is queued once for an
// initial evaluation on the next settle.
func (k *Kernel) RegisterProcess(name string, fn func(), sensitivity ...*Signal) {
	p := &process{name: name, fn: fn, pending: true}
	k.procs = append(k.procs, p)
	k.queue = append(k.queue, p)
	for _, s := range sensitivity {
		k.sens[s] = append(k.sens[s], p)
	}
}

func (k *Kernel) runningProcess() string {
	if k.running == nil {
		return "testbench"
	}
	return k.running.name
}

// Settle runs deltas until no signal changes and no process is queued.
func (k *Kernel) Settle() {
	for {
		k.runQueued()

		changed := k.commit()
		if len(changed) == 0 && len(k.queue) == 0 {
			return
		}

		for _, s := range changed {
			for _, p := range k.sens[s] {
				k.enqueue(p)
			}
		}
	}
}

func (k *Kernel) runQueued() {
	queue := k.queue
	k.queue = nil
	for _, p := range queue {
		p.pending = false
		k.running = p
		p.fn()
		k.running = nil
	}
}

func (k *Kernel) enqueue(p *process) {
	if p.pending {
		return
	}
	p.pending = true
	k.queue = append(k.queue, p)
}

func (k *Kernel) commit() []*Signal {
	// Wire bindings resample against pre-commit values so that every
	// signal observes the same delta.
	for _, s := range k.signals {
		s.sampleWire()
	}

	var changed []*Signal
	for _, s := range k.signals {
		if s.commit() {
			changed = append(changed, s)
		}
	}

	if len(changed) > 0 {
		hookCtx := sim.HookCtx{
			Domain: k,
			Pos:    HookPosKernelDelta,
			Item:   changed,
		}
		k.InvokeHook(hookCtx)
	}

	return changed
}

// ClockCycle advances the design by one full clock cycle: clock low,
// settle, clock high, settle. Stimulus driven onto input signals before
// the call is observed by clocked processes at the rising edge. Wire
// bindings placed by verbs expire at the end of the cycle.
func (k *Kernel) ClockCycle() {
	k.Clk.Drive(logic.Zeros(1))
	k.Settle()
	k.Clk.Drive(logic.Ones(1))
	k.Settle()
	for _, s := range k.signals {
		s.clearWire()
	}
	k.cycle++

	hookCtx := sim.HookCtx{
		Domain: k,
		Pos:    HookPosKernelCycle,
		Item:   k.cycle,
	}
	k.InvokeHook(hookCtx)
}
