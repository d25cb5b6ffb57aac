package hw

import "github.com/sarchlab/xsynth/logic"

// PortUsage tells the auto binder what role a requested signal plays.
type PortUsage int

const (
	UsageClock PortUsage = iota
	UsageReset
	UsageOperand
	UsageResult
	UsageState
)

// An AutoBinder hands out signals for named ports. Transaction sites
// call it from Establish; the binder decides where the signals live.
type AutoBinder interface {
	Bind(usage PortUsage, name string, initial logic.Vector) *Signal
}

// DefaultBinder allocates port signals on a kernel. Clock and reset
// requests resolve to the kernel-owned Clk and Rst signals.
type DefaultBinder struct {
	Kernel *Kernel
	Prefix string
}

// Bind returns the signal for one named port.
func (b DefaultBinder) Bind(usage PortUsage, name string, initial logic.Vector) *Signal {
	switch usage {
	case UsageClock:
		return b.Kernel.Clk
	case UsageReset:
		return b.Kernel.Rst
	}
	return b.Kernel.NewSignal(b.Prefix+"."+name, initial)
}

// A Component is a hardware model with the two-phase lifecycle:
// PreInitialize allocates internal signals through a binder, then
// Initialize registers processes with the kernel. Configuration is
// immutable after Initialize.
type Component interface {
	Name() string
	PreInitialize(binder AutoBinder) error
	Initialize(k *Kernel) error
	OnAnalysis(ctx *DesignContext)
}

// DesignContext is the explicit analysis pass over a design. Analyze
// visits the given roots; components may register children during
// their OnAnalysis callback and those are visited in turn.
type DesignContext struct {
	queue   []Component
	visited map[Component]bool

	// Components holds every component seen by the pass, in visit
	// order.
	Components []Component
}

// NewDesignContext creates an empty analysis context.
func NewDesignContext() *DesignContext {
	return &DesignContext{
		visited: make(map[Component]bool),
	}
}

// Register queues a component for analysis. Safe to call from inside
// OnAnalysis.
func (ctx *DesignContext) Register(c Component) {
	if ctx.visited[c] {
		return
	}
	ctx.visited[c] = true
	ctx.queue = append(ctx.queue, c)
}

// Analyze runs the analysis pass starting from the given roots.
func (ctx *DesignContext) Analyze(roots ...Component) {
	for _, r := range roots {
		ctx.Register(r)
	}
	for len(ctx.queue) > 0 {
		c := ctx.queue[0]
		ctx.queue = ctx.queue[1:]
		ctx.Components = append(ctx.Components, c)
		c.OnAnalysis(ctx)
	}
}
