// Package fu provides the functional units of the mapping core: the
// branch control unit and the 2-to-1 multiplexer, each with its
// transaction site and XIL mapper.
package fu

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/util"
	"github.com/sarchlab/xsynth/xact"
)

// A Unit is a functional unit: a hardware component with a transaction
// site and a behavioral identity used for resource sharing.
type Unit interface {
	hw.Component

	TransactionSite() xact.Site

	// IsEquivalent reports whether the other unit behaves identically,
	// so one instance could serve both. BehaviorHash is consistent
	// with it: equivalent units hash equally.
	IsEquivalent(other Unit) bool
	BehaviorHash() uint64
}

// A BCU computes the next program-memory address of a micro-sequenced
// datapath. Conditional branches choose between the linear successor
// and an alternative address, gated by the dual-polarity flags brP
// (branch if 1) and brN (branch if 0). With a latency above 1 the unit
// masks branch decisions for latency-1 cycles after reset.
type BCU struct {
	name        string
	addrWidth   int
	latency     int
	startupAddr logic.Vector

	site *BCUTransactionSite

	clk, rst *hw.Signal
	brP, brN *hw.Signal
	altAddr  *hw.Signal
	outAddr  *hw.Signal

	lastAddr logic.Vector
	rstq     logic.Vector

	initialized bool
}

// BCUBuilder can build branch control units.
type BCUBuilder struct {
	addrWidth   int
	startupAddr logic.Vector
	latency     int
}

// WithAddrWidth sets the address width in bits.
func (b BCUBuilder) WithAddrWidth(w int) BCUBuilder {
	b.addrWidth = w
	return b
}

// WithStartupAddr sets the address emitted while reset is asserted.
func (b BCUBuilder) WithStartupAddr(addr logic.Vector) BCUBuilder {
	b.startupAddr = addr
	return b
}

// WithLatency sets the pipeline latency in cycles.
func (b BCUBuilder) WithLatency(latency int) BCUBuilder {
	b.latency = latency
	return b
}

// Build creates a BCU. The latency must be at least 1.
func (b BCUBuilder) Build(name string) (*BCU, error) {
	if b.latency < 1 {
		return nil, errors.Wrapf(util.ErrOutOfRange,
			"%s: latency %d", name, b.latency)
	}

	bcu := &BCU{
		name:        name,
		addrWidth:   b.addrWidth,
		latency:     b.latency,
		startupAddr: b.startupAddr,
	}
	bcu.site = &BCUTransactionSite{bcu: bcu}

	return bcu, nil
}

// Name returns the unit name.
func (u *BCU) Name() string {
	return u.name
}

// AddrWidth returns the address width in bits.
func (u *BCU) AddrWidth() int {
	return u.addrWidth
}

// Latency returns the pipeline latency in cycles.
func (u *BCU) Latency() int {
	return u.latency
}

// OutAddr returns the next-address output port. Valid after
// PreInitialize.
func (u *BCU) OutAddr() *hw.Signal {
	return u.outAddr
}

// TransactionSite returns the verb factory for this unit.
func (u *BCU) TransactionSite() xact.Site {
	return u.site
}

// Site returns the concrete transaction site.
func (u *BCU) Site() *BCUTransactionSite {
	return u.site
}

// PreInitialize allocates the unit's port signals through the binder.
func (u *BCU) PreInitialize(binder hw.AutoBinder) error {
	if u.startupAddr.Width() != u.addrWidth {
		return errors.Wrapf(util.ErrInvalidConfiguration,
			"%s: startup address is %d bits, address width is %d",
			u.name, u.startupAddr.Width(), u.addrWidth)
	}

	u.clk = binder.Bind(hw.UsageClock, "Clk", logic.Zeros(1))
	u.rst = binder.Bind(hw.UsageReset, "Rst", logic.Zeros(1))
	u.brP = binder.Bind(hw.UsageOperand, "BrP", logic.Zeros(1))
	u.brN = binder.Bind(hw.UsageOperand, "BrN", logic.Ones(1))
	u.altAddr = binder.Bind(hw.UsageOperand, "AltAddr",
		logic.Zeros(u.addrWidth))
	u.outAddr = binder.Bind(hw.UsageResult, "OutAddr", u.startupAddr)

	u.lastAddr = u.startupAddr
	if u.latency > 1 {
		u.rstq = logic.Ones(u.latency - 1)
	}

	return nil
}

// Initialize registers the clocked process with the kernel. The
// configuration is immutable afterwards.
func (u *BCU) Initialize(k *hw.Kernel) error {
	k.RegisterProcess(u.name+".Clocked", u.onClock, u.clk)
	u.initialized = true
	return nil
}

// OnAnalysis registers nothing: the BCU has no child components.
func (u *BCU) OnAnalysis(ctx *hw.DesignContext) {}

// IsEquivalent: a BCU is an exclusive resource bound to one program
// counter, so only the same instance is equivalent.
func (u *BCU) IsEquivalent(other Unit) bool {
	return other == Unit(u)
}

// BehaviorHash folds the configuration.
func (u *BCU) BehaviorHash() uint64 {
	return uint64(u.addrWidth)<<16 | uint64(u.latency)
}

// brTaken decides the branch from the two flags. Anything other than a
// literal '1' on brP reads as 0, and anything other than a literal '0'
// on brN reads as 1, so '-' never takes a branch.
func brTaken(brP, brN logic.Logic) bool {
	return brP == logic.One || brN == logic.Zero
}

func (u *BCU) onClock() {
	if !u.clk.RisingEdge() {
		return
	}

	if u.rst.Read().Bit(0) == logic.One {
		u.lastAddr = u.startupAddr
		if u.latency > 1 {
			u.rstq = logic.Ones(u.latency - 1)
		}
		u.outAddr.Drive(u.startupAddr)
		return
	}

	masked := u.latency > 1 && u.rstq.Bit(0) == logic.One
	taken := brTaken(u.brP.Read().Bit(0), u.brN.Read().Bit(0))

	var next logic.Vector
	if taken && !masked {
		next = u.altAddr.Read()
	} else {
		last, err := logic.FromVector(u.lastAddr)
		if err != nil {
			panic(err)
		}
		next = last.Add(1).Vector()
	}

	if u.latency > 1 {
		// rstq <= '0' & rstq[latency-2:1]
		if u.latency == 2 {
			u.rstq = logic.Zeros(1)
		} else {
			u.rstq = u.rstq.Slice(u.latency-2, 1).
				Concat(logic.Zeros(1))
		}
	}

	u.lastAddr = next
	u.outAddr.Drive(next)
}
