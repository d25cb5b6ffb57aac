package fu

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/util"
	"github.com/sarchlab/xsynth/xact"
)

// A MUX2 is a combinational 2-to-1 selector of a fixed width. A '0' on
// the select input steers input a to the result; anything else steers
// input b.
type MUX2 struct {
	name  string
	width int

	site *MUX2TransactionSite

	a, b, sel *hw.Signal
	r         *hw.Signal

	initialized bool
}

// MUX2Builder can build 2-to-1 multiplexers.
type MUX2Builder struct {
	width int
}

// WithWidth sets the data width in bits.
func (b MUX2Builder) WithWidth(w int) MUX2Builder {
	b.width = w
	return b
}

// Build creates a MUX2. The width must be at least 1.
func (b MUX2Builder) Build(name string) (*MUX2, error) {
	if b.width < 1 {
		return nil, errors.Wrapf(util.ErrOutOfRange,
			"%s: width %d", name, b.width)
	}

	m := &MUX2{
		name:  name,
		width: b.width,
	}
	m.site = &MUX2TransactionSite{mux: m}

	return m, nil
}

// Name returns the unit name.
func (m *MUX2) Name() string {
	return m.name
}

// Width returns the data width in bits.
func (m *MUX2) Width() int {
	return m.width
}

// Result returns the result port. Valid after PreInitialize.
func (m *MUX2) Result() *hw.Signal {
	return m.r
}

// TransactionSite returns the verb factory for this unit.
func (m *MUX2) TransactionSite() xact.Site {
	return m.site
}

// Site returns the concrete transaction site.
func (m *MUX2) Site() *MUX2TransactionSite {
	return m.site
}

// PreInitialize allocates the unit's port signals through the binder.
func (m *MUX2) PreInitialize(binder hw.AutoBinder) error {
	m.a = binder.Bind(hw.UsageOperand, "A", logic.DontCares(m.width))
	m.b = binder.Bind(hw.UsageOperand, "B", logic.DontCares(m.width))
	m.sel = binder.Bind(hw.UsageOperand, "Sel", logic.DontCares(1))
	m.r = binder.Bind(hw.UsageResult, "R", logic.DontCares(m.width))
	return nil
}

// Initialize registers the combinational process with the kernel.
func (m *MUX2) Initialize(k *hw.Kernel) error {
	k.RegisterProcess(m.name+".Comb", m.onInput, m.a, m.b, m.sel)
	m.initialized = true
	return nil
}

// OnAnalysis registers nothing: the MUX2 has no child components.
func (m *MUX2) OnAnalysis(ctx *hw.DesignContext) {}

// IsEquivalent reports behavioral equivalence: two MUX2 instances
// behave identically iff their widths are equal.
func (m *MUX2) IsEquivalent(other Unit) bool {
	o, ok := other.(*MUX2)
	return ok && o.width == m.width
}

// BehaviorHash is the width.
func (m *MUX2) BehaviorHash() uint64 {
	return uint64(m.width)
}

func (m *MUX2) onInput() {
	if m.sel.Read().Bit(0) == logic.Zero {
		m.r.Drive(m.a.Read())
	} else {
		m.r.Drive(m.b.Read())
	}
}
