package fu

import (
	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/xact"
)

// MUX2TransactionSite is the verb factory of a MUX2.
type MUX2TransactionSite struct {
	mux *MUX2
}

// Host returns the MUX2 behind this site.
func (s *MUX2TransactionSite) Host() hw.Component {
	return s.mux
}

// Establish allocates the MUX2's port signals.
func (s *MUX2TransactionSite) Establish(binder hw.AutoBinder) error {
	return s.mux.PreInitialize(binder)
}

// DoNothing sticks every input to don't-care for one cycle.
func (s *MUX2TransactionSite) DoNothing() xact.Verb {
	return xact.Verb{
		Mode: xact.Locked,
		Site: s,
		Drives: []xact.Drive{
			{Target: s.mux.a,
				From: xact.Const(logic.DontCares(s.mux.width))},
			{Target: s.mux.b,
				From: xact.Const(logic.DontCares(s.mux.width))},
			{Target: s.mux.sel, From: xact.Const(logic.DontCares(1))},
		},
	}
}

// Select drives the data inputs from a and b, the select input from
// sel, and wires r to the result port for one cycle. A '0' on sel
// steers a to r. Callers coming through the XIL Select mapping should
// mind the operand order documented on MUX2Mapper.
func (s *MUX2TransactionSite) Select(
	a, b, sel xact.Source,
	r *hw.Signal,
) xact.Verb {
	return xact.Verb{
		Mode: xact.Locked,
		Site: s,
		Drives: []xact.Drive{
			{Target: s.mux.a, From: a},
			{Target: s.mux.b, From: b},
			{Target: s.mux.sel, From: sel},
			{Target: r, From: xact.FromSignal(s.mux.r)},
		},
	}
}
