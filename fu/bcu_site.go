package fu

import (
	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/xact"
	"github.com/sarchlab/xsynth/xil"
)

// BCUTransactionSite is the verb factory of a BCU. A branch occupies
// exactly latency cycles of exclusive site usage, so that downstream
// scheduling cannot dispatch another branch before the program counter
// is stable.
type BCUTransactionSite struct {
	bcu *BCU
}

// Host returns the BCU behind this site.
func (s *BCUTransactionSite) Host() hw.Component {
	return s.bcu
}

// Establish allocates the BCU's port signals.
func (s *BCUTransactionSite) Establish(binder hw.AutoBinder) error {
	return s.bcu.PreInitialize(binder)
}

// DoNothing parks the BCU for one cycle: no branch, linear successor.
func (s *BCUTransactionSite) DoNothing() xact.Verb {
	return xact.Verb{
		Mode: xact.Locked,
		Site: s,
		Drives: []xact.Drive{
			{Target: s.bcu.brP, From: xact.Const(logic.Zeros(1))},
			{Target: s.bcu.brN, From: xact.Const(logic.Ones(1))},
			{Target: s.bcu.altAddr,
				From: xact.Const(logic.Zeros(s.bcu.addrWidth))},
		},
	}
}

// Branch returns the verb sequence for an unconditional branch to
// target: one taking verb followed by latency-1 no-ops.
func (s *BCUTransactionSite) Branch(target *xil.BranchLabel) []xact.Verb {
	verbs := []xact.Verb{{
		Mode: xact.Locked,
		Site: s,
		Drives: []xact.Drive{
			{Target: s.bcu.brP, From: xact.Const(logic.Ones(1))},
			{Target: s.bcu.brN, From: xact.Const(logic.Zeros(1))},
			{Target: s.bcu.altAddr, From: xact.Const(s.targetAddr(target))},
		},
	}}
	return s.padNops(verbs)
}

// BranchIf branches to target when cond is 1.
func (s *BCUTransactionSite) BranchIf(
	cond xact.Source,
	target *xil.BranchLabel,
) []xact.Verb {
	verbs := []xact.Verb{{
		Mode: xact.Locked,
		Site: s,
		Drives: []xact.Drive{
			{Target: s.bcu.brP, From: cond},
			{Target: s.bcu.brN, From: xact.Const(logic.Ones(1))},
			{Target: s.bcu.altAddr, From: xact.Const(s.targetAddr(target))},
		},
	}}
	return s.padNops(verbs)
}

// BranchIfNot branches to target when cond is 0.
func (s *BCUTransactionSite) BranchIfNot(
	cond xact.Source,
	target *xil.BranchLabel,
) []xact.Verb {
	verbs := []xact.Verb{{
		Mode: xact.Locked,
		Site: s,
		Drives: []xact.Drive{
			{Target: s.bcu.brP, From: xact.Const(logic.Zeros(1))},
			{Target: s.bcu.brN, From: cond},
			{Target: s.bcu.altAddr, From: xact.Const(s.targetAddr(target))},
		},
	}}
	return s.padNops(verbs)
}

func (s *BCUTransactionSite) targetAddr(target *xil.BranchLabel) logic.Vector {
	return logic.Encode(uint64(target.CStep()), s.bcu.addrWidth)
}

func (s *BCUTransactionSite) padNops(verbs []xact.Verb) []xact.Verb {
	for i := 1; i < s.bcu.latency; i++ {
		verbs = append(verbs, s.DoNothing())
	}
	return verbs
}
