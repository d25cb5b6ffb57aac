package xact

import "github.com/sarchlab/xsynth/hw"

// A Site is the per-functional-unit facade that produces verbs binding
// the unit's ports. Component-specific verbs (branch, select, ...) live
// on the concrete site types.
type Site interface {
	// Host returns the functional unit this site fronts.
	Host() hw.Component

	// Establish asks the binder for the unit's port signals. It runs
	// once, before Initialize.
	Establish(binder hw.AutoBinder) error

	// DoNothing returns the one-cycle verb that parks the unit: every
	// input held at its neutral or don't-care value.
	DoNothing() Verb
}
