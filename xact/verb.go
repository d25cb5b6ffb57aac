// Package xact defines transaction verbs: one clock cycle's worth of
// signal drives, grouped and claimed on a per-site basis.
package xact

import (
	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
)

// Mode tells whether a verb claims its site exclusively for the cycle.
type Mode int

const (
	// Locked forbids any other verb on the same site in the same
	// cycle.
	Locked Mode = iota
	// Shared permits concurrent verbs on the site.
	Shared
)

func (m Mode) String() string {
	if m == Locked {
		return "Locked"
	}
	return "Shared"
}

// A Source produces the value driven onto a signal. Wire bindings
// resample it every delta, so sources backed by signals track their
// signal combinationally within the cycle.
type Source = hw.ValueSource

// Const returns a source that always produces v.
func Const(v logic.Vector) Source {
	return hw.ConstSource(v)
}

// FromSignal returns a source that follows the current value of s.
func FromSignal(s *hw.Signal) Source {
	return s.AsSource()
}

// A Drive binds one signal for exactly one cycle.
type Drive struct {
	Target *hw.Signal
	From   Source
}

// A Verb is one cycle of signal drives on a transaction site. Drives
// within a verb are simultaneous: no ordering is observable among them.
type Verb struct {
	Mode   Mode
	Site   Site
	Drives []Drive
}

// Apply places the verb's wire bindings. They stay in force until the
// kernel finishes the cycle.
func (v Verb) Apply() {
	for _, d := range v.Drives {
		d.Target.DriveWire(d.From)
	}
}
