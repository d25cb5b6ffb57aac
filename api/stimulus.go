package api

import (
	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/logic"
	"github.com/sarchlab/xsynth/xact"
)

// Stimulus returns a shared, site-less verb driving target from a
// constant for one cycle. Testbenches use it to move reset and other
// external inputs in lockstep with the scheduled verbs.
func Stimulus(target *hw.Signal, v logic.Vector) xact.Verb {
	return xact.Verb{
		Mode: xact.Shared,
		Drives: []xact.Drive{
			{Target: target, From: xact.Const(v)},
		},
	}
}
