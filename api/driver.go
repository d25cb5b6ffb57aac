// Package api exposes the front end of the mapping core: a selector
// that routes XIL instructions to mappers, and a driver that plays the
// resulting verb schedule against the delta-cycle kernel.
package api

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/util"
	"github.com/sarchlab/xsynth/xact"
)

// Driver plays scheduled verbs against the kernel, one bundle of verbs
// per clock cycle.
type Driver interface {
	sim.Component

	// Schedule queues one cycle: all given verbs are applied in the
	// same clock cycle. A Locked verb excludes every other verb on
	// its site in that cycle.
	Schedule(verbs ...xact.Verb) error

	// ScheduleSequence queues a verb sequence at one verb per cycle,
	// the way mappings produce them.
	ScheduleSequence(seq []xact.Verb) error

	// ScheduleIdle queues n cycles with no drives.
	ScheduleIdle(n int)

	// Watch samples the given signals into the waveform trace at the
	// end of every cycle.
	Watch(signals ...*hw.Signal)

	// Trace returns the recorded waveform, one record per cycle.
	Trace() []util.CycleRecord

	// Run plays every queued cycle to completion.
	Run()
}

type driverImpl struct {
	*sim.TickingComponent

	engine sim.Engine
	kernel *hw.Kernel

	bundles [][]xact.Verb
	watch   []*hw.Signal
	trace   []util.CycleRecord
}

// Tick advances the design by one scheduled cycle.
func (d *driverImpl) Tick() (madeProgress bool) {
	if len(d.bundles) == 0 {
		return false
	}

	bundle := d.bundles[0]
	d.bundles = d.bundles[1:]

	for _, v := range bundle {
		v.Apply()
	}
	d.kernel.ClockCycle()

	d.record(bundle)

	return true
}

func (d *driverImpl) record(bundle []xact.Verb) {
	rec := util.CycleRecord{
		Cycle: d.kernel.Cycle(),
		Verb:  describeBundle(bundle),
	}
	for _, s := range d.watch {
		rec.Signals = append(rec.Signals, util.SignalState{
			Name:  s.Name(),
			Value: s.Read().String(),
		})
	}

	util.LogCycle(&rec)
	d.trace = append(d.trace, rec)
}

func describeBundle(bundle []xact.Verb) string {
	if len(bundle) == 0 {
		return "idle"
	}
	parts := make([]string, len(bundle))
	for i, v := range bundle {
		if v.Site == nil {
			parts[i] = "stim"
			continue
		}
		parts[i] = fmt.Sprintf("%s@%s", v.Mode, v.Site.Host().Name())
	}
	return strings.Join(parts, "+")
}

// Schedule queues one cycle, rejecting bundles that violate the Locked
// contract.
func (d *driverImpl) Schedule(verbs ...xact.Verb) error {
	locked := make(map[xact.Site]bool)
	occupied := make(map[xact.Site]bool)
	for _, v := range verbs {
		if v.Site == nil {
			continue
		}
		if locked[v.Site] || (v.Mode == xact.Locked && occupied[v.Site]) {
			return errors.Errorf(
				"locked verb conflict on site %s in one cycle",
				v.Site.Host().Name())
		}
		occupied[v.Site] = true
		if v.Mode == xact.Locked {
			locked[v.Site] = true
		}
	}

	d.bundles = append(d.bundles, verbs)
	return nil
}

func (d *driverImpl) ScheduleSequence(seq []xact.Verb) error {
	for _, v := range seq {
		if err := d.Schedule(v); err != nil {
			return err
		}
	}
	return nil
}

func (d *driverImpl) ScheduleIdle(n int) {
	for i := 0; i < n; i++ {
		d.bundles = append(d.bundles, nil)
	}
}

func (d *driverImpl) Watch(signals ...*hw.Signal) {
	d.watch = append(d.watch, signals...)
}

func (d *driverImpl) Trace() []util.CycleRecord {
	return d.trace
}

// Run kicks the tick chain and runs the engine until no component makes
// progress.
func (d *driverImpl) Run() {
	d.TickNow()

	err := d.engine.Run()
	if err != nil {
		panic(err)
	}
}
