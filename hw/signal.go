// Package hw models signal-level hardware: single-writer signal cells,
// a delta-cycle kernel that advances them, and the component lifecycle
// shared by all functional units.
package hw

import (
	"fmt"

	"github.com/sarchlab/xsynth/logic"
)

// A ValueSource produces the value carried by a structural wire
// binding. It is resampled at every delta boundary while the binding is
// active.
type ValueSource interface {
	Sample() logic.Vector
}

type constSource struct {
	v logic.Vector
}

func (c constSource) Sample() logic.Vector {
	return c.v
}

// ConstSource returns a source that always produces v.
func ConstSource(v logic.Vector) ValueSource {
	return constSource{v: v}
}

type signalSource struct {
	s *Signal
}

func (ss signalSource) Sample() logic.Vector {
	return ss.s.Read()
}

// A Signal holds a current and a next value of a fixed vector width.
// Processes read current and drive next; the kernel moves next to
// current at each delta boundary. One writer per delta.
//
// A signal may instead carry a wire binding for the duration of one
// clock cycle: the kernel then resamples the bound source at every
// delta boundary, so combinational updates flow through within the
// cycle. Transaction verbs drive signals this way.
type Signal struct {
	kernel *Kernel
	name   string

	prev, cur, next logic.Vector
	drivenBy        string
	wire            ValueSource
}

// Name returns the signal name.
func (s *Signal) Name() string {
	return s.name
}

// Width returns the vector width of the signal.
func (s *Signal) Width() int {
	return s.cur.Width()
}

// Read returns the current value. Within a delta this is the pre-delta
// value; a process never observes its own drives.
func (s *Signal) Read() logic.Vector {
	return s.cur
}

// Drive sets the next value. Two distinct writers driving the same
// signal within one delta, or driving a signal that carries a wire
// binding, is a wiring error and panics.
func (s *Signal) Drive(v logic.Vector) {
	if v.Width() != s.cur.Width() {
		panic(fmt.Sprintf(
			"hw: driving %d-bit value onto %d-bit signal %s",
			v.Width(), s.cur.Width(), s.name))
	}
	if s.wire != nil {
		panic(fmt.Sprintf(
			"hw: signal %s is wire-bound this cycle", s.name))
	}

	writer := s.kernel.runningProcess()
	if s.drivenBy != "" && s.drivenBy != writer {
		panic(fmt.Sprintf(
			"hw: signal %s driven by both %s and %s in one delta",
			s.name, s.drivenBy, writer))
	}
	s.drivenBy = writer
	s.next = v
}

// DriveWire binds the signal to a source for the remainder of the
// current clock cycle. The binding is exclusive: a second binding, or a
// plain drive, panics until the kernel clears wires at the cycle
// boundary.
func (s *Signal) DriveWire(src ValueSource) {
	if s.wire != nil {
		panic(fmt.Sprintf(
			"hw: signal %s already wire-bound this cycle", s.name))
	}
	if s.drivenBy != "" {
		panic(fmt.Sprintf(
			"hw: signal %s already driven this delta", s.name))
	}
	s.wire = src
}

// AsSource returns a source that follows the signal's current value.
func (s *Signal) AsSource() ValueSource {
	return signalSource{s: s}
}

// RisingEdge reports a '0' to '1' transition of a one-bit signal across
// the latest delta boundary.
func (s *Signal) RisingEdge() bool {
	return s.prev.Width() == 1 &&
		s.prev.Bit(0) == logic.Zero && s.cur.Bit(0) == logic.One
}

func (s *Signal) sampleWire() {
	if s.wire == nil {
		return
	}
	v := s.wire.Sample()
	if v.Width() != s.cur.Width() {
		panic(fmt.Sprintf(
			"hw: %d-bit wire bound to %d-bit signal %s",
			v.Width(), s.cur.Width(), s.name))
	}
	s.next = v
}

func (s *Signal) commit() (changed bool) {
	s.drivenBy = ""
	s.prev = s.cur
	if s.next.Equals(s.cur) {
		return false
	}
	s.cur = s.next
	return true
}

func (s *Signal) clearWire() {
	s.wire = nil
}
