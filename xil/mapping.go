package xil

import (
	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/xact"
)

// ResourceKind classifies how a mapping's functional unit may be
// shared.
type ResourceKind int

const (
	// ExclusiveResource units admit one client; the scheduler must
	// serialize all uses.
	ExclusiveResource ResourceKind = iota
	// LightweightResource units are cheap enough to share across
	// clients whenever their behavior matches.
	LightweightResource
)

func (k ResourceKind) String() string {
	if k == ExclusiveResource {
		return "ExclusiveResource"
	}
	return "LightweightResource"
}

// A Project is the opaque container handed through TryAllocate. The
// mapping core never introspects it.
type Project interface{}

// A Mapping is one concrete way of realizing an instruction on a
// functional unit. Realize produces the verb sequence driving the unit:
// one verb per cycle, result sinks wired to the unit's result ports.
type Mapping interface {
	Site() xact.Site
	ResourceKind() ResourceKind
	InitiationInterval() int
	Latency() int
	Description() string

	Realize(operands []xact.Source, results []*hw.Signal) []xact.Verb
}

// A Mapper binds instruction opcodes to functional units.
type Mapper interface {
	// SupportedInstructions enumerates the opcodes this mapper can
	// realize.
	SupportedInstructions() []Instr

	// TryMap yields zero or more ways to realize instr on an already
	// allocated site. An empty result is the normal "not applicable"
	// protocol; callers try other mappers.
	TryMap(site xact.Site, instr Instr,
		operandTypes, resultTypes []Type) []Mapping

	// TryAllocate allocates a new functional unit if necessary and
	// returns a mapping on it, or nil when the mapper does not handle
	// instr. The host is the component the new unit is placed under;
	// the project rides through untouched.
	TryAllocate(host hw.Component, instr Instr,
		operandTypes, resultTypes []Type, project Project) Mapping
}
