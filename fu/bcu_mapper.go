package fu

import (
	"fmt"
	"strings"

	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/xact"
	"github.com/sarchlab/xsynth/xil"
)

// BCUMapper binds the branch-family XIL instructions to one BCU
// instance. It never allocates a new unit: a datapath has a single
// program counter, so every branch maps onto the bound host.
type BCUMapper struct {
	host *BCU
}

// NewBCUMapper creates a mapper bound to host.
func NewBCUMapper(host *BCU) *BCUMapper {
	return &BCUMapper{host: host}
}

// SupportedInstructions enumerates Goto, BranchIfTrue and
// BranchIfFalse.
func (m *BCUMapper) SupportedInstructions() []xil.Instr {
	entry := xil.NewBranchLabel(0)
	return []xil.Instr{
		xil.Goto(entry),
		xil.BranchIfTrue(entry),
		xil.BranchIfFalse(entry),
	}
}

func isBranchFamily(name string) bool {
	return name == xil.OpGoto || strings.HasPrefix(name, "Branch")
}

// TryMap yields the branch mapping for instr iff the site fronts the
// bound BCU. Tie-breaking follows declaration order: Goto, then
// BranchIfTrue, then BranchIfFalse.
func (m *BCUMapper) TryMap(
	site xact.Site,
	instr xil.Instr,
	operandTypes, resultTypes []xil.Type,
) []xil.Mapping {
	bSite, ok := site.(*BCUTransactionSite)
	if !ok || bSite.bcu != m.host {
		return nil
	}
	if !isBranchFamily(instr.Name) {
		return nil
	}

	var kind bcuMappingKind
	switch instr.Name {
	case xil.OpGoto:
		kind = gotoMapping
	case xil.OpBranchIfTrue:
		kind = branchIfMapping
	case xil.OpBranchIfFalse:
		kind = branchIfNotMapping
	default:
		// A branch-family opcode with no arm is a bug in this mapper,
		// not a decline.
		panic(fmt.Sprintf(
			"fu: branch instruction %s not implemented", instr.Name))
	}

	return []xil.Mapping{&bcuMapping{
		kind:  kind,
		site:  bSite,
		instr: instr,
	}}
}

// TryAllocate returns a mapping on the bound host, never creating a
// new BCU.
func (m *BCUMapper) TryAllocate(
	host hw.Component,
	instr xil.Instr,
	operandTypes, resultTypes []xil.Type,
	project xil.Project,
) xil.Mapping {
	mappings := m.TryMap(m.host.site, instr, operandTypes, resultTypes)
	if len(mappings) == 0 {
		return nil
	}
	return mappings[0]
}

// The mapping kinds form a closed set, so they are a tagged variant
// rather than a type hierarchy.
type bcuMappingKind int

const (
	gotoMapping bcuMappingKind = iota
	branchIfMapping
	branchIfNotMapping
)

type bcuMapping struct {
	kind  bcuMappingKind
	site  *BCUTransactionSite
	instr xil.Instr
}

func (b *bcuMapping) Site() xact.Site {
	return b.site
}

func (b *bcuMapping) ResourceKind() xil.ResourceKind {
	return xil.ExclusiveResource
}

func (b *bcuMapping) InitiationInterval() int {
	return 1
}

func (b *bcuMapping) Latency() int {
	return b.site.bcu.latency
}

func (b *bcuMapping) Description() string {
	return fmt.Sprintf("%s -> %s", b.instr, b.site.bcu.Name())
}

// Realize produces the branch verb sequence. Conditional branches take
// their condition from operands[0]; branches produce no result, so
// results is ignored.
func (b *bcuMapping) Realize(
	operands []xact.Source,
	results []*hw.Signal,
) []xact.Verb {
	switch b.kind {
	case gotoMapping:
		return b.site.Branch(b.instr.Target)
	case branchIfMapping:
		return b.site.BranchIf(operands[0], b.instr.Target)
	case branchIfNotMapping:
		return b.site.BranchIfNot(operands[0], b.instr.Target)
	default:
		panic(fmt.Sprintf("fu: mapping kind %d not implemented", b.kind))
	}
}
