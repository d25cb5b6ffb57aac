package fu

import (
	"fmt"

	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/xact"
	"github.com/sarchlab/xsynth/xil"
)

// MUX2Mapper binds the XIL Select instruction to 2-to-1 multiplexers,
// allocating a new MUX2 of the required width on demand.
//
// Operand order. XIL Select carries (condition, then-value, else-value)
// with the condition at operand 0 and the data operands at 1 and 2. The
// mapping hands (operands[1], operands[0], operands[2], results[0]) to
// MUX2TransactionSite.Select(a, b, sel, r) — the then-value lands on
// port a, the condition on port b, the else-value on the select input.
// This deviates from the mux hardware convention (a '0' on sel steers
// a to r) and is only width-consistent for one-bit selects, but it is
// bit-exact with the established netlists; do not "fix" the order.
type MUX2Mapper struct {
	lowering xil.TypeLowering
}

// NewMUX2Mapper creates a mapper using the default type lowering.
func NewMUX2Mapper() *MUX2Mapper {
	return &MUX2Mapper{lowering: xil.DefaultLowering{}}
}

// WithLowering swaps the type lowering used to size allocated muxes.
func (m *MUX2Mapper) WithLowering(l xil.TypeLowering) *MUX2Mapper {
	m.lowering = l
	return m
}

// SupportedInstructions enumerates Select.
func (m *MUX2Mapper) SupportedInstructions() []xil.Instr {
	return []xil.Instr{xil.Select()}
}

// TryMap yields the selection mapping iff the site fronts a MUX2 whose
// width matches the second operand's type.
func (m *MUX2Mapper) TryMap(
	site xact.Site,
	instr xil.Instr,
	operandTypes, resultTypes []xil.Type,
) []xil.Mapping {
	if instr.Name != xil.OpSelect {
		return nil
	}

	mSite, ok := site.(*MUX2TransactionSite)
	if !ok {
		return nil
	}
	if mSite.mux.width != m.selectWidth(operandTypes) {
		return nil
	}

	return []xil.Mapping{&mux2Mapping{site: mSite}}
}

// TryAllocate instantiates a new MUX2 of the required width and returns
// the selection mapping on it.
func (m *MUX2Mapper) TryAllocate(
	host hw.Component,
	instr xil.Instr,
	operandTypes, resultTypes []xil.Type,
	project xil.Project,
) xil.Mapping {
	if instr.Name != xil.OpSelect {
		return nil
	}

	width := m.selectWidth(operandTypes)
	name := fmt.Sprintf("%s.MUX2W%d", host.Name(), width)
	mux, err := MUX2Builder{}.WithWidth(width).Build(name)
	if err != nil {
		return nil
	}

	return &mux2Mapping{site: mux.site}
}

// selectWidth takes the wire width from the second operand: operand 0
// is the one-bit condition, operands 1 and 2 carry the data.
func (m *MUX2Mapper) selectWidth(operandTypes []xil.Type) int {
	return m.lowering.WireWidth(operandTypes[1])
}

type mux2Mapping struct {
	site *MUX2TransactionSite
}

func (s *mux2Mapping) Site() xact.Site {
	return s.site
}

func (s *mux2Mapping) ResourceKind() xil.ResourceKind {
	return xil.LightweightResource
}

func (s *mux2Mapping) InitiationInterval() int {
	return 1
}

func (s *mux2Mapping) Latency() int {
	return 0
}

func (s *mux2Mapping) Description() string {
	return fmt.Sprintf("Select -> %s", s.site.mux.Name())
}

// Realize produces the one-cycle selection verb. See the operand-order
// note on MUX2Mapper.
func (s *mux2Mapping) Realize(
	operands []xact.Source,
	results []*hw.Signal,
) []xact.Verb {
	return []xact.Verb{
		s.site.Select(operands[1], operands[0], operands[2], results[0]),
	}
}
