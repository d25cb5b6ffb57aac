// Package xil defines the abstract instruction IR of the HLS middle
// end and the contracts mappers implement to bind instructions to
// functional units.
package xil

import "fmt"

// Recognized instruction names.
const (
	OpGoto          = "Goto"
	OpBranchIfTrue  = "BranchIfTrue"
	OpBranchIfFalse = "BranchIfFalse"
	OpSelect        = "Select"
)

// A BranchLabel is an opaque handle on an instruction address,
// identified by its control step.
type BranchLabel struct {
	cstep int
}

// NewBranchLabel creates a label for the given control step.
func NewBranchLabel(cstep int) *BranchLabel {
	if cstep < 0 {
		panic(fmt.Sprintf("xil: negative c-step %d", cstep))
	}
	return &BranchLabel{cstep: cstep}
}

// CStep returns the instruction address the label refers to.
func (l *BranchLabel) CStep() int {
	return l.cstep
}

func (l *BranchLabel) String() string {
	return fmt.Sprintf("@%d", l.cstep)
}

// An Instr is one abstract instruction: a name plus, for branches, the
// target label.
type Instr struct {
	Name   string
	Target *BranchLabel
}

func (i Instr) String() string {
	if i.Target != nil {
		return fmt.Sprintf("%s %s", i.Name, i.Target)
	}
	return i.Name
}

// Goto builds the unconditional branch instruction.
func Goto(target *BranchLabel) Instr {
	return Instr{Name: OpGoto, Target: target}
}

// BranchIfTrue builds the branch taken when its condition operand is 1.
func BranchIfTrue(target *BranchLabel) Instr {
	return Instr{Name: OpBranchIfTrue, Target: target}
}

// BranchIfFalse builds the branch taken when its condition operand is 0.
func BranchIfFalse(target *BranchLabel) Instr {
	return Instr{Name: OpBranchIfFalse, Target: target}
}

// Select builds the three-operand selection instruction. The operand
// order is (condition, then-value, else-value); see MUX2Mapper for how
// this maps onto mux hardware.
func Select() Instr {
	return Instr{Name: OpSelect}
}

// A Type describes an operand or result type before lowering.
type Type struct {
	Name string
	Bits int
}

// TypeLowering turns type descriptors into wire widths.
type TypeLowering interface {
	// WireWidth returns the non-negative width in bits of the wires
	// carrying a value of type t.
	WireWidth(t Type) int
}

// DefaultLowering lowers a type to its declared bit count.
type DefaultLowering struct{}

// WireWidth returns t.Bits.
func (DefaultLowering) WireWidth(t Type) int {
	if t.Bits < 0 {
		panic(fmt.Sprintf("xil: type %s has negative width", t.Name))
	}
	return t.Bits
}
