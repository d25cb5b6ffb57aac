package xil

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var opCaser = cases.Title(language.English)

// normalizeOp turns an opcode as written in a program file into its
// canonical form: "GOTO", "goto" and "branch_if_true" all resolve to
// the instruction-set names.
func normalizeOp(op string) string {
	op = strings.ReplaceAll(strings.TrimSpace(op), "_", "")
	switch opCaser.String(strings.ToLower(op)) {
	case "Goto":
		return OpGoto
	case "Branchiftrue", "Bt":
		return OpBranchIfTrue
	case "Branchiffalse", "Bf":
		return OpBranchIfFalse
	case "Select":
		return OpSelect
	}
	return op
}

// YAMLInstr is one instruction line in a program file.
type YAMLInstr struct {
	Op     string `yaml:"op"`
	Target int    `yaml:"target"`
}

// YAMLProgram is the top-level structure of a program file.
type YAMLProgram struct {
	Name    string      `yaml:"name"`
	Program []YAMLInstr `yaml:"program"`
}

// LoadProgram parses a YAML instruction program from raw bytes.
func LoadProgram(data []byte) ([]Instr, error) {
	var root YAMLProgram
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "parsing program")
	}

	instrs := make([]Instr, 0, len(root.Program))
	for i, y := range root.Program {
		switch normalizeOp(y.Op) {
		case OpGoto:
			instrs = append(instrs, Goto(NewBranchLabel(y.Target)))
		case OpBranchIfTrue:
			instrs = append(instrs, BranchIfTrue(NewBranchLabel(y.Target)))
		case OpBranchIfFalse:
			instrs = append(instrs, BranchIfFalse(NewBranchLabel(y.Target)))
		case OpSelect:
			instrs = append(instrs, Select())
		default:
			return nil, errors.Errorf(
				"program line %d: unknown op %q", i, y.Op)
		}
	}

	return instrs, nil
}

// LoadProgramFile reads and parses a YAML instruction program.
func LoadProgramFile(path string) ([]Instr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading program %s", path)
	}
	return LoadProgram(data)
}
