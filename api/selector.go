package api

import (
	"github.com/sarchlab/xsynth/fu"
	"github.com/sarchlab/xsynth/hw"
	"github.com/sarchlab/xsynth/util"
	"github.com/sarchlab/xsynth/xil"
)

// Selector routes XIL instructions through registered mappers. It first
// offers the instruction to every known site via TryMap; only when no
// existing unit serves does it let a mapper allocate a new one, so a
// unit that a mapper accepts is reused instead of duplicated.
// Behaviorally equivalent units are also coalesced into equivalence
// classes, reported by SharedWith and ClassCount; Map does not consult
// the classes.
type Selector struct {
	name    string
	host    hw.Component
	kernel  *hw.Kernel
	project xil.Project

	mappers []xil.Mapper
	units   []fu.Unit
	classes *util.DisjointSets
}

// NewSelector creates a selector allocating units under host on the
// given kernel.
func NewSelector(
	name string,
	host hw.Component,
	kernel *hw.Kernel,
	project xil.Project,
) *Selector {
	return &Selector{
		name:    name,
		host:    host,
		kernel:  kernel,
		project: project,
		classes: util.NewDisjointSets(0),
	}
}

// RegisterMapper adds a mapper. Mappers are consulted in registration
// order.
func (s *Selector) RegisterMapper(m xil.Mapper) {
	s.mappers = append(s.mappers, m)
}

// AddUnit makes an externally constructed, already initialized unit
// available for mapping.
func (s *Selector) AddUnit(u fu.Unit) {
	s.adoptUnit(u)
}

// Units returns the known units in adoption order.
func (s *Selector) Units() []fu.Unit {
	return s.units
}

// Map returns a mapping realizing instr, or nil when no mapper handles
// it. Existing units are preferred over fresh allocations.
func (s *Selector) Map(
	instr xil.Instr,
	operandTypes, resultTypes []xil.Type,
) (xil.Mapping, error) {
	for _, m := range s.mappers {
		for _, u := range s.units {
			mappings := m.TryMap(u.TransactionSite(), instr,
				operandTypes, resultTypes)
			if len(mappings) > 0 {
				util.Trace("Map", "instr", instr.String(),
					"mapping", mappings[0].Description())
				return mappings[0], nil
			}
		}
	}

	for _, m := range s.mappers {
		mapping := m.TryAllocate(s.host, instr,
			operandTypes, resultTypes, s.project)
		if mapping == nil {
			continue
		}

		unit, ok := mapping.Site().Host().(fu.Unit)
		if ok && !s.knows(unit) {
			if err := s.elaborate(unit); err != nil {
				return nil, err
			}
			s.adoptUnit(unit)
		}

		util.Trace("Allocate", "instr", instr.String(),
			"mapping", mapping.Description())
		return mapping, nil
	}

	return nil, nil
}

func (s *Selector) knows(u fu.Unit) bool {
	for _, known := range s.units {
		if known == u {
			return true
		}
	}
	return false
}

func (s *Selector) elaborate(u fu.Unit) error {
	binder := hw.DefaultBinder{Kernel: s.kernel, Prefix: u.Name()}
	if err := u.TransactionSite().Establish(binder); err != nil {
		return err
	}
	return u.Initialize(s.kernel)
}

// adoptUnit records the unit and merges it into the equivalence class
// of any behaviorally identical unit already known.
func (s *Selector) adoptUnit(u fu.Unit) {
	id := len(s.units)
	s.units = append(s.units, u)
	if err := s.classes.AddElements(1); err != nil {
		panic(err)
	}

	for i, known := range s.units[:id] {
		if !known.IsEquivalent(u) {
			continue
		}
		ri, err := s.classes.FindSet(i)
		if err != nil {
			panic(err)
		}
		rj, err := s.classes.FindSet(id)
		if err != nil {
			panic(err)
		}
		if err := s.classes.Union(ri, rj); err != nil {
			panic(err)
		}
	}
}

// SharedWith returns the units in the same equivalence class as u,
// excluding u itself.
func (s *Selector) SharedWith(u fu.Unit) []fu.Unit {
	var id = -1
	for i, known := range s.units {
		if known == u {
			id = i
			break
		}
	}
	if id < 0 {
		return nil
	}

	root, err := s.classes.FindSet(id)
	if err != nil {
		panic(err)
	}

	var peers []fu.Unit
	for i, known := range s.units {
		if i == id {
			continue
		}
		r, err := s.classes.FindSet(i)
		if err != nil {
			panic(err)
		}
		if r == root {
			peers = append(peers, known)
		}
	}
	return peers
}

// ClassCount returns the number of behavioral equivalence classes over
// the known units.
func (s *Selector) ClassCount() int {
	return s.classes.SetCount()
}
