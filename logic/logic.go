// Package logic defines the four-valued (std_logic style) scalars and
// fixed-width vectors that hardware models in this repository compute on.
package logic

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sarchlab/xsynth/util"
)

// Logic is a single multi-valued logic scalar. The full IEEE 1164 value
// set is representable; equality, arithmetic lowering, and the branch
// decision logic honor '0', '1', and '-'.
type Logic byte

const (
	Zero     Logic = '0'
	One      Logic = '1'
	HighZ    Logic = 'Z'
	DontCare Logic = '-'
	Unknown  Logic = 'X'
	Uninit   Logic = 'U'
	WeakZero Logic = 'L'
	WeakOne  Logic = 'H'
	WeakUnk  Logic = 'W'
)

// Is reports whether l equals the single-character literal lit.
func (l Logic) Is(lit string) bool {
	return len(lit) == 1 && byte(l) == lit[0]
}

// Is01 reports whether l is a strong '0' or '1'.
func (l Logic) Is01() bool {
	return l == Zero || l == One
}

func (l Logic) String() string {
	return string(byte(l))
}

// A Vector is a fixed-width row of logic values. The width is set at
// construction and never changes; index 0 is the least significant
// element. The zero value is the empty (width 0) vector.
type Vector struct {
	bits []Logic
}

// Zeros returns a vector of width w with every element '0'.
func Zeros(w int) Vector {
	return filled(w, Zero)
}

// Ones returns a vector of width w with every element '1'.
func Ones(w int) Vector {
	return filled(w, One)
}

// DontCares returns a vector of width w with every element '-'.
func DontCares(w int) Vector {
	return filled(w, DontCare)
}

func filled(w int, l Logic) Vector {
	if w < 0 {
		panic("logic: negative vector width")
	}
	bits := make([]Logic, w)
	for i := range bits {
		bits[i] = l
	}
	return Vector{bits: bits}
}

// Parse builds a vector from a string literal written MSB first, so
// Parse("10") has bit 1 set to '1' and bit 0 set to '0'.
func Parse(s string) Vector {
	bits := make([]Logic, len(s))
	for i := 0; i < len(s); i++ {
		bits[len(s)-1-i] = Logic(s[i])
	}
	return Vector{bits: bits}
}

// Width returns the number of elements in the vector.
func (v Vector) Width() int {
	return len(v.bits)
}

// Bit returns the element at position i (0 = LSB).
func (v Vector) Bit(i int) Logic {
	return v.bits[i]
}

// Concat returns hi appended above v: the result has v in its low
// positions and hi in its high positions.
func (v Vector) Concat(hi Vector) Vector {
	bits := make([]Logic, 0, len(v.bits)+len(hi.bits))
	bits = append(bits, v.bits...)
	bits = append(bits, hi.bits...)
	return Vector{bits: bits}
}

// Slice returns elements [high:low], both inclusive, as a new vector of
// width high-low+1.
func (v Vector) Slice(high, low int) Vector {
	if low < 0 || high >= len(v.bits) || high < low {
		panic("logic: slice bounds out of range")
	}
	bits := make([]Logic, high-low+1)
	copy(bits, v.bits[low:high+1])
	return Vector{bits: bits}
}

// Is01 reports whether every element is a strong '0' or '1'.
func (v Vector) Is01() bool {
	for _, b := range v.bits {
		if !b.Is01() {
			return false
		}
	}
	return true
}

// Uint reinterprets the vector as an unsigned integer. It is defined
// only when every element is '0' or '1'; otherwise ErrOutOfRange is
// returned.
func (v Vector) Uint() (uint64, error) {
	if !v.Is01() {
		return 0, errors.Wrapf(util.ErrOutOfRange,
			"vector %q is not fully defined", v.String())
	}
	var u uint64
	for i := len(v.bits) - 1; i >= 0; i-- {
		u <<= 1
		if v.bits[i] == One {
			u |= 1
		}
	}
	return u, nil
}

// Equals reports element-wise equality. Vectors of different widths are
// never equal.
func (v Vector) Equals(o Vector) bool {
	if len(v.bits) != len(o.bits) {
		return false
	}
	for i := range v.bits {
		if v.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Is reports whether the vector equals the MSB-first string literal lit.
func (v Vector) Is(lit string) bool {
	return v.Equals(Parse(lit))
}

// String renders the vector MSB first.
func (v Vector) String() string {
	var sb strings.Builder
	for i := len(v.bits) - 1; i >= 0; i-- {
		sb.WriteByte(byte(v.bits[i]))
	}
	return sb.String()
}
