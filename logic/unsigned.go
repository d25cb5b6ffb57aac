package logic

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/xsynth/util"
)

// Unsigned is an unsigned integer of a fixed bit width with modular
// arithmetic. It exposes a canonical Vector view.
type Unsigned struct {
	bits Vector
}

// FromUint builds an Unsigned of width w holding v. ErrOutOfRange is
// returned when v does not fit in w bits.
func FromUint(v uint64, w int) (Unsigned, error) {
	if w < 0 {
		return Unsigned{}, errors.Wrapf(util.ErrOutOfRange,
			"negative width %d", w)
	}
	if w < 64 && v>>uint(w) != 0 {
		return Unsigned{}, errors.Wrapf(util.ErrOutOfRange,
			"value %d does not fit in %d bits", v, w)
	}
	return Unsigned{bits: encode(v, w)}, nil
}

// FromVector reinterprets a fully defined vector as an Unsigned.
func FromVector(v Vector) (Unsigned, error) {
	if !v.Is01() {
		return Unsigned{}, errors.Wrapf(util.ErrOutOfRange,
			"vector %q is not fully defined", v.String())
	}
	return Unsigned{bits: v}, nil
}

// Encode builds the width-w vector holding v modulo 2^w. Unlike
// FromUint it silently truncates.
func Encode(v uint64, w int) Vector {
	return encode(v, w)
}

func encode(v uint64, w int) Vector {
	bits := make([]Logic, w)
	for i := 0; i < w; i++ {
		if v&(1<<uint(i)) != 0 {
			bits[i] = One
		} else {
			bits[i] = Zero
		}
	}
	return Vector{bits: bits}
}

// Width returns the bit width.
func (u Unsigned) Width() int {
	return u.bits.Width()
}

// Uint returns the integer value.
func (u Unsigned) Uint() uint64 {
	v, err := u.bits.Uint()
	if err != nil {
		panic(err)
	}
	return v
}

// Resize truncates or zero-extends to width w.
func (u Unsigned) Resize(w int) Unsigned {
	if w < 0 {
		panic("logic: negative resize width")
	}
	cur := u.Width()
	if w <= cur {
		if w == cur {
			return u
		}
		return Unsigned{bits: u.bits.Slice(w-1, 0)}
	}
	return Unsigned{bits: u.bits.Concat(Zeros(w - cur))}
}

// Add returns u + v modulo 2^width.
func (u Unsigned) Add(v uint64) Unsigned {
	w := u.Width()
	sum := u.Uint() + v
	if w < 64 {
		sum &= (1 << uint(w)) - 1
	}
	return Unsigned{bits: encode(sum, w)}
}

// Vector returns the canonical vector view.
func (u Unsigned) Vector() Vector {
	return u.bits
}

func (u Unsigned) String() string {
	return u.bits.String()
}
