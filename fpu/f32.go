package fpu

import (
	"fmt"
	"iter"
	"maps"

	"github.com/uclarch/rv32core/bitvec"
)

// binary32 field widths.
const (
	WIDTH     = 32
	EXP_BITS  = 8
	FRAC_BITS = 23
	SIG_BITS  = FRAC_BITS + 1 // hidden bit + fraction
	BIAS      = 127
)

var _fpu_defines = map[string]string{
	"F32_EXP_BITS":  fmt.Sprintf("%v", EXP_BITS),
	"F32_FRAC_BITS": fmt.Sprintf("%v", FRAC_BITS),
	"F32_BIAS":      fmt.Sprintf("%v", BIAS),
	"F32_QNAN":      "0x7F800001",
}

// Defines for the floating-point unit.
func Defines() iter.Seq2[string, string] {
	return maps.All(_fpu_defines)
}

// Category classifies a binary32 pattern.
type Category int

//go:generate go tool stringer -linecomment -type=Category
const (
	CAT_ZERO      = Category(0) // zero
	CAT_SUBNORMAL = Category(1) // subnormal
	CAT_NORMAL    = Category(2) // normal
	CAT_INF       = Category(3) // inf
	CAT_NAN       = Category(4) // nan
)

// Flags are the per-operation exception flags.
type Flags struct {
	NV bool // Invalid operation.
	DZ bool // Divide by zero. Reserved: no divide is implemented.
	OF bool // Overflow.
	UF bool // Underflow.
	NX bool // Inexact.
}

// Or merges two flag sets.
func (fl Flags) Or(other Flags) Flags {
	return Flags{
		NV: fl.NV || other.NV,
		DZ: fl.DZ || other.DZ,
		OF: fl.OF || other.OF,
		UF: fl.UF || other.UF,
		NX: fl.NX || other.NX,
	}
}

// FPResult is the output of a floating-point operation.
type FPResult struct {
	Bits  bitvec.Bits
	Flags Flags
	Trace []string
}

// Pack assembles a binary32 pattern from its sign, exponent, and fraction
// fields. Exact inverse of Unpack.
func Pack(sign byte, exp, frac bitvec.Bits) (bits bitvec.Bits, err error) {
	if sign > 1 {
		err = ErrSignBit
		return
	}
	if len(exp) != EXP_BITS || len(frac) != FRAC_BITS {
		err = bitvec.ErrWidthMismatch
		return
	}

	bits = make(bitvec.Bits, 0, WIDTH)
	bits = append(bits, sign)
	bits = append(bits, exp...)
	bits = append(bits, frac...)

	return
}

// Unpack splits a binary32 pattern into its sign, exponent, and fraction
// fields. Exact inverse of Pack.
func Unpack(bits bitvec.Bits) (sign byte, exp, frac bitvec.Bits, err error) {
	if len(bits) != WIDTH {
		err = bitvec.ErrWidthMismatch
		return
	}

	sign = bits[0]
	exp = bits[1 : 1+EXP_BITS].Clone()
	frac = bits[1+EXP_BITS:].Clone()

	return
}

// Classify derives the category of a binary32 pattern from its exponent
// and fraction fields.
func Classify(bits bitvec.Bits) (cat Category, err error) {
	_, exp, frac, err := Unpack(bits)
	if err != nil {
		return
	}

	switch {
	case exp.IsZero() && frac.IsZero():
		cat = CAT_ZERO
	case exp.IsZero():
		cat = CAT_SUBNORMAL
	case exp.IsOnes() && frac.IsZero():
		cat = CAT_INF
	case exp.IsOnes():
		cat = CAT_NAN
	default:
		cat = CAT_NORMAL
	}

	return
}
