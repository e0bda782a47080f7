package alu

import (
	"github.com/uclarch/rv32core/bitvec"
)

// ShiftOp is a shifter operation selector.
type ShiftOp int

//go:generate go tool stringer -linecomment -type=ShiftOp
const (
	SHIFT_SLL = ShiftOp(0) // sll
	SHIFT_SRL = ShiftOp(1) // srl
	SHIFT_SRA = ShiftOp(2) // sra
)

// Shift shifts a vector by amount positions, one position per step. The
// amount is reduced modulo the width; zero returns the input unchanged.
// SLL fills with zeros from the low end, SRL with zeros from the high end,
// and SRA replicates the original sign bit into vacated positions.
func Shift(x bitvec.Bits, amount int, op ShiftOp) (out bitvec.Bits, err error) {
	if len(x) == 0 {
		err = bitvec.ErrWidthMismatch
		return
	}
	if amount < 0 {
		err = ErrShiftAmount
		return
	}
	switch op {
	case SHIFT_SLL, SHIFT_SRL, SHIFT_SRA:
		// ok
	default:
		err = ErrShiftOp
		return
	}

	amount %= len(x)
	out = x.Clone()
	for range amount {
		switch op {
		case SHIFT_SLL:
			out = out.Shl()
		case SHIFT_SRL:
			out = out.Shr(0)
		case SHIFT_SRA:
			out = out.Shr(out.Sign())
		}
	}

	return
}
