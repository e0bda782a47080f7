package alu

import (
	"github.com/uclarch/rv32core/bitvec"
)

// Op is an ALU operation selector.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD  = Op(0) // add
	OP_SUB  = Op(1) // sub
	OP_OR   = Op(2) // or
	OP_AND  = Op(3) // and
	OP_XOR  = Op(4) // xor
	OP_SLT  = Op(5) // slt
	OP_SLTU = Op(6) // sltu
)

// Result is an ALU output: the result vector and the N/Z/C/V flags.
type Result struct {
	Bits bitvec.Bits
	N    bool // Result MSB set.
	Z    bool // Result all-zero.
	C    bool // Raw adder carry out of the MSB.
	V    bool // Signed two's-complement overflow.
}

// Execute runs one ALU operation over two equal-width operands. Every
// operand pair has a defined result; the only failures are caller contract
// violations (width mismatch, unknown op).
func Execute(a, b bitvec.Bits, op Op) (res Result, err error) {
	if len(a) == 0 || len(a) != len(b) {
		err = bitvec.ErrWidthMismatch
		return
	}

	switch op {
	case OP_ADD:
		var carry byte
		res.Bits, carry, _ = bitvec.AddCarry(a, b, 0)
		res.C = carry == 1
		res.V = a.Sign() == b.Sign() && res.Bits.Sign() != a.Sign()
	case OP_SUB:
		var carry byte
		res.Bits, carry, _ = bitvec.AddCarry(a, b.Negate(), 0)
		res.C = carry == 1
		res.V = a.Sign() != b.Sign() && res.Bits.Sign() != a.Sign()
	case OP_OR:
		res.Bits = bitwise(a, b, func(x, y byte) byte { return x | y })
	case OP_AND:
		res.Bits = bitwise(a, b, func(x, y byte) byte { return x & y })
	case OP_XOR:
		res.Bits = bitwise(a, b, func(x, y byte) byte { return x ^ y })
	case OP_SLT:
		diff, _, _ := bitvec.AddCarry(a, b.Negate(), 0)
		res.Bits = flagBit(len(a), diff.Sign() == 1)
	case OP_SLTU:
		res.Bits = flagBit(len(a), unsignedLess(a, b))
	default:
		err = ErrOp
		return
	}

	res.N = res.Bits.Sign() == 1
	res.Z = res.Bits.IsZero()

	return
}

// bitwise applies a bit operation elementwise.
func bitwise(a, b bitvec.Bits, op func(x, y byte) byte) bitvec.Bits {
	out := make(bitvec.Bits, len(a))
	for n := range a {
		out[n] = op(a[n], b[n])
	}
	return out
}

// flagBit encodes a comparison outcome as 0 or 1 in the low bit.
func flagBit(width int, set bool) bitvec.Bits {
	out := bitvec.Zero(width)
	if set {
		out[width-1] = 1
	}
	return out
}

// unsignedLess compares two equal-width vectors as unsigned magnitudes.
func unsignedLess(a, b bitvec.Bits) bool {
	for n := range a {
		if a[n] != b[n] {
			return a[n] < b[n]
		}
	}
	return false
}
