package mdu

import (
	"fmt"
	"iter"
	"maps"

	"github.com/uclarch/rv32core/bitvec"
)

// XLEN is the operand width of the unit.
const XLEN = 32

var _mdu_defines = map[string]string{
	"MUL_STEPS": fmt.Sprintf("%v", XLEN),
	"DIV_STEPS": fmt.Sprintf("%v", XLEN),
}

// Defines for the multiply/divide unit.
func Defines() iter.Seq2[string, string] {
	return maps.All(_mdu_defines)
}

// MulOp is a multiply operation selector.
type MulOp int

//go:generate go tool stringer -linecomment -type=MulOp
const (
	OP_MUL    = MulOp(0) // mul
	OP_MULH   = MulOp(1) // mulh
	OP_MULHU  = MulOp(2) // mulhu
	OP_MULHSU = MulOp(3) // mulhsu
)

// MulResult is the output of a multiply: the architectural result RD, both
// halves of the 64-bit product, and the per-step trace.
type MulResult struct {
	RD       bitvec.Bits // Low half for MUL, high half for MULH/MULHU/MULHSU.
	Lo       bitvec.Bits
	Hi       bitvec.Bits
	Overflow bool // MUL only: 64-bit signed product does not fit the low half.
	Trace    []string
}

// abs returns the magnitude of a two's-complement vector and whether the
// input was negative.
func abs(b bitvec.Bits) (mag bitvec.Bits, neg bool) {
	if b.Sign() == 1 {
		return b.Negate(), true
	}
	return b.Clone(), false
}

// Mul computes the full 64-bit product of two 32-bit operands as 32 partial
// products, one trace step per multiplier bit. Signedness follows the
// variant: MUL and MULH treat both operands as signed, MULHU both as
// unsigned, MULHSU the first as signed and the second as unsigned.
func Mul(op MulOp, a, b bitvec.Bits) (res MulResult, err error) {
	if len(a) != XLEN || len(b) != XLEN {
		err = bitvec.ErrWidthMismatch
		return
	}

	var aMag, bMag bitvec.Bits
	var resNeg bool
	switch op {
	case OP_MUL, OP_MULH:
		var aNeg, bNeg bool
		aMag, aNeg = abs(a)
		bMag, bNeg = abs(b)
		resNeg = aNeg != bNeg
	case OP_MULHU:
		aMag, bMag = a.Clone(), b.Clone()
	case OP_MULHSU:
		var aNeg bool
		aMag, aNeg = abs(a)
		bMag = b.Clone()
		resNeg = aNeg
	default:
		err = ErrMulOp
		return
	}

	acc := bitvec.Zero(2 * XLEN)
	mcand, _ := aMag.LeftPad(2*XLEN, 0)
	mplier := bMag

	for step := range XLEN {
		action := "NOP"
		if mplier[len(mplier)-1] == 1 {
			acc, _, _ = bitvec.AddCarry(acc, mcand, 0)
			action = "ADD"
		}

		res.Trace = append(res.Trace, fmt.Sprintf(
			"step=%02d acc=0x%v mcand=0x%v mplier=0x%v action=%v",
			step, acc.Hex(), mcand.Hex(), mplier.Hex(), action))

		mcand = mcand.Shl()
		mplier = mplier.Shr(0)
	}

	if resNeg && !acc.IsZero() {
		acc = acc.Negate()
	}

	res.Lo = acc[XLEN:].Clone()
	res.Hi = acc[:XLEN].Clone()

	switch op {
	case OP_MUL:
		res.RD = res.Lo
		// representable in 32 signed bits iff the high half is pure sign
		// extension of the low half
		sx, _ := res.Lo.LeftPad(2*XLEN, res.Lo.Sign())
		res.Overflow = !sx.Equal(acc)
	default:
		res.RD = res.Hi
	}

	return
}
