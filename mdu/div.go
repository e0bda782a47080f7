package mdu

import (
	"fmt"

	"github.com/uclarch/rv32core/bitvec"
)

// DivOp is a divide operation selector.
type DivOp int

//go:generate go tool stringer -linecomment -type=DivOp
const (
	OP_DIV  = DivOp(0) // div
	OP_DIVU = DivOp(1) // divu
	OP_REM  = DivOp(2) // rem
	OP_REMU = DivOp(3) // remu
)

// DivResult is the output of a divide: quotient, remainder, and the
// per-step trace of the restoring division.
type DivResult struct {
	Q        bitvec.Bits
	R        bitvec.Bits
	Overflow bool // DIV only: INT_MIN divided by -1.
	Trace    []string
}

// intMin is the 32-bit pattern 0x80000000.
func intMin() bitvec.Bits {
	b := bitvec.Zero(XLEN)
	b[0] = 1
	return b
}

// Div divides two 32-bit operands by restoring long division, one trace
// step per quotient bit. Quotients truncate toward zero; for the signed
// variants the remainder's sign follows the dividend. The singularities
// are defined results: divisor zero gives Q all-ones and R = dividend, and
// signed INT_MIN/-1 gives Q = INT_MIN and R = 0.
func Div(op DivOp, dividend, divisor bitvec.Bits) (res DivResult, err error) {
	if len(dividend) != XLEN || len(divisor) != XLEN {
		err = bitvec.ErrWidthMismatch
		return
	}

	signed := false
	switch op {
	case OP_DIV, OP_REM:
		signed = true
	case OP_DIVU, OP_REMU:
		// unsigned
	default:
		err = ErrDivOp
		return
	}

	if divisor.IsZero() {
		res.Q = bitvec.Ones(XLEN)
		res.R = dividend.Clone()
		res.Trace = []string{"divide_by_zero"}
		return
	}

	if signed && dividend.Equal(intMin()) && divisor.IsOnes() {
		res.Q = intMin()
		res.R = bitvec.Zero(XLEN)
		res.Overflow = op == OP_DIV
		res.Trace = []string{"int_min_div_minus_one"}
		return
	}

	aMag, aNeg := dividend.Clone(), false
	bMag := divisor.Clone()
	var bNeg bool
	if signed {
		aMag, aNeg = abs(dividend)
		bMag, bNeg = abs(divisor)
	}

	qMag, rMag, trace := restoringDivide(aMag, bMag)
	res.Trace = trace

	res.Q = qMag
	res.R = rMag
	if signed {
		if aNeg != bNeg {
			res.Q = qMag.Negate()
		}
		if aNeg {
			res.R = rMag.Negate()
		}
	}

	return
}

// restoringDivide runs unsigned restoring division over magnitudes. The
// partial remainder is one bit wider than the operands so a failed trial
// subtraction shows up in its sign bit.
func restoringDivide(dividend, divisor bitvec.Bits) (q, r bitvec.Bits, trace []string) {
	r = bitvec.Zero(XLEN + 1)
	q = dividend.Clone()
	d, _ := divisor.LeftPad(XLEN+1, 0)
	negD := d.Negate()

	for step := range XLEN {
		// shift (r, q) left together, next dividend bit entering r
		r = r.Shl()
		r[len(r)-1] = q[0]
		q = q.Shl()

		action := "SUB"
		try, _, _ := bitvec.AddCarry(r, negD, 0)
		if try.Sign() == 1 {
			// trial went negative: restore, quotient bit stays 0
			action = "RESTORE"
		} else {
			r = try
			q[len(q)-1] = 1
		}

		trace = append(trace, fmt.Sprintf("step=%02d r=0x%v q=0x%v action=%v",
			step, r[1:].Hex(), q.Hex(), action))
	}

	r = r[1:].Clone()

	return
}
