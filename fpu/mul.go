package fpu

import (
	"fmt"

	"github.com/uclarch/rv32core/bitvec"
)

// product width of two hidden-bit significands.
const prodBits = 2 * SIG_BITS

// Mul computes a × b with round-to-nearest-even.
//
// The result sign is the XOR of the operand signs. NaN operands propagate
// with NV, and 0 × Infinity is NaN with NV; otherwise an infinite operand
// gives a signed infinity and a zero operand a signed zero. For finite
// operands the 24-bit significands multiply by shift-add into a 48-bit
// product, the unbiased exponents sum, and the product normalizes and
// rounds like an addition result.
func Mul(a, b bitvec.Bits) (res FPResult, err error) {
	sa, ea, fa, err := Unpack(a)
	if err != nil {
		return
	}
	sb, eb, fb, err := Unpack(b)
	if err != nil {
		return
	}

	ka, _ := Classify(a)
	kb, _ := Classify(b)
	res.Trace = append(res.Trace, fmt.Sprintf("classify: a=%v b=%v", ka, kb))

	sign := sa ^ sb

	switch {
	case ka == CAT_NAN:
		res.Bits = a.Clone()
		res.Flags.NV = true
		res.Trace = append(res.Trace, "nan_a")
		return
	case kb == CAT_NAN:
		res.Bits = b.Clone()
		res.Flags.NV = true
		res.Trace = append(res.Trace, "nan_b")
		return
	case (ka == CAT_ZERO && kb == CAT_INF) || (ka == CAT_INF && kb == CAT_ZERO):
		res.Bits = quietNaN()
		res.Flags.NV = true
		res.Trace = append(res.Trace, "zero_times_inf")
		return
	case ka == CAT_INF || kb == CAT_INF:
		res.Bits = signedInf(sign)
		res.Trace = append(res.Trace, "inf_times_finite")
		return
	case ka == CAT_ZERO || kb == CAT_ZERO:
		res.Bits = signedZero(sign)
		res.Trace = append(res.Trace, "zero_times_finite")
		return
	}

	eA, _ := effectiveExp(ea).LeftPad(expRegBits, 0)
	eB, _ := effectiveExp(eb).LeftPad(expRegBits, 0)
	sigA := significand(ea, fa)
	sigB := significand(eb, fb)

	// true exponent: (eA - bias) + (eB - bias)
	expTrue := subExp(subExp(addExp(eA, eB), biasReg()), biasReg())

	acc := bitvec.Zero(prodBits)
	mcand, _ := sigA.LeftPad(prodBits, 0)
	mplier := sigB.Clone()
	for step := range SIG_BITS {
		action := "NOP"
		if mplier[len(mplier)-1] == 1 {
			acc, _, _ = bitvec.AddCarry(acc, mcand, 0)
			action = "ADD"
		}
		res.Trace = append(res.Trace, fmt.Sprintf("step=%02d acc=0x%v action=%v", step, acc.Hex(), action))
		mcand = mcand.Shl()
		mplier = mplier.Shr(0)
	}

	if acc.IsZero() {
		res.Bits = signedZero(sign)
		res.Trace = append(res.Trace, "prod_zero")
		return
	}

	mant, expOut, inexact := roundRNE(acc, expTrue)
	res.Trace = append(res.Trace, fmt.Sprintf("round: mant=0x%v exp=0x%v", mant.Hex(), expOut.Hex()))

	bits, flags := packRounded(sign, mant, expOut)
	flags.NX = flags.NX || inexact

	res.Bits = bits
	res.Flags = flags

	return
}
