package fpu

import (
	"fmt"

	"github.com/uclarch/rv32core/bitvec"
)

// Add computes a + b with round-to-nearest-even.
//
// Specials resolve first: a NaN operand propagates with NV, opposing
// infinities cancel to NaN with NV, a single infinity propagates, and zero
// operands short-circuit. Otherwise the smaller-exponent significand is
// aligned by sticky right shifts, the magnitudes add or subtract by sign,
// and the result normalizes and rounds. Exact cancellation is +0.
func Add(a, b bitvec.Bits) (res FPResult, err error) {
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
	case ka == CAT_INF && kb == CAT_INF:
		if sa == sb {
			res.Bits = signedInf(sa)
			res.Trace = append(res.Trace, "inf_plus_inf")
			return
		}
		// opposing infinities cancel
		res.Bits = quietNaN()
		res.Flags.NV = true
		res.Trace = append(res.Trace, "inf_minus_inf")
		return
	case ka == CAT_INF:
		res.Bits = signedInf(sa)
		res.Trace = append(res.Trace, "inf_plus_finite")
		return
	case kb == CAT_INF:
		res.Bits = signedInf(sb)
		res.Trace = append(res.Trace, "finite_plus_inf")
		return
	case ka == CAT_ZERO && kb == CAT_ZERO:
		res.Bits = signedZero(0)
		res.Trace = append(res.Trace, "zero_plus_zero")
		return
	case ka == CAT_ZERO:
		res.Bits = b.Clone()
		res.Trace = append(res.Trace, "zero_plus_finite")
		return
	case kb == CAT_ZERO:
		res.Bits = a.Clone()
		res.Trace = append(res.Trace, "finite_plus_zero")
		return
	}

	eA := effectiveExp(ea)
	eB := effectiveExp(eb)
	sigA := significand(ea, fa)
	sigB := significand(eb, fb)

	// larger magnitude first: by exponent, then by significand
	var aIsBig bool
	if eA.Equal(eB) {
		aIsBig = unsignedGE(sigA, sigB)
	} else {
		aIsBig = unsignedGE(eA, eB)
	}

	eL, sigL, sL := eA, sigA, sa
	eS, sigS, sS := eB, sigB, sb
	if !aIsBig {
		eL, sigL, sL = eB, sigB, sb
		eS, sigS, sS = eA, sigA, sa
	}

	// 27-bit frame: significand followed by guard/round/sticky positions
	grsL := append(sigL.Clone(), 0, 0, 0)
	grsS := append(sigS.Clone(), 0, 0, 0)

	eL10, _ := eL.LeftPad(expRegBits, 0)
	eS10, _ := eS.LeftPad(expRegBits, 0)
	delta := subExp(eL10, eS10)

	var sticky byte
	for range 64 {
		if delta.IsZero() {
			break
		}
		sticky |= grsS[len(grsS)-1]
		grsS = grsS.Shr(0)
		delta = subExp(delta, oneReg())
		res.Trace = append(res.Trace, fmt.Sprintf("align: sml=0x%v sticky=%v", grsS.Hex(), sticky))
	}
	if sticky == 1 {
		grsS[len(grsS)-1] = 1
	}

	expTrue := subExp(eL10, biasReg())

	var sum bitvec.Bits
	if sL == sS {
		wideL, _ := grsL.LeftPad(len(grsL)+1, 0)
		wideS, _ := grsS.LeftPad(len(grsS)+1, 0)
		sum, _, _ = bitvec.AddCarry(wideL, wideS, 0)
		res.Trace = append(res.Trace, fmt.Sprintf("add: sum=0x%v", sum.Hex()))
	} else {
		if grsL.Equal(grsS) {
			res.Bits = signedZero(0)
			res.Trace = append(res.Trace, "cancel_to_zero")
			return
		}
		wideL, _ := grsL.LeftPad(len(grsL)+1, 0)
		wideS, _ := grsS.LeftPad(len(grsS)+1, 0)
		sum, _, _ = bitvec.AddCarry(wideL, wideS.Negate(), 0)
		res.Trace = append(res.Trace, fmt.Sprintf("sub: diff=0x%v", sum.Hex()))
	}

	mant, expOut, inexact := roundRNE(sum, expTrue)
	res.Trace = append(res.Trace, fmt.Sprintf("round: mant=0x%v exp=0x%v", mant.Hex(), expOut.Hex()))

	bits, flags := packRounded(sL, mant, expOut)
	flags.NX = flags.NX || inexact

	res.Bits = bits
	res.Flags = flags

	return
}

// Sub computes a - b as a + (-b); the sign flip preserves any NaN payload,
// which Add's special handling propagates.
func Sub(a, b bitvec.Bits) (res FPResult, err error) {
	if len(b) != WIDTH {
		err = bitvec.ErrWidthMismatch
		return
	}
	return Add(a, flipSign(b))
}
