package fpu

import (
	"github.com/uclarch/rv32core/bitvec"
)

// Internal exponent registers are 10 bits wide: two's-complement range
// ±512 covers every biased and unbiased exponent either operation can
// produce, including the doubly-biased sums of multiply.
const expRegBits = 10

// expReg builds a 10-bit exponent register holding a small constant.
func expReg(value int) bitvec.Bits {
	b := bitvec.Zero(expRegBits)
	u := uint(value) & (1<<expRegBits - 1)
	for n := range expRegBits {
		b[n] = byte(u >> (expRegBits - 1 - n) & 1)
	}
	return b
}

func biasReg() bitvec.Bits { return expReg(BIAS) }
func oneReg() bitvec.Bits  { return expReg(1) }

func addExp(a, b bitvec.Bits) bitvec.Bits {
	out, _, _ := bitvec.AddCarry(a, b, 0)
	return out
}

func subExp(a, b bitvec.Bits) bitvec.Bits {
	out, _, _ := bitvec.AddCarry(a, b.Negate(), 0)
	return out
}

// effectiveExp is the exponent field used for significand arithmetic:
// subnormals (all-zero exponent) behave as exponent 1.
func effectiveExp(e8 bitvec.Bits) bitvec.Bits {
	if e8.IsZero() {
		e := bitvec.Zero(EXP_BITS)
		e[EXP_BITS-1] = 1
		return e
	}
	return e8.Clone()
}

// significand is the 24-bit hidden-bit-plus-fraction form: hidden 1 for
// normals, hidden 0 for subnormals and zeros.
func significand(e8, frac23 bitvec.Bits) bitvec.Bits {
	sig := make(bitvec.Bits, 0, SIG_BITS)
	if e8.IsZero() {
		sig = append(sig, 0)
	} else {
		sig = append(sig, 1)
	}
	sig = append(sig, frac23...)
	return sig
}

// unsignedGE compares equal-width vectors as unsigned magnitudes.
func unsignedGE(a, b bitvec.Bits) bool {
	for n := range a {
		if a[n] != b[n] {
			return a[n] > b[n]
		}
	}
	return true
}

// orReduce is 1 when any bit is set.
func orReduce(b bitvec.Bits) byte {
	if b.IsZero() {
		return 0
	}
	return 1
}

// leading1 is the index of the most-significant set bit, or -1.
func leading1(b bitvec.Bits) int {
	for n, bit := range b {
		if bit == 1 {
			return n
		}
	}
	return -1
}

// roundRNE normalizes an arbitrary-width positive magnitude so its leading
// 1 becomes the hidden bit, then rounds to a 24-bit significand with
// round-to-nearest-even over the guard, round, and sticky bits below the
// window. It returns the rounded significand, the adjusted exponent
// register, and whether nonzero bits were discarded.
func roundRNE(p bitvec.Bits, exp bitvec.Bits) (mant bitvec.Bits, expOut bitvec.Bits, inexact bool) {
	expOut = exp.Clone()

	lead := leading1(p)
	if lead == -1 {
		mant = bitvec.Zero(SIG_BITS)
		return
	}

	q := p.Clone()
	start := 1
	switch {
	case lead == 0:
		// magnitude in [2,4): the window slides up one, exponent bumps
		expOut = addExp(expOut, oneReg())
		start = 0
	case lead > 1:
		for range lead - 1 {
			q = q.Shl()
			expOut = subExp(expOut, oneReg())
		}
	}

	end := start + SIG_BITS
	mant = bitvec.Zero(SIG_BITS)
	copy(mant, q[start:min(end, len(q))])

	var guard, round, sticky byte
	if end < len(q) {
		guard = q[end]
	}
	if end+1 < len(q) {
		round = q[end+1]
	}
	if end+2 < len(q) {
		sticky = orReduce(q[end+2:])
	}

	inexact = guard == 1 || round == 1 || sticky == 1

	lsb := mant[len(mant)-1]
	if guard == 1 && (round == 1 || sticky == 1 || lsb == 1) {
		one := bitvec.Zero(SIG_BITS)
		one[SIG_BITS-1] = 1
		var carry byte
		mant, carry, _ = bitvec.AddCarry(mant, one, 0)
		if carry == 1 {
			// rounding carried out of the hidden bit: renormalize
			mant = mant.Shr(1)
			expOut = addExp(expOut, oneReg())
		}
	}

	return
}

// packRounded assembles the final pattern from a sign, rounded significand,
// and unbiased exponent register, mapping exponent-range violations to the
// overflow and underflow flags.
func packRounded(sign byte, mant bitvec.Bits, exp bitvec.Bits) (bits bitvec.Bits, flags Flags) {
	packed := addExp(exp, biasReg())

	if packed.Sign() == 1 {
		// biased exponent went negative: below the smallest subnormal
		flags.UF = true
		flags.NX = !mant.IsZero()
		bits = signedZero(sign)
		return
	}

	high := packed[:expRegBits-EXP_BITS]
	low8 := packed[expRegBits-EXP_BITS:]
	if orReduce(high) == 1 || low8.IsOnes() {
		flags.OF = true
		flags.NX = true
		bits = signedInf(sign)
		return
	}

	bits, _ = Pack(sign, low8, mant[1:])

	return
}

func signedZero(sign byte) bitvec.Bits {
	b := bitvec.Zero(WIDTH)
	b[0] = sign
	return b
}

func signedInf(sign byte) bitvec.Bits {
	b, _ := Pack(sign, bitvec.Ones(EXP_BITS), bitvec.Zero(FRAC_BITS))
	return b
}

// quietNaN is the generated-NaN pattern for invalid operations.
func quietNaN() bitvec.Bits {
	frac := bitvec.Zero(FRAC_BITS)
	frac[FRAC_BITS-1] = 1
	b, _ := Pack(0, bitvec.Ones(EXP_BITS), frac)
	return b
}

func flipSign(b bitvec.Bits) bitvec.Bits {
	out := b.Clone()
	out[0] ^= 1
	return out
}
