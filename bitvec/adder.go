package bitvec

// halfAdder returns (sum, carry) for two bits.
func halfAdder(a, b byte) (sum, carry byte) {
	sum = a ^ b
	carry = a & b
	return
}

// fullAdder returns (sum, carry_out) for two bits and a carry-in.
func fullAdder(a, b, cin byte) (sum, cout byte) {
	s1, c1 := halfAdder(a, b)
	s2, c2 := halfAdder(s1, cin)
	sum = s2
	cout = c1 | c2
	return
}

// AddCarry adds two vectors of equal width through a ripple-carry chain of
// full adders, least-significant bit first. It returns the width-preserved
// sum and the carry out of the most-significant bit.
func AddCarry(a, b Bits, carryIn byte) (sum Bits, carryOut byte, err error) {
	if len(a) != len(b) {
		err = ErrWidthMismatch
		return
	}

	sum = make(Bits, len(a))
	carry := carryIn & 1
	for n := len(a) - 1; n >= 0; n-- {
		sum[n], carry = fullAdder(a[n], b[n], carry)
	}
	carryOut = carry

	return
}

// Negate returns the two's-complement negation: invert and add one through
// the ripple-carry adder.
func (b Bits) Negate() Bits {
	one := Zero(len(b))
	one[len(one)-1] = 1

	out, _, _ := AddCarry(b.Invert(), one, 0)
	return out
}
