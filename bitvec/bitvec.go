package bitvec

// Bits is an MSB-first fixed-width bit vector. Each element is 0 or 1.
type Bits []byte

// Zero creates an all-zero vector of the given width.
func Zero(width int) Bits {
	if width <= 0 {
		panic("bitvec: width must be positive")
	}
	return make(Bits, width)
}

// Ones creates an all-ones vector of the given width.
func Ones(width int) Bits {
	b := Zero(width)
	for n := range b {
		b[n] = 1
	}
	return b
}

// FromString creates a vector from a binary string like "0001_1010".
// Underscore separators are permitted anywhere.
func FromString(s string) (b Bits, err error) {
	for _, ch := range s {
		switch ch {
		case '0':
			b = append(b, 0)
		case '1':
			b = append(b, 1)
		case '_':
			// separator
		default:
			err = ErrBitString(s)
			return
		}
	}
	if len(b) == 0 {
		err = ErrBitString(s)
		return
	}
	return
}

// Width of the vector.
func (b Bits) Width() int {
	return len(b)
}

// Clone returns an independent copy.
func (b Bits) Clone() Bits {
	out := make(Bits, len(b))
	copy(out, b)
	return out
}

// Sign is the most-significant bit, the sign bit of the two's-complement view.
func (b Bits) Sign() byte {
	return b[0]
}

// IsZero reports whether every bit is clear.
func (b Bits) IsZero() bool {
	for _, bit := range b {
		if bit != 0 {
			return false
		}
	}
	return true
}

// IsOnes reports whether every bit is set.
func (b Bits) IsOnes() bool {
	for _, bit := range b {
		if bit == 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two vectors have the same width and bits.
func (b Bits) Equal(other Bits) bool {
	if len(b) != len(other) {
		return false
	}
	for n := range b {
		if b[n] != other[n] {
			return false
		}
	}
	return true
}

// Invert returns the one's complement.
func (b Bits) Invert() Bits {
	out := make(Bits, len(b))
	for n, bit := range b {
		out[n] = bit ^ 1
	}
	return out
}

// LeftPad widens the vector to the given width by inserting fill bits at
// the high-order end. It is an error to pad to a narrower width.
func (b Bits) LeftPad(width int, fill byte) (out Bits, err error) {
	if width < len(b) {
		err = ErrNarrowing
		return
	}
	out = make(Bits, width)
	for n := range width - len(b) {
		out[n] = fill & 1
	}
	copy(out[width-len(b):], b)
	return
}

// Shl returns the vector shifted left one position, a zero entering at the
// low end. The width is preserved.
func (b Bits) Shl() Bits {
	out := make(Bits, len(b))
	copy(out, b[1:])
	return out
}

// Shr returns the vector shifted right one position, the given bit entering
// at the high end. The width is preserved.
func (b Bits) Shr(fill byte) Bits {
	out := make(Bits, len(b))
	out[0] = fill & 1
	copy(out[1:], b[:len(b)-1])
	return out
}
