package bitvec

import (
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// Bin returns the canonical binary text form: one '0'/'1' per bit, MSB first.
func (b Bits) Bin() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Hex returns the canonical upper-case hex text form, no prefix. The vector
// is left-padded with zeros to a nibble boundary, so a 32-bit vector always
// formats as 8 digits.
func (b Bits) Hex() string {
	pad := (4 - len(b)%4) % 4
	padded := make(Bits, 0, pad+len(b))
	for range pad {
		padded = append(padded, 0)
	}
	padded = append(padded, b...)

	var sb strings.Builder
	sb.Grow(len(padded) / 4)
	for n := 0; n < len(padded); n += 4 {
		nibble := padded[n]<<3 | padded[n+1]<<2 | padded[n+2]<<1 | padded[n+3]
		sb.WriteByte(hexDigits[nibble])
	}
	return sb.String()
}

// String formats the vector MSB-first with an underscore every four bits,
// grouped from the low end for nibble alignment.
func (b Bits) String() string {
	plain := b.Bin()

	var parts []string
	for i := len(plain); i > 0; i -= 4 {
		start := max(0, i-4)
		parts = append(parts, plain[start:i])
	}

	var sb strings.Builder
	for n := len(parts) - 1; n >= 0; n-- {
		sb.WriteString(parts[n])
		if n != 0 {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
