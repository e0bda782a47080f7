package codec

import (
	"fmt"
	"iter"
	"maps"

	"github.com/uclarch/rv32core/bitvec"
)

// XLEN is the register width of the modeled core.
const XLEN = 32

var _codec_defines = map[string]string{
	"XLEN":    fmt.Sprintf("%v", XLEN),
	"INT_MIN": "0x80000000",
	"INT_MAX": "0x7FFFFFFF",
}

// Defines for the codec.
func Defines() iter.Seq2[string, string] {
	return maps.All(_codec_defines)
}

// Encoding is the result of encoding a host integer into two's complement.
type Encoding struct {
	Bits     bitvec.Bits // Width-exact bit pattern, MSB first.
	Hex      string      // Canonical upper-case hex, no prefix.
	Bin      string      // Canonical binary text.
	Overflow bool        // Value was outside the signed range for the width.
}

// rangeOf returns (mask, min, max) for a signed width in [1, 64].
func rangeOf(width int) (mask uint64, minv, maxv int64, err error) {
	if width < 1 || width > 64 {
		err = ErrWidthRange(width)
		return
	}
	mask = ^uint64(0) >> (64 - width)
	maxv = int64(mask >> 1)
	minv = -maxv - 1
	return
}

// Encode converts a host integer to its width-bit two's-complement pattern.
// Values outside the signed range still encode, reduced modulo 2^width,
// with Overflow set. Wrap, not saturate.
func Encode(value int64, width int) (enc Encoding, err error) {
	mask, minv, maxv, err := rangeOf(width)
	if err != nil {
		return
	}

	uval := uint64(value) & mask

	bits := bitvec.Zero(width)
	for n := range width {
		bits[n] = byte((uval >> (width - 1 - n)) & 1)
	}

	enc = Encoding{
		Bits:     bits,
		Hex:      bits.Hex(),
		Bin:      bits.Bin(),
		Overflow: value > maxv || value < minv,
	}

	return
}

// Decode is the exact inverse of Encode for in-range values: the signed
// two's-complement reading of the vector.
func Decode(bits bitvec.Bits) (value int64, err error) {
	mask, _, _, err := rangeOf(len(bits))
	if err != nil {
		return
	}

	uval, err := Unsigned(bits)
	if err != nil {
		return
	}

	if bits.Sign() == 1 {
		value = int64(uval | ^mask)
	} else {
		value = int64(uval)
	}

	return
}

// Unsigned is the unsigned reading of the vector.
func Unsigned(bits bitvec.Bits) (value uint64, err error) {
	if _, _, _, err = rangeOf(len(bits)); err != nil {
		return
	}

	for _, bit := range bits {
		value = value<<1 | uint64(bit)
	}

	return
}

// SignExtend widens the vector by replicating its sign bit into the new
// high-order positions. It is an error to extend to a narrower width.
func SignExtend(bits bitvec.Bits, to int) (bitvec.Bits, error) {
	return bits.LeftPad(to, bits.Sign())
}

// ZeroExtend widens the vector by padding with zero bits. It is an error to
// extend to a narrower width.
func ZeroExtend(bits bitvec.Bits, to int) (bitvec.Bits, error) {
	return bits.LeftPad(to, 0)
}

// Truncate keeps the least-significant to bits, discarding the rest:
// hardware bit-select semantics, not a checked narrowing. A vector already
// at or below the target width is returned unchanged (as a copy).
func Truncate(bits bitvec.Bits, to int) bitvec.Bits {
	if to <= 0 {
		panic("codec: truncate width must be positive")
	}
	if to >= len(bits) {
		return bits.Clone()
	}
	return bits[len(bits)-to:].Clone()
}
