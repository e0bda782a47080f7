package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	assert := assert.New(t)

	b, err := FromString("0001_1010")
	assert.NoError(err)
	assert.Equal(8, b.Width())
	assert.Equal("1A", b.Hex())
	assert.Equal("00011010", b.Bin())
	assert.Equal("0001_1010", b.String())

	_, err = FromString("0102")
	assert.ErrorIs(err, ErrBitString("0102"))

	_, err = FromString("")
	assert.Error(err)

	_, err = FromString("____")
	assert.Error(err)
}

func TestZeroOnes(t *testing.T) {
	assert := assert.New(t)

	z := Zero(32)
	assert.True(z.IsZero())
	assert.Equal("00000000", z.Hex())

	o := Ones(32)
	assert.True(o.IsOnes())
	assert.Equal("FFFFFFFF", o.Hex())

	assert.Panics(func() { Zero(0) })
}

func TestHexPadding(t *testing.T) {
	assert := assert.New(t)

	// 33-bit vector pads to a nibble boundary: 9 hex digits
	b, err := Ones(32).LeftPad(33, 1)
	assert.NoError(err)
	assert.Equal("1FFFFFFFF", b.Hex())

	b, err = FromString("101")
	assert.NoError(err)
	assert.Equal("5", b.Hex())
}

func TestAddCarry(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		a     string
		b     string
		cin   byte
		sum   string
		carry byte
	}){
		{"zero", "0000", "0000", 0, "0000", 0},
		{"basic", "0011", "0001", 0, "0100", 0},
		{"carry_in", "0011", "0001", 1, "0101", 0},
		{"carry_out", "1111", "0001", 0, "0000", 1},
		{"all_ones", "1111", "1111", 1, "1111", 1},
	}

	for _, entry := range table {
		a, _ := FromString(entry.a)
		b, _ := FromString(entry.b)
		sum, carry, err := AddCarry(a, b, entry.cin)
		assert.NoError(err, entry.name)
		assert.Equal(entry.sum, sum.Bin(), entry.name)
		assert.Equal(entry.carry, carry, entry.name)
	}

	_, _, err := AddCarry(Zero(8), Zero(16), 0)
	assert.ErrorIs(err, ErrWidthMismatch)
}

func TestAddCarryImmutable(t *testing.T) {
	assert := assert.New(t)

	a, _ := FromString("0110")
	b, _ := FromString("0011")
	_, _, err := AddCarry(a, b, 0)
	assert.NoError(err)
	assert.Equal("0110", a.Bin())
	assert.Equal("0011", b.Bin())
}

func TestNegate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		in   string
		out  string
	}){
		{"one", "00000001", "11111111"},
		{"zero", "00000000", "00000000"},
		{"minus_one", "11111111", "00000001"},
		{"int_min", "10000000", "10000000"},
	}

	for _, entry := range table {
		b, _ := FromString(entry.in)
		assert.Equal(entry.out, b.Negate().Bin(), entry.name)
	}
}

func TestInvertSign(t *testing.T) {
	assert := assert.New(t)

	b, _ := FromString("1010")
	assert.Equal("0101", b.Invert().Bin())
	assert.Equal(byte(1), b.Sign())
	assert.Equal(byte(0), b.Invert().Sign())
}

func TestShlShr(t *testing.T) {
	assert := assert.New(t)

	b, _ := FromString("1011")
	assert.Equal("0110", b.Shl().Bin())
	assert.Equal("0101", b.Shr(0).Bin())
	assert.Equal("1101", b.Shr(1).Bin())
	assert.Equal(4, b.Shl().Width())
}

func TestLeftPad(t *testing.T) {
	assert := assert.New(t)

	b, _ := FromString("1010")
	wide, err := b.LeftPad(8, 0)
	assert.NoError(err)
	assert.Equal("00001010", wide.Bin())

	wide, err = b.LeftPad(8, 1)
	assert.NoError(err)
	assert.Equal("11111010", wide.Bin())

	_, err = b.LeftPad(2, 0)
	assert.ErrorIs(err, ErrNarrowing)
}

func TestEqualClone(t *testing.T) {
	assert := assert.New(t)

	a, _ := FromString("1100")
	b := a.Clone()
	assert.True(a.Equal(b))

	b[0] = 0
	assert.False(a.Equal(b))
	assert.Equal(byte(1), a[0])

	assert.False(a.Equal(Zero(8)))
}
