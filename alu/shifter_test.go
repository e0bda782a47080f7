package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uclarch/rv32core/bitvec"
)

func TestShift(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		x      uint32
		amount int
		op     ShiftOp
		out    uint32
	}){
		{"sll_basic", 0x0000000D, 2, SHIFT_SLL, 0x00000034},
		{"sll_drop_high", 0x80000001, 1, SHIFT_SLL, 0x00000002},
		{"sll_full_wrap", 0x0000000D, 32, SHIFT_SLL, 0x0000000D},
		{"sll_wrap_plus_one", 0x0000000D, 33, SHIFT_SLL, 0x0000001A},
		{"srl_basic", 0x00000034, 2, SHIFT_SRL, 0x0000000D},
		{"srl_neg_zero_fill", 0x80000000, 4, SHIFT_SRL, 0x08000000},
		{"sra_pos", 0x40000000, 2, SHIFT_SRA, 0x10000000},
		{"sra_neg", 0x80000000, 4, SHIFT_SRA, 0xF8000000},
		{"sra_all_ones", 0xFFFFFFFF, 17, SHIFT_SRA, 0xFFFFFFFF},
	}

	for _, entry := range table {
		out, err := Shift(u32(entry.x), entry.amount, entry.op)
		assert.NoError(err, entry.name)
		assert.Equal(entry.out, val32(out), entry.name)
	}
}

func TestShiftZeroAmount(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []ShiftOp{SHIFT_SLL, SHIFT_SRL, SHIFT_SRA} {
		x := u32(0xDEADBEEF)
		out, err := Shift(x, 0, op)
		assert.NoError(err)
		assert.True(out.Equal(x), op.String())
	}
}

func TestShiftSignPreserved(t *testing.T) {
	assert := assert.New(t)

	// SRA never changes the sign of the input
	for _, x := range []uint32{0x80000000, 0xDEADBEEF, 0x7FFFFFFF, 1, 0} {
		for amount := range 32 {
			out, err := Shift(u32(x), amount, SHIFT_SRA)
			assert.NoError(err)
			assert.Equal(byte(x>>31), out.Sign(), "sra 0x%08X by %d", x, amount)
		}
	}
}

func TestShiftImmutable(t *testing.T) {
	assert := assert.New(t)

	x := u32(0x0000000D)
	_, err := Shift(x, 2, SHIFT_SLL)
	assert.NoError(err)
	assert.Equal(uint32(0x0000000D), val32(x))
}

func TestShiftErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Shift(nil, 1, SHIFT_SLL)
	assert.ErrorIs(err, bitvec.ErrWidthMismatch)

	_, err = Shift(u32(1), -1, SHIFT_SLL)
	assert.ErrorIs(err, ErrShiftAmount)

	_, err = Shift(u32(1), 1, ShiftOp(7))
	assert.ErrorIs(err, ErrShiftOp)
}

func TestShiftOpString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("sll", SHIFT_SLL.String())
	assert.Equal("sra", SHIFT_SRA.String())
}
