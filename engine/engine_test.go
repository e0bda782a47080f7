package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uclarch/rv32core/bitvec"
	"github.com/uclarch/rv32core/fpu"
)

// u32 builds a 32-bit vector from a host word.
func u32(x uint32) bitvec.Bits {
	b := bitvec.Zero(XLEN)
	for n := range XLEN {
		b[n] = byte(x >> (31 - n) & 1)
	}
	return b
}

// val32 reads a 32-bit vector back as a host word.
func val32(b bitvec.Bits) (x uint32) {
	for _, bit := range b {
		x = x<<1 | uint32(bit)
	}
	return
}

func TestExecuteDispatch(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		op   Op
		a    uint32
		b    uint32
		out  uint32
	}){
		{"add", OP_ADD, 40, 2, 42},
		{"sub", OP_SUB, 44, 2, 42},
		{"and", OP_AND, 0xFF00FF00, 0x0F0F0F0F, 0x0F000F00},
		{"or", OP_OR, 0xF0000000, 0x0000000F, 0xF000000F},
		{"xor", OP_XOR, 0xFFFFFFFF, 0x0F0F0F0F, 0xF0F0F0F0},
		{"sll", OP_SLL, 0x0000000D, 2, 0x00000034},
		{"srl", OP_SRL, 0x80000000, 4, 0x08000000},
		{"sra", OP_SRA, 0x80000000, 4, 0xF8000000},
		{"slt", OP_SLT, 0xFFFFFFFF, 1, 1},
		{"sltu", OP_SLTU, 0xFFFFFFFF, 1, 0},
		{"mul", OP_MUL, 6, 7, 42},
		{"mulh", OP_MULH, 0x80000000, 0x80000000, 0x40000000},
		{"mulhu", OP_MULHU, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFE},
		{"mulhsu", OP_MULHSU, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF},
		{"div", OP_DIV, 0xFFFFFFF9, 2, 0xFFFFFFFD},
		{"divu", OP_DIVU, 0xFFFFFFFF, 2, 0x7FFFFFFF},
		{"rem", OP_REM, 0xFFFFFFF9, 2, 0xFFFFFFFF},
		{"remu", OP_REMU, 0xFFFFFFFF, 10, 5},
		{"fadd", OP_FADD, 0x3FC00000, 0x40100000, 0x40700000},
		{"fsub", OP_FSUB, 0x40000000, 0x3FC00000, 0x3F000000},
		{"fmul", OP_FMUL, 0x3F800000, 0x40100000, 0x40100000},
		{"pass_a", OP_PASS_A, 0xDEADBEEF, 0, 0xDEADBEEF},
		{"pass_b", OP_PASS_B, 0, 0xDEADBEEF, 0xDEADBEEF},
	}

	e := New()
	for _, entry := range table {
		res, err := e.Execute(entry.op, u32(entry.a), u32(entry.b))
		assert.NoError(err, entry.name)
		assert.Equal(entry.out, val32(res.Bits), entry.name)
	}
}

func TestExecuteIntegerFlags(t *testing.T) {
	assert := assert.New(t)

	e := New()

	res, err := e.Execute(OP_ADD, u32(0x7FFFFFFF), u32(0x00000001))
	assert.NoError(err)
	assert.Equal(uint32(0x80000000), val32(res.Bits))
	assert.True(res.N)
	assert.False(res.Z)
	assert.False(res.C)
	assert.True(res.V)

	// DIV reports the INT_MIN/-1 singularity through V
	res, err = e.Execute(OP_DIV, u32(0x80000000), u32(0xFFFFFFFF))
	assert.NoError(err)
	assert.Equal(uint32(0x80000000), val32(res.Bits))
	assert.True(res.V)

	res, err = e.Execute(OP_SUB, u32(7), u32(7))
	assert.NoError(err)
	assert.True(res.Z)
	assert.False(res.N)
}

func TestExecuteShiftAmountField(t *testing.T) {
	assert := assert.New(t)

	e := New()

	// only the low five bits of b select the amount
	res, err := e.Execute(OP_SLL, u32(0x0000000D), u32(0xFFFFFFE2))
	assert.NoError(err)
	assert.Equal(uint32(0x00000034), val32(res.Bits))
}

func TestExecuteNarrowOperands(t *testing.T) {
	assert := assert.New(t)

	e := New()

	// narrow operands zero-extend to 32 bits
	a, err := bitvec.FromString("1101")
	assert.NoError(err)
	b, err := bitvec.FromString("10")
	assert.NoError(err)

	res, err := e.Execute(OP_ADD, a, b)
	assert.NoError(err)
	assert.Equal(uint32(15), val32(res.Bits))

	_, err = e.Execute(OP_ADD, bitvec.Zero(33), u32(0))
	assert.ErrorIs(err, bitvec.ErrWidthMismatch)
	assert.ErrorIs(err, ErrExecute(OP_ADD))
}

func TestExecuteAccumulatesFCSR(t *testing.T) {
	assert := assert.New(t)

	e := New()
	assert.Equal(fpu.Flags{}, e.FCSR.Fflags())

	// 1 + 2^-24 is inexact
	res, err := e.Execute(OP_FADD, u32(0x3F800000), u32(0x33800000))
	assert.NoError(err)
	assert.Equal(fpu.Flags{NX: true}, res.FP)
	assert.Equal(fpu.Flags{NX: true}, e.FCSR.Fflags())

	// flags stick across operations
	res, err = e.Execute(OP_FMUL, u32(0x00000000), u32(0x7F800000))
	assert.NoError(err)
	assert.True(res.FP.NV)
	assert.Equal(fpu.Flags{NV: true, NX: true}, e.FCSR.Fflags())

	res, err = e.Execute(OP_FADD, u32(0x3F800000), u32(0x3F800000))
	assert.NoError(err)
	assert.Equal(fpu.Flags{}, res.FP)
	assert.Equal(fpu.Flags{NV: true, NX: true}, e.FCSR.Fflags())
}

func TestExecuteTrace(t *testing.T) {
	assert := assert.New(t)

	e := New()

	res, err := e.Execute(OP_MUL, u32(6), u32(7))
	assert.NoError(err)
	assert.Len(res.Trace, 32)

	res, err = e.Execute(OP_DIVU, u32(0x12345678), u32(0))
	assert.NoError(err)
	assert.Equal([]string{"divide_by_zero"}, res.Trace)
}

func TestExecuteUnknownOp(t *testing.T) {
	assert := assert.New(t)

	e := New()

	_, err := e.Execute(Op(99), u32(0), u32(0))
	assert.ErrorIs(err, ErrOp)
	assert.ErrorIs(err, ErrExecute(Op(99)))
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range New().Defines() {
		defines[key] = value
	}

	assert.Equal("32", defines["XLEN"])
	assert.Equal("32", defines["FLEN"])
	assert.Equal("5", defines["SHAMT_BITS"])
	assert.Equal("32", defines["MUL_STEPS"])
	assert.Equal("127", defines["F32_BIAS"])
}

func TestOpString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", OP_ADD.String())
	assert.Equal("fmul", OP_FMUL.String())
	assert.Equal("pass_b", OP_PASS_B.String())
	assert.Equal("Op(99)", Op(99).String())
}
