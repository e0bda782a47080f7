package engine

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/uclarch/rv32core/alu"
	"github.com/uclarch/rv32core/bitvec"
	"github.com/uclarch/rv32core/codec"
	"github.com/uclarch/rv32core/fpu"
	"github.com/uclarch/rv32core/internal"
	"github.com/uclarch/rv32core/mdu"
)

// XLEN is the operand width of the execute unit.
const XLEN = codec.XLEN

// shamtBits is the number of low operand bits that select a shift amount.
const shamtBits = 5

var _engine_defines = map[string]string{
	"FLEN":       fmt.Sprintf("%v", fpu.WIDTH),
	"SHAMT_BITS": fmt.Sprintf("%v", shamtBits),
}

// Op is an execute-unit operation selector.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD    = Op(0)  // add
	OP_SUB    = Op(1)  // sub
	OP_AND    = Op(2)  // and
	OP_OR     = Op(3)  // or
	OP_XOR    = Op(4)  // xor
	OP_SLL    = Op(5)  // sll
	OP_SRL    = Op(6)  // srl
	OP_SRA    = Op(7)  // sra
	OP_SLT    = Op(8)  // slt
	OP_SLTU   = Op(9)  // sltu
	OP_MUL    = Op(10) // mul
	OP_MULH   = Op(11) // mulh
	OP_MULHU  = Op(12) // mulhu
	OP_MULHSU = Op(13) // mulhsu
	OP_DIV    = Op(14) // div
	OP_DIVU   = Op(15) // divu
	OP_REM    = Op(16) // rem
	OP_REMU   = Op(17) // remu
	OP_FADD   = Op(18) // fadd
	OP_FSUB   = Op(19) // fsub
	OP_FMUL   = Op(20) // fmul
	OP_PASS_A = Op(21) // pass_a
	OP_PASS_B = Op(22) // pass_b
)

// Result is an execute-unit output: result bits, the integer condition
// flags, the floating exception flags, and the unit's trace if any.
type Result struct {
	Bits  bitvec.Bits
	N     bool
	Z     bool
	C     bool
	V     bool
	FP    fpu.Flags
	Trace []string
}

// Engine is one core's execute unit. It owns the core's FCSR.
type Engine struct {
	Verbose bool // Set to enable verbose logging.

	FCSR *fpu.FCSR
}

// New creates an execute unit with a fresh FCSR.
func New() *Engine {
	return &Engine{
		FCSR: fpu.NewFCSR(),
	}
}

// Defines returns an iterator over all architectural defines of the core.
func (e *Engine) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_engine_defines),
		codec.Defines(),
		mdu.Defines(),
		fpu.Defines(),
	)
}

// widen pads a narrow operand to XLEN with zeros. Operands wider than XLEN
// are a contract violation.
func widen(b bitvec.Bits) (bitvec.Bits, error) {
	if len(b) > XLEN {
		return nil, bitvec.ErrWidthMismatch
	}
	return b.LeftPad(XLEN, 0)
}

// Execute dispatches one operation to its unit and returns the result bits
// and flags. Floating operations additionally accumulate their exception
// flags into the engine's FCSR.
func (e *Engine) Execute(op Op, a, b bitvec.Bits) (res Result, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrExecute(op), err)
		}
	}()

	a, err = widen(a)
	if err != nil {
		return
	}
	b, err = widen(b)
	if err != nil {
		return
	}

	if e.Verbose {
		log.Printf("engine: %v a=0x%v b=0x%v", op, a.Hex(), b.Hex())
	}

	switch op {
	case OP_ADD, OP_SUB, OP_AND, OP_OR, OP_XOR, OP_SLT, OP_SLTU:
		aluOp := map[Op]alu.Op{
			OP_ADD:  alu.OP_ADD,
			OP_SUB:  alu.OP_SUB,
			OP_AND:  alu.OP_AND,
			OP_OR:   alu.OP_OR,
			OP_XOR:  alu.OP_XOR,
			OP_SLT:  alu.OP_SLT,
			OP_SLTU: alu.OP_SLTU,
		}[op]
		var out alu.Result
		out, err = alu.Execute(a, b, aluOp)
		if err != nil {
			return
		}
		res.Bits = out.Bits
		res.N, res.Z, res.C, res.V = out.N, out.Z, out.C, out.V
	case OP_SLL, OP_SRL, OP_SRA:
		shiftOp := map[Op]alu.ShiftOp{
			OP_SLL: alu.SHIFT_SLL,
			OP_SRL: alu.SHIFT_SRL,
			OP_SRA: alu.SHIFT_SRA,
		}[op]
		amount, _ := codec.Unsigned(codec.Truncate(b, shamtBits))
		res.Bits, err = alu.Shift(a, int(amount), shiftOp)
		if err != nil {
			return
		}
		res.N, res.Z = logicFlags(res.Bits)
	case OP_MUL, OP_MULH, OP_MULHU, OP_MULHSU:
		mulOp := map[Op]mdu.MulOp{
			OP_MUL:    mdu.OP_MUL,
			OP_MULH:   mdu.OP_MULH,
			OP_MULHU:  mdu.OP_MULHU,
			OP_MULHSU: mdu.OP_MULHSU,
		}[op]
		var out mdu.MulResult
		out, err = mdu.Mul(mulOp, a, b)
		if err != nil {
			return
		}
		res.Bits = out.RD
		res.Trace = out.Trace
		res.N, res.Z = logicFlags(res.Bits)
	case OP_DIV, OP_DIVU, OP_REM, OP_REMU:
		divOp := map[Op]mdu.DivOp{
			OP_DIV:  mdu.OP_DIV,
			OP_DIVU: mdu.OP_DIVU,
			OP_REM:  mdu.OP_REM,
			OP_REMU: mdu.OP_REMU,
		}[op]
		var out mdu.DivResult
		out, err = mdu.Div(divOp, a, b)
		if err != nil {
			return
		}
		switch op {
		case OP_DIV, OP_DIVU:
			res.Bits = out.Q
		default:
			res.Bits = out.R
		}
		res.Trace = out.Trace
		res.N, res.Z = logicFlags(res.Bits)
		res.V = out.Overflow
	case OP_FADD, OP_FSUB, OP_FMUL:
		var out fpu.FPResult
		switch op {
		case OP_FADD:
			out, err = fpu.Add(a, b)
		case OP_FSUB:
			out, err = fpu.Sub(a, b)
		default:
			out, err = fpu.Mul(a, b)
		}
		if err != nil {
			return
		}
		res.Bits = out.Bits
		res.FP = out.Flags
		res.Trace = out.Trace
		e.FCSR.Accumulate(out.Flags)
	case OP_PASS_A:
		res.Bits = a.Clone()
		res.N, res.Z = logicFlags(res.Bits)
	case OP_PASS_B:
		res.Bits = b.Clone()
		res.N, res.Z = logicFlags(res.Bits)
	default:
		err = ErrOp
		return
	}

	return
}

// logicFlags derives N and Z for operations that do not produce carry or
// overflow.
func logicFlags(bits bitvec.Bits) (n, z bool) {
	return bits.Sign() == 1, bits.IsZero()
}
