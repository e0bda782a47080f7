package bitvec

import (
	"errors"

	"github.com/uclarch/rv32core/translate"
)

var f = translate.From

var (
	ErrWidthMismatch = errors.New(f("width mismatch"))
	ErrNarrowing     = errors.New(f("width narrowing"))
)

type ErrBitString string

func (eb ErrBitString) Error() string {
	return f("'%v' is not a binary string", string(eb))
}
