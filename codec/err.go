package codec

import (
	"github.com/uclarch/rv32core/translate"
)

var f = translate.From

type ErrWidthRange int

func (ew ErrWidthRange) Error() string {
	return f("width %v outside 1..64", int(ew))
}
