package fpu

import (
	"errors"

	"github.com/uclarch/rv32core/translate"
)

var f = translate.From

var (
	ErrSignBit      = errors.New(f("sign must be 0 or 1"))
	ErrRoundingMode = errors.New(f("rounding mode invalid"))
)
