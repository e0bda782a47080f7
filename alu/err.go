package alu

import (
	"errors"

	"github.com/uclarch/rv32core/translate"
)

var f = translate.From

var (
	ErrOp          = errors.New(f("alu op invalid"))
	ErrShiftOp     = errors.New(f("shift op invalid"))
	ErrShiftAmount = errors.New(f("shift amount negative"))
)
