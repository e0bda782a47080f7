package mdu

import (
	"errors"

	"github.com/uclarch/rv32core/translate"
)

var f = translate.From

var (
	ErrMulOp = errors.New(f("mul op invalid"))
	ErrDivOp = errors.New(f("div op invalid"))
)
