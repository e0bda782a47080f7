package engine

import (
	"errors"

	"github.com/uclarch/rv32core/translate"
)

var f = translate.From

var ErrOp = errors.New(f("engine op invalid"))

// ErrExecute tags a failure with the operation being executed.
type ErrExecute Op

func (ee ErrExecute) Error() string {
	return f("execute %v", Op(ee).String())
}

func (ee ErrExecute) Is(err error) (ok bool) {
	_, ok = err.(ErrExecute)
	return
}
