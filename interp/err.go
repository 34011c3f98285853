package interp

import (
	"errors"

	"github.com/ezrec/funge/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrTickBudget = errors.New(f("tick budget exhausted"))
)
