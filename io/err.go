package io

import (
	"errors"

	"github.com/ezrec/funge/translate"
)

var f = translate.From

var (
	// Host access errors
	ErrAccessDenied = errors.New(f("host access denied"))
)
