package fingerprint

import (
	"errors"

	"github.com/ezrec/funge/translate"
)

var f = translate.From

var (
	// Script errors
	ErrScriptName = errors.New(f("fingerprint script does not bind NAME"))
)
