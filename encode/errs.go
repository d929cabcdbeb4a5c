package encode

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding  = errors.New("encoding error")
	ErrNonFinite = fmt.Errorf("%w: non-finite number", ErrEncoding)
)
