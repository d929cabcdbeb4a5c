package libdiff

import "errors"

// Op is a change operation, named after its RFC 6902 counterpart.
type Op string

const (
	Add     Op = "add"
	Remove  Op = "remove"
	Replace Op = "replace"
)

var (
	ErrDiff  = errors.New("diff error")
	ErrApply = errors.New("apply error")
)
