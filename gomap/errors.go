package gomap

import "fmt"

// MarshalError reports a Go value with no tree form.
type MarshalError struct {
	FieldPath string // e.g. "$.items[2]"
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
