package encode

import "github.com/signadot/jsonv/ir"

// MustString is String for trees known to be encodable. It panics on
// error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
