package libdiff

import (
	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/ir"
)

// Diff returns the changes turning from into to. Objects are compared by
// key and may not repeat keys. Arrays are compared by index and scalars by
// value. A nil node is treated as null.
//
// The result is empty when the trees are equal. Applying it to from in
// order, with Apply or as a patch document from ToPatch, yields to.
func Diff(from, to *ir.Node) ([]Change, error) {
	var res []Change
	if err := diffNode(nil, from, to, &res); err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("diff %s -> %s: %d changes", from, to, len(res))
	}
	return res, nil
}

func diffNode(p prefix, from, to *ir.Node, out *[]Change) error {
	if from == nil {
		from = ir.Null()
	}
	if to == nil {
		to = ir.Null()
	}
	if from.Type != to.Type {
		*out = append(*out, makeReplace(p, from, to))
		return nil
	}
	same := true
	switch from.Type {
	case ir.BoolType:
		same = from.Bool == to.Bool
	case ir.StringType:
		same = from.String == to.String
	case ir.NumberType:
		same = numberEqual(from.Number, to.Number)
	case ir.ArrayType:
		return diffArray(p, from, to, out)
	case ir.ObjectType:
		return diffObject(p, from, to, out)
	}
	if !same {
		*out = append(*out, makeReplace(p, from, to))
	}
	return nil
}
