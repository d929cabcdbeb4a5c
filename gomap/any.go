package gomap

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/ir"
)

// ToAny converts n to plain Go values: nil, bool, string, int64, uint64,
// float64, []any and map[string]any. Integer literals become int64, or
// uint64 when they only fit unsigned; other numbers become float64. When
// an object repeats a key the last value wins.
func ToAny(n *ir.Node) any {
	return toAny(n, false)
}

// ToOrdered is ToAny with objects as yaml.MapSlice, keeping field order
// and duplicates.
func ToOrdered(n *ir.Node) any {
	return toAny(n, true)
}

func toAny(n *ir.Node, ordered bool) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.BoolType:
		return n.Bool
	case ir.StringType:
		return n.String
	case ir.NumberType:
		return number(n.Number)
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = toAny(v, ordered)
		}
		return res
	case ir.ObjectType:
		if ordered {
			res := make(yaml.MapSlice, len(n.Values))
			for i, v := range n.Values {
				res[i] = yaml.MapItem{Key: string(n.Fields[i]), Value: toAny(v, true)}
			}
			return res
		}
		res := make(map[string]any, len(n.Values))
		for i, v := range n.Values {
			res[string(n.Fields[i])] = toAny(v, false)
		}
		return res
	default:
		return nil
	}
}

func number(num ir.Number) any {
	if num.IsInteger() {
		if i, err := num.Int64(); err == nil {
			return i
		}
		if u, err := num.Uint64(); err == nil {
			return u
		}
	}
	return num.Float64()
}

// FromAny builds a tree from v. Maps with string keys are emitted with
// sorted keys; yaml.MapSlice keeps its order. *ir.Node values are used as
// is and codec.Marshaler values build their own subtree.
func FromAny(v any) (*ir.Node, error) {
	return fromAny(v, nil)
}

func fromAny(v any, path *pathBuf) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x, nil
	case codec.Marshaler:
		n, err := x.ToIR()
		if err != nil {
			return nil, &MarshalError{FieldPath: path.String(), Message: err.Error(), Err: err}
		}
		return n, nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromUint(uint64(x)), nil
	case uint8:
		return ir.FromUint(uint64(x)), nil
	case uint16:
		return ir.FromUint(uint64(x)), nil
	case uint32:
		return ir.FromUint(uint64(x)), nil
	case uint64:
		return ir.FromUint(x), nil
	case float32:
		return ir.FromFloat32(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		res := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := fromAny(elt, path.atIndex(i))
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return &ir.Node{Type: ir.ArrayType, Values: res}, nil
	case map[string]any:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := fromAny(x[k], path.atField(k))
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.Key(k), Val: n})
		}
		return ir.FromKeyVals(kvs), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			k := fmt.Sprint(item.Key)
			n, err := fromAny(item.Value, path.atField(k))
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.Key(k), Val: n})
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, &MarshalError{FieldPath: path.String(), Message: fmt.Sprintf("unsupported type %T", v)}
	}
}

// pathBuf tracks the position within a Go value for error messages. A nil
// *pathBuf is the root.
type pathBuf struct {
	parent *pathBuf
	field  *string
	index  int
}

func (p *pathBuf) atField(k string) *pathBuf { return &pathBuf{parent: p, field: &k} }

func (p *pathBuf) atIndex(i int) *pathBuf { return &pathBuf{parent: p, index: i} }

func (p *pathBuf) String() string {
	var path *ir.Path
	for x := p; x != nil; x = x.parent {
		if x.field != nil {
			path = ir.FieldPath(ir.Key(*x.field), path)
		} else {
			path = ir.IndexPath(x.index, path)
		}
	}
	return path.String()
}
