package ir

import (
	"maps"
	"slices"
)

// Key is an unescaped object field name.
type Key string

func (k Key) String() string { return string(k) }

// Node is a JSON value. The payload lives in the field matching Type:
// Bool, String, Number, Values for arrays, and Fields with Values in
// parallel for objects. Nodes are not modified after construction.
type Node struct {
	Type Type

	Bool   bool
	String string
	Number Number

	Fields []Key
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromNumber(n Number) *Node {
	return &Node{
		Type:   NumberType,
		Number: n,
	}
}

func FromInt(v int64) *Node {
	return FromNumber(NumberFromInt(v))
}

func FromUint(v uint64) *Node {
	return FromNumber(NumberFromUint(v))
}

func FromFloat(f float64) *Node {
	return FromNumber(NumberFromFloat(f))
}

func FromFloat32(f float32) *Node {
	return FromNumber(NumberFromFloat32(f))
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: slices.Clone(ySlice),
	}
}

type KeyVal struct {
	Key Key
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]Key, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object with the keys of m in sorted order.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	res := &Node{
		Type:   ObjectType,
		Fields: make([]Key, len(keys)),
		Values: make([]*Node, len(keys)),
	}
	for i, key := range keys {
		res.Fields[i] = Key(key)
		res.Values[i] = m[key]
	}
	return res
}

// KeyVals returns the fields of an object as pairs, in order.
func (y *Node) KeyVals() []KeyVal {
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	return res
}

// Get returns the value of the first field named k, or nil.
func (y *Node) Get(k Key) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == k {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) IsNull() bool {
	return y == nil || y.Type == NullType
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Bool = y.Bool
	dst.String = y.String
	dst.Number = y.Number
	dst.Fields = slices.Clone(y.Fields)
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	} else {
		dst.Values = nil
	}
	return dst
}

// Visit walks the tree calling f before (isPost false) and after (isPost
// true) the children of each node. Children are skipped when f returns
// false on the way down.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
