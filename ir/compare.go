package ir

// Equal reports whether a and b are structurally equal: same types, same
// field order and keys, same scalar payloads and number representations.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return a.Number.Equal(b.Number)
	case ArrayType:
		return equalValues(a, b)
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
		}
		return equalValues(a, b)
	}
	return false
}

func equalValues(a, b *Node) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

// Equal is ir.Equal as a method, which lets go-cmp compare trees.
func (y *Node) Equal(o *Node) bool {
	return Equal(y, o)
}
