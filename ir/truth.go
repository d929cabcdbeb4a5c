package ir

// Truth reports whether node counts as true: non-empty containers and
// strings, true, and numbers other than zero and NaN.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType, ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		switch node.Number.Kind {
		case InlineNumber:
			return node.Number.Units != 0
		case NaNNumber, SNaNNumber:
			return false
		case InfinityNumber:
			return true
		default:
			return node.Number.Float64() != 0
		}
	case BoolType:
		return node.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
