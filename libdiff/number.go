package libdiff

import "github.com/signadot/jsonv/ir"

// numberEqual compares inline numbers by value, so 1.50 and 1.5 make no
// change. Other kinds compare by representation.
func numberEqual(a, b ir.Number) bool {
	if a.Kind == ir.InlineNumber && b.Kind == ir.InlineNumber {
		return normalize(a) == normalize(b)
	}
	return a.Equal(b)
}

func normalize(n ir.Number) ir.Number {
	if n.Kind != ir.InlineNumber {
		return n
	}
	for n.Places > 0 && n.Units%10 == 0 {
		n.Units /= 10
		n.Places--
	}
	if n.Units == 0 {
		n.Neg = false
		n.Places = 0
	}
	return n
}
