package libdiff

// Reverse returns the changes undoing cs: applying cs and then Reverse(cs)
// gives back the original document. Each change is inverted in place and
// the order is reversed, so paths stay valid.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Add:
			r.Op = Remove
		case Remove:
			r.Op = Add
		default:
			r.Op = c.Op
		}
		res[len(cs)-1-i] = r
	}
	return res
}
