// Package codec projects [ir.Node] trees onto Go values and builds trees
// from them, without reflection over user types.
//
// Decoding is written by hand against a small set of helpers:
//
//	func (u *User) FromIR(n *ir.Node) error {
//		return codec.Lint(n, func(d *codec.Dict) error {
//			var err error
//			if u.ID, err = codec.PopAs[int64](d, "id"); err != nil {
//				return err
//			}
//			u.Name, _, err = codec.RemoveAs[string](d, "name")
//			return err
//		})
//	}
//
// [Lint] reports any field the closure did not consume, [ObjectDecoder]
// rejects duplicate keys, and the [Array] methods check lengths. Errors
// from nested closures are wrapped in a [*PathError] at each object or
// array boundary, so a failure deep in a document reads
//
//	decoding $.users[3].id: decode error: type mismatch: expected Number, got String
//
// Numeric projections are exact: [As] and [Match] fail with a
// *ir.NumberError rather than truncate or round an integer.
//
// For encoding, [ArrayBuilder] and [ObjectBuilder] accumulate already
// built nodes, and [Encode] turns a Go scalar into a leaf.
package codec
