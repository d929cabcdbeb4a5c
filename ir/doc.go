// Package ir provides the in-memory tree for JSON documents.
//
// # Overview
//
// Every document, whether parsed from text or built by an encoder, is a
// tree of *Node values. The tree carries no position information and no
// formatting; it is purely structural, and it is never mutated once built,
// so it may be shared freely between goroutines.
//
// # Node Structure
//
// Node works as a tagged union. Type selects which payload is meaningful:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - StringType: String, the unescaped text
//   - NumberType: Number
//   - ArrayType: Values, in order
//   - ObjectType: Fields and Values, parallel slices, in document order
//
// Objects are ordered sequences of key/value pairs rather than maps.
// Duplicate keys are representable; callers that need a map detect
// duplicates at decode time (see package codec).
//
// # Numbers
//
// Number keeps numeric literals without loss. Most literals are held
// inline as a 64-bit magnitude and a count of decimal places, so that
// "1.10" renders as "1.10" again. Literals too large for that form keep
// their text. Infinity and NaN values exist for the extended grammar and
// for encoding Go floats.
//
//	n := ir.Inline(false, 50, 1) // 5.0
//	_, err := n.Int64()          // fails: not an integer literal
//	f := n.Float64()             // 5
//
// # Paths
//
// Path addresses nodes in a tree:
//
//	$.users[3].id
//	$.'dotted.field'
//	$.items[*].name
//	$..id
//
// Paths also annotate decoding errors and diffs.
package ir
