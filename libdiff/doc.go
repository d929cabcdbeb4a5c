// Package libdiff computes structural differences between JSON trees.
//
// [Diff] returns a list of [Change] values addressed by [ir.Path]. The
// list can be applied natively with [Apply], inverted with [Reverse], or
// rendered as an RFC 6902 patch document with [ToPatch]. String
// replacements can be broken down further into character hunks with
// [StringHunks].
package libdiff
