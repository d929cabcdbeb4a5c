// Package encode serializes [ir.Node] trees as JSON text.
//
// Output is compact unless [EncodeIndent] is given. Strings are quoted with
// [token.AppendQuote] and numbers are written from their stored
// representation, so parsing the output yields a tree equal to the input
// and serializing that tree again yields the same bytes.
//
// Infinities and NaNs are written as the literals inf, -inf, nan and snan,
// which package parse reads back under parse.ParseNonFinite. Use
// [EncodeStrict] to reject them instead.
package encode
