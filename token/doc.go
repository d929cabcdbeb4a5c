// Package token provides the lexical layer of the JSON grammar.
//
// The classifiers here ([IsWhitespace], [IsDigit], [HexValue],
// [IsStringByte], [Unescape]) operate on single bytes; the grammar in
// package parse composes them into rules. UTF-8 sequences are opaque: every
// byte at or above 0x20 other than '"' and '\\' may appear unescaped in a
// string.
//
// [Quote] and [AppendQuote] perform the reverse mapping for serialization,
// and [PosDoc] turns byte offsets into line and column numbers for error
// reporting.
package token
