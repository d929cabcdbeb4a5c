// Package parse turns JSON text into an [ir.Node] tree.
//
// The grammar is written as small rules over a [Cursor]. Each rule either
// consumes input and returns a value, or returns [ErrNoMatch] and leaves
// the cursor untouched, so rules compose by sequence and ordered
// alternation. Rules are generic over [Input], so the same grammar runs
// over []byte and string without copying.
//
// By default a document must be an object or an array. [ParseFragment]
// admits any value at the top level, and [ParseNonFinite] admits the
// literals inf, -inf, nan and snan.
//
// Failures are reported as a [*SyntaxError] at the furthest offset the
// grammar reached, which is usually where the input stops making sense.
// Lone surrogate escapes yield [*InvalidScalarError] and excessive
// nesting yields [*DepthError]; both abort immediately instead of being
// retried by an alternative.
package parse
