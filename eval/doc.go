// Package eval runs expr-lang programs over JSON documents.
//
// A program sees the document as the variable doc, converted with
// gomap.ToAny, together with any variables passed through [EvalEnv]. The
// functions getpath and listpath resolve ir paths against the document;
// getenv, fromjson, tojson and anything added with [Register] are
// available as well.
//
//	n, _ := eval.Eval(doc, `len(listpath("$.items[*]"))`)
//	kept, _ := eval.Filter(items, `it.price > 10`)
package eval
