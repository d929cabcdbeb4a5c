package jsonv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch applies the RFC 6902 patch document ops to doc.
//
// Operations apply in order. A replace, remove or test whose target does
// not exist fails with ErrPatch.
// Values the patch does not touch keep their number representation.
// Object fields of the result come out sorted by key, as the patch library
// writes them.
// Documents holding non-finite numbers cannot be patched since they have
// no strict JSON form.
func Patch(doc, ops *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("patch %s with %s", doc, ops)
	}
	if ops == nil || ops.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: patch must be an array of operations", ErrPatch)
	}
	if len(ops.Values) == 0 {
		return transform(doc, func(d []byte) ([]byte, error) { return d, nil })
	}
	for i, op := range ops.Values {
		if err := checkTarget(doc, op); err != nil {
			return nil, fmt.Errorf("%w: op %d: %w", ErrPatch, i, err)
		}
		d, err := encode.Append(nil, ir.FromSlice([]*ir.Node{op}), encode.EncodeStrict(true))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		p, err := jsonpatch.DecodePatch(d)
		if err != nil {
			return nil, fmt.Errorf("%w: op %d: %w", ErrPatch, i, err)
		}
		if doc, err = transform(doc, p.Apply); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// checkTarget requires the path of replace, remove and test operations to
// name an existing value of doc.
func checkTarget(doc, op *ir.Node) error {
	kind := op.Get("op")
	if kind == nil || kind.Type != ir.StringType {
		return nil
	}
	switch kind.String {
	case "replace", "remove", "test":
	default:
		return nil
	}
	path := op.Get("path")
	if path == nil || path.Type != ir.StringType {
		return nil
	}
	if _, ok := resolvePointer(doc, path.String); !ok {
		return fmt.Errorf("%s: no value at %q", kind.String, path.String)
	}
	return nil
}

// resolvePointer finds the value an RFC 6901 pointer names in n.
func resolvePointer(n *ir.Node, ptr string) (*ir.Node, bool) {
	if ptr == "" {
		return n, n != nil
	}
	if ptr[0] != '/' {
		return nil, false
	}
	for _, seg := range strings.Split(ptr[1:], "/") {
		seg = strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")
		switch {
		case n == nil:
			return nil, false
		case n.Type == ir.ObjectType:
			n = n.Get(ir.Key(seg))
		case n.Type == ir.ArrayType:
			if seg == "" || (len(seg) > 1 && seg[0] == '0') || strings.TrimLeft(seg, "0123456789") != "" {
				return nil, false
			}
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(n.Values) {
				return nil, false
			}
			n = n.Values[i]
		default:
			return nil, false
		}
	}
	return n, n != nil
}

// MergePatch applies the RFC 7386 merge patch patch to doc: null fields in
// patch remove, objects merge recursively and other values replace.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s with %s", doc, patch)
	}
	p, err := encode.Append(nil, patch, encode.EncodeStrict(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return transform(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, p)
	})
}

// MergeDiff produces an RFC 7386 merge patch turning from into to.
func MergeDiff(from, to *ir.Node) (*ir.Node, error) {
	f, err := encode.Append(nil, from, encode.EncodeStrict(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	t, err := encode.Append(nil, to, encode.EncodeStrict(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(d, parse.ParseFragment())
}

func transform(doc *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	d, err := encode.Append(nil, doc, encode.EncodeStrict(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out, parse.ParseFragment())
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch result %s", res)
	}
	return res, nil
}
