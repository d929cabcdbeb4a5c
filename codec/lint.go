package codec

import (
	"slices"

	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/ir"
)

// Dict is the set of fields of an object not yet consumed by decoding.
type Dict struct {
	fields []ir.KeyVal
	used   []bool
}

func newDict(obj Object) *Dict {
	return &Dict{fields: obj, used: make([]bool, len(obj))}
}

// Lint runs f over the fields of the object n. When f succeeds, any field
// neither consumed from the Dict nor listed in whitelist is reported in a
// *LintingError.
func Lint(n *ir.Node, f func(*Dict) error, whitelist ...ir.Key) error {
	obj, err := MatchObject(n)
	if err != nil {
		return err
	}
	d := newDict(obj)
	if err := f(d); err != nil {
		return err
	}
	var unused []ir.KeyVal
	for i, kv := range d.fields {
		if d.used[i] || slices.Contains(whitelist, kv.Key) {
			continue
		}
		unused = append(unused, kv)
	}
	if len(unused) == 0 {
		return nil
	}
	if debug.Decode() {
		debug.Logf("decode: %d unused fields in %s", len(unused), n)
	}
	return &LintingError{Unused: unused}
}

func (d *Dict) take(k ir.Key) (*ir.Node, bool) {
	for i, kv := range d.fields {
		if !d.used[i] && kv.Key == k {
			d.used[i] = true
			return kv.Val, true
		}
	}
	return nil, false
}

// Len returns the number of fields not yet consumed.
func (d *Dict) Len() int {
	n := 0
	for _, u := range d.used {
		if !u {
			n++
		}
	}
	return n
}

// Pop consumes the required field k.
func (d *Dict) Pop(k ir.Key) (*ir.Node, error) {
	v, ok := d.take(k)
	if !ok {
		return nil, &UndefinedKeyError{Key: k}
	}
	return v, nil
}

// PopWith consumes the required field k and decodes it with f.
func (d *Dict) PopWith(k ir.Key, f func(*ir.Node) error) error {
	v, err := d.Pop(k)
	if err != nil {
		return err
	}
	return wrapKey(k, f(v))
}

// Remove consumes the optional field k.
func (d *Dict) Remove(k ir.Key) (*ir.Node, bool) {
	return d.take(k)
}

// RemoveWith consumes the optional field k and, unless it is missing or
// null, decodes it with f.
func (d *Dict) RemoveWith(k ir.Key, f func(*ir.Node) error) error {
	v, _ := d.take(k)
	if v.IsNull() {
		return nil
	}
	return wrapKey(k, f(v))
}

func PopAs[T Scalar](d *Dict, k ir.Key) (T, error) {
	var res T
	err := d.PopWith(k, func(n *ir.Node) error {
		var err error
		res, err = Match[T](n)
		return err
	})
	return res, err
}

func RemoveAs[T Scalar](d *Dict, k ir.Key) (res T, ok bool, err error) {
	err = d.RemoveWith(k, func(n *ir.Node) error {
		var err error
		res, ok, err = FlatMatch[T](n)
		return err
	})
	return res, ok, err
}
