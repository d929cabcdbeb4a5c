package codec

import (
	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/ir"
)

// ObjectDecoder indexes the fields of an object by key.
type ObjectDecoder struct {
	index map[ir.Key]*ir.Node
}

// NewObjectDecoder indexes the object n. Repeated keys give a
// *DuplicateKeyError.
func NewObjectDecoder(n *ir.Node) (*ObjectDecoder, error) {
	obj, err := MatchObject(n)
	if err != nil {
		return nil, err
	}
	d := &ObjectDecoder{index: make(map[ir.Key]*ir.Node, len(obj))}
	for _, kv := range obj {
		if _, dup := d.index[kv.Key]; dup {
			return nil, &DuplicateKeyError{Key: kv.Key}
		}
		d.index[kv.Key] = kv.Val
	}
	return d, nil
}

// NewCodingKeyDecoder indexes only the fields whose key lookup maps to a
// coding key. Other fields are ignored, so documents may carry fields a
// schema does not know about yet.
func NewCodingKeyDecoder[K ~string](n *ir.Node, lookup func(ir.Key) (K, bool)) (*ObjectDecoder, error) {
	obj, err := MatchObject(n)
	if err != nil {
		return nil, err
	}
	d := &ObjectDecoder{index: make(map[ir.Key]*ir.Node, len(obj))}
	for _, kv := range obj {
		ck, ok := lookup(kv.Key)
		if !ok {
			if debug.Decode() {
				debug.Logf("decode: ignoring field %q", kv.Key)
			}
			continue
		}
		k := ir.Key(ck)
		if _, dup := d.index[k]; dup {
			return nil, &DuplicateKeyError{Key: k}
		}
		d.index[k] = kv.Val
	}
	return d, nil
}

// CodingKeys returns a lookup accepting exactly keys.
func CodingKeys[K ~string](keys ...K) func(ir.Key) (K, bool) {
	m := make(map[ir.Key]K, len(keys))
	for _, k := range keys {
		m[ir.Key(k)] = k
	}
	return func(k ir.Key) (K, bool) {
		ck, ok := m[k]
		return ck, ok
	}
}

func (d *ObjectDecoder) Len() int { return len(d.index) }

func (d *ObjectDecoder) Has(k ir.Key) bool {
	_, ok := d.index[k]
	return ok
}

// Get returns the value at k or nil.
func (d *ObjectDecoder) Get(k ir.Key) *ir.Node {
	return d.index[k]
}

// Decode calls f on the value at k. A missing key gives an
// *UndefinedKeyError; errors from f are annotated with k.
func (d *ObjectDecoder) Decode(k ir.Key, f func(*ir.Node) error) error {
	v, ok := d.index[k]
	if !ok {
		return &UndefinedKeyError{Key: k}
	}
	return wrapKey(k, f(v))
}

// DecodeOptional is Decode for optional fields: a missing key or a null
// value is skipped.
func (d *ObjectDecoder) DecodeOptional(k ir.Key, f func(*ir.Node) error) error {
	v := d.index[k]
	if v.IsNull() {
		return nil
	}
	return wrapKey(k, f(v))
}

// Field decodes the value at k as T.
func Field[T Scalar, K ~string](d *ObjectDecoder, k K) (T, error) {
	var res T
	err := d.Decode(ir.Key(k), func(n *ir.Node) error {
		var err error
		res, err = Match[T](n)
		return err
	})
	return res, err
}

// OptionalField is Field for optional fields; ok is false when the key is
// missing or null.
func OptionalField[T Scalar, K ~string](d *ObjectDecoder, k K) (res T, ok bool, err error) {
	err = d.DecodeOptional(ir.Key(k), func(n *ir.Node) error {
		var err error
		res, ok, err = FlatMatch[T](n)
		return err
	})
	return res, ok, err
}
