package codec

import (
	"reflect"
	"unsafe"

	"github.com/signadot/jsonv/ir"
)

type buildOpts struct {
	elideEmpty bool
}

type BuildOption func(*buildOpts)

// ElideEmpty drops empty arrays and objects added to a builder, including
// nested builders that end up empty.
func ElideEmpty() BuildOption {
	return func(o *buildOpts) { o.elideEmpty = true }
}

func newBuildOpts(opts []BuildOption) buildOpts {
	o := buildOpts{}
	for _, f := range opts {
		f(&o)
	}
	return o
}

func (o buildOpts) elide(n *ir.Node) bool {
	if !o.elideEmpty || n == nil {
		return false
	}
	return (n.Type == ir.ArrayType || n.Type == ir.ObjectType) && len(n.Values) == 0
}

type ArrayBuilder struct {
	opts   buildOpts
	values []*ir.Node
}

func NewArrayBuilder(opts ...BuildOption) *ArrayBuilder {
	return &ArrayBuilder{opts: newBuildOpts(opts)}
}

// Append adds n, or null if n is nil.
func (b *ArrayBuilder) Append(n *ir.Node) *ArrayBuilder {
	if n == nil {
		n = ir.Null()
	}
	if b.opts.elide(n) {
		return b
	}
	b.values = append(b.values, n)
	return b
}

// AppendArray builds a nested array with f and appends it.
func (b *ArrayBuilder) AppendArray(f func(*ArrayBuilder)) *ArrayBuilder {
	sub := &ArrayBuilder{opts: b.opts}
	f(sub)
	return b.Append(sub.Node())
}

func (b *ArrayBuilder) AppendObject(f func(*ObjectBuilder)) *ArrayBuilder {
	sub := &ObjectBuilder{opts: b.opts}
	f(sub)
	return b.Append(sub.Node())
}

func (b *ArrayBuilder) Len() int { return len(b.values) }

func (b *ArrayBuilder) Node() *ir.Node {
	return ir.FromSlice(b.values)
}

type ObjectBuilder struct {
	opts buildOpts
	kvs  []ir.KeyVal
}

func NewObjectBuilder(opts ...BuildOption) *ObjectBuilder {
	return &ObjectBuilder{opts: newBuildOpts(opts)}
}

// Set appends the field k. Fields keep the order they are set in.
func (b *ObjectBuilder) Set(k ir.Key, n *ir.Node) *ObjectBuilder {
	if n == nil {
		n = ir.Null()
	}
	if b.opts.elide(n) {
		return b
	}
	b.kvs = append(b.kvs, ir.KeyVal{Key: k, Val: n})
	return b
}

func (b *ObjectBuilder) SetArray(k ir.Key, f func(*ArrayBuilder)) *ObjectBuilder {
	sub := &ArrayBuilder{opts: b.opts}
	f(sub)
	return b.Set(k, sub.Node())
}

func (b *ObjectBuilder) SetObject(k ir.Key, f func(*ObjectBuilder)) *ObjectBuilder {
	sub := &ObjectBuilder{opts: b.opts}
	f(sub)
	return b.Set(k, sub.Node())
}

func (b *ObjectBuilder) Len() int { return len(b.kvs) }

func (b *ObjectBuilder) Node() *ir.Node {
	return ir.FromKeyVals(b.kvs)
}

// Encode returns the leaf node for v.
func Encode[T Scalar](v T) *ir.Node {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return ir.FromBool(rv.Bool())
	case reflect.String:
		return ir.FromString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromUint(rv.Uint())
	case reflect.Float32:
		return ir.FromFloat32(*(*float32)(unsafe.Pointer(&v)))
	default:
		return ir.FromFloat(*(*float64)(unsafe.Pointer(&v)))
	}
}
