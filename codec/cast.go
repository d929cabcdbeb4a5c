package codec

import (
	"reflect"
	"unsafe"

	"github.com/signadot/jsonv/ir"
)

// Scalar is the set of Go types a leaf node projects onto.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// As projects n onto T. ok is false when n is missing or of a different
// kind than T. A number that cannot be represented exactly as an integer
// type T yields a *ir.NumberError with ok true.
func As[T Scalar](n *ir.Node) (T, bool, error) {
	var v T
	if n == nil {
		return v, false, nil
	}
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Bool:
		if n.Type != ir.BoolType {
			return v, false, nil
		}
		rv.SetBool(n.Bool)
	case reflect.String:
		if n.Type != ir.StringType {
			return v, false, nil
		}
		rv.SetString(n.String)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n.Type != ir.NumberType {
			return v, false, nil
		}
		i, err := signed(n.Number, rv.Kind())
		if err != nil {
			return v, true, err
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n.Type != ir.NumberType {
			return v, false, nil
		}
		u, err := unsigned(n.Number, rv.Kind())
		if err != nil {
			return v, true, err
		}
		rv.SetUint(u)
	case reflect.Float32:
		if n.Type != ir.NumberType {
			return v, false, nil
		}
		// assign through the pointer; a float64 round trip would quiet
		// signaling NaNs
		*(*float32)(unsafe.Pointer(&v)) = n.Number.Float32()
	case reflect.Float64:
		if n.Type != ir.NumberType {
			return v, false, nil
		}
		*(*float64)(unsafe.Pointer(&v)) = n.Number.Float64()
	}
	return v, true, nil
}

func signed(n ir.Number, k reflect.Kind) (int64, error) {
	switch k {
	case reflect.Int8:
		v, err := n.Int8()
		return int64(v), err
	case reflect.Int16:
		v, err := n.Int16()
		return int64(v), err
	case reflect.Int32:
		v, err := n.Int32()
		return int64(v), err
	case reflect.Int:
		v, err := n.Int()
		return int64(v), err
	default:
		return n.Int64()
	}
}

func unsigned(n ir.Number, k reflect.Kind) (uint64, error) {
	switch k {
	case reflect.Uint8:
		v, err := n.Uint8()
		return uint64(v), err
	case reflect.Uint16:
		v, err := n.Uint16()
		return uint64(v), err
	case reflect.Uint32:
		v, err := n.Uint32()
		return uint64(v), err
	case reflect.Uint:
		v, err := n.Uint()
		return uint64(v), err
	default:
		return n.Uint64()
	}
}

func kindName[T Scalar]() string {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Bool:
		return ir.BoolType.String()
	case reflect.String:
		return ir.StringType.String()
	default:
		return ir.NumberType.String()
	}
}

// Match is As for values that must be present and of T's kind.
func Match[T Scalar](n *ir.Node) (T, error) {
	v, ok, err := As[T](n)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, typeError(kindName[T](), n)
	}
	return v, nil
}

// FlatMatch is Match for optional values: a missing node or an explicit
// null gives ok false and no error.
func FlatMatch[T Scalar](n *ir.Node) (T, bool, error) {
	if n.IsNull() {
		var zero T
		return zero, false, nil
	}
	v, err := Match[T](n)
	if err != nil {
		return v, false, err
	}
	return v, true, nil
}

// Array is the element list of an array node.
type Array []*ir.Node

// Object is the field list of an object node, in document order.
type Object []ir.KeyVal

func AsArray(n *ir.Node) (Array, bool) {
	if n == nil || n.Type != ir.ArrayType {
		return nil, false
	}
	return Array(n.Values), true
}

func AsObject(n *ir.Node) (Object, bool) {
	if n == nil || n.Type != ir.ObjectType {
		return nil, false
	}
	return Object(n.KeyVals()), true
}

func MatchArray(n *ir.Node) (Array, error) {
	a, ok := AsArray(n)
	if !ok {
		return nil, typeError(ir.ArrayType.String(), n)
	}
	return a, nil
}

func MatchObject(n *ir.Node) (Object, error) {
	o, ok := AsObject(n)
	if !ok {
		return nil, typeError(ir.ObjectType.String(), n)
	}
	return o, nil
}
