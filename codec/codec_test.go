package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s, parse.ParseFragment(), parse.ParseNonFinite())
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return node
}

func TestAsOverflow(t *testing.T) {
	n := mustParse(t, "256")
	if _, _, err := As[int8](n); !errors.Is(err, ir.ErrOverflow) {
		t.Fatalf("int8: expected overflow, got %v", err)
	}
	if _, _, err := As[uint8](n); !errors.Is(err, ir.ErrOverflow) {
		t.Fatalf("uint8: expected overflow, got %v", err)
	}
	var ne *ir.NumberError
	if _, err := Match[int8](n); !errors.As(err, &ne) || ne.Target != "int8" {
		t.Fatalf("expected *ir.NumberError, got %v", err)
	}
	if v, err := Match[int16](n); err != nil || v != 256 {
		t.Fatalf("int16: %d %v", v, err)
	}
	if v, err := Match[uint32](n); err != nil || v != 256 {
		t.Fatalf("uint32: %d %v", v, err)
	}
	if v, err := Match[int64](n); err != nil || v != 256 {
		t.Fatalf("int64: %d %v", v, err)
	}
	type Port uint16
	if v, err := Match[Port](n); err != nil || v != 256 {
		t.Fatalf("Port: %d %v", v, err)
	}
}

func TestAsFraction(t *testing.T) {
	n := ir.FromNumber(ir.Inline(false, 50, 1))
	if _, err := Match[int](n); !errors.Is(err, ir.ErrNotInteger) {
		t.Fatalf("5.0 as int: %v", err)
	}
	if v, err := Match[float64](n); err != nil || v != 5.0 {
		t.Fatalf("5.0 as float64: %v %v", v, err)
	}
	if v, err := Match[float32](n); err != nil || v != 5.0 {
		t.Fatalf("5.0 as float32: %v %v", v, err)
	}
}

func TestAsKinds(t *testing.T) {
	if _, ok, err := As[string](mustParse(t, "1")); ok || err != nil {
		t.Fatalf("number as string: %t %v", ok, err)
	}
	if v, ok, _ := As[bool](mustParse(t, "true")); !ok || !v {
		t.Fatalf("bool")
	}
	type Name string
	if v, ok, _ := As[Name](mustParse(t, `"x"`)); !ok || v != "x" {
		t.Fatalf("named string %q", v)
	}
	var te *TypeError
	if _, err := Match[string](nil); !errors.As(err, &te) || te.Actual != "missing" {
		t.Fatalf("missing: %v", err)
	}
	if _, err := Match[string](mustParse(t, "[]")); !errors.As(err, &te) || te.Expected != "String" || te.Actual != "Array" {
		t.Fatalf("array as string: %v", err)
	}
	for _, in := range []string{"null"} {
		if _, ok, err := FlatMatch[int](mustParse(t, in)); ok || err != nil {
			t.Fatalf("%s: %t %v", in, ok, err)
		}
	}
	if _, ok, err := FlatMatch[int](nil); ok || err != nil {
		t.Fatalf("nil: %t %v", ok, err)
	}
	if _, _, err := FlatMatch[int](mustParse(t, `"1"`)); !errors.Is(err, ErrType) {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestNonFiniteBits(t *testing.T) {
	snan64 := math.Float64frombits(0x7FF4000000000000)
	snan32 := math.Float32frombits(0x7FA00000)
	for _, f := range []float64{math.NaN(), snan64, math.Inf(1), math.Inf(-1)} {
		text := encode.MustString(Encode(f))
		got, err := Match[float64](mustParse(t, text))
		if err != nil {
			t.Fatal(err)
		}
		if math.IsNaN(f) {
			if !math.IsNaN(got) || (math.Float64bits(got)&(1<<51) == 0) != (math.Float64bits(f)&(1<<51) == 0) {
				t.Fatalf("%s: nan class lost: %x", text, math.Float64bits(got))
			}
			continue
		}
		if got != f {
			t.Fatalf("%s: got %v", text, got)
		}
	}
	got, err := Match[float32](mustParse(t, encode.MustString(Encode(snan32))))
	if err != nil {
		t.Fatal(err)
	}
	if math.Float32bits(got) != 0x7FA00000 {
		t.Fatalf("snan32 bits %x", math.Float32bits(got))
	}
	inf32, err := Match[float32](mustParse(t, encode.MustString(Encode(float32(math.Inf(-1))))))
	if err != nil || !math.IsInf(float64(inf32), -1) {
		t.Fatalf("-inf32: %v %v", inf32, err)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0.1, 1.0 / 3, 1e300, -5e-324, 123.456} {
		got, err := Match[float64](mustParse(t, encode.MustString(Encode(f))))
		if err != nil || got != f {
			t.Fatalf("%v: got %v %v", f, got, err)
		}
	}
	for _, f := range []float32{0.1, 1.0 / 3, 3.4e38} {
		got, err := Match[float32](mustParse(t, encode.MustString(Encode(f))))
		if err != nil || got != f {
			t.Fatalf("%v: got %v %v", f, got, err)
		}
	}
}

func TestShape(t *testing.T) {
	a, err := MatchArray(mustParse(t, "[1,2,3]"))
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Count(3); err != nil {
		t.Fatal(err)
	}
	var se *ShapeError
	if err := a.Count(2); !errors.As(err, &se) || se.Count != 3 || se.Expected != "count 2" {
		t.Fatalf("got %v", err)
	}
	if err := a.MultipleOf(2); !errors.As(err, &se) || se.Expected != "multiple of 2" {
		t.Fatalf("got %v", err)
	}
	if err := a.Check("", func(n int) bool { return n < 3 }); !errors.As(err, &se) || se.Count != 3 || se.Expected != "" {
		t.Fatalf("got %v", err)
	}
	var second int
	if err := a.Decode(1, func(n *ir.Node) error {
		second, err = Match[int](n)
		return err
	}); err != nil || second != 2 {
		t.Fatalf("got %d %v", second, err)
	}
	vs, err := Elements[uint8](mustParse(t, "[1,2,300]"))
	var pe *PathError
	if !errors.As(err, &pe) || pe.Path.String() != "$[2]" || !errors.Is(err, ir.ErrOverflow) || vs != nil {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicateKey(t *testing.T) {
	n := ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: ir.FromInt(1)}, {Key: "x", Val: ir.FromInt(2)}})
	_, err := NewObjectDecoder(n)
	var de *DuplicateKeyError
	if !errors.As(err, &de) || de.Key != "x" {
		t.Fatalf("expected duplicate key x, got %v", err)
	}
}

type codingKey string

const (
	keyID   codingKey = "id"
	keyName codingKey = "name"
)

func TestObjectDecoder(t *testing.T) {
	n := mustParse(t, `{"id": 7, "name": null, "future": true, "future": false}`)
	if _, err := NewObjectDecoder(n); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate key, got %v", err)
	}
	d, err := NewCodingKeyDecoder(n, CodingKeys(keyID, keyName))
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 || d.Has("future") {
		t.Fatalf("unknown keys should be ignored")
	}
	id, err := Field[int](d, keyID)
	if err != nil || id != 7 {
		t.Fatalf("id: %d %v", id, err)
	}
	_, ok, err := OptionalField[string](d, keyName)
	if ok || err != nil {
		t.Fatalf("null name: %t %v", ok, err)
	}
	var ue *UndefinedKeyError
	if err := d.Decode("missing", func(*ir.Node) error { return nil }); !errors.As(err, &ue) || ue.Key != "missing" {
		t.Fatalf("got %v", err)
	}
	if err := d.DecodeOptional("missing", func(*ir.Node) error { return errors.New("called") }); err != nil {
		t.Fatalf("got %v", err)
	}
	_, err = Field[string](d, keyID)
	var pe *PathError
	if !errors.As(err, &pe) || pe.Path.String() != "$.id" || !errors.Is(err, ErrType) {
		t.Fatalf("got %v", err)
	}
}

func TestLint(t *testing.T) {
	n := mustParse(t, `{"a":1,"b":2}`)
	err := Lint(n, func(d *Dict) error {
		_, err := PopAs[int](d, "a")
		return err
	})
	var le *LintingError
	if !errors.As(err, &le) {
		t.Fatalf("expected linting error, got %v", err)
	}
	want := []ir.KeyVal{{Key: "b", Val: ir.FromInt(2)}}
	if diff := cmp.Diff(want, le.Unused); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
	if err := Lint(n, func(d *Dict) error {
		_, err := PopAs[int](d, "a")
		return err
	}, "b"); err != nil {
		t.Fatalf("whitelisted: %v", err)
	}
	if err := Lint(n, func(d *Dict) error {
		if err := d.PopWith("a", func(*ir.Node) error { return nil }); err != nil {
			return err
		}
		_, ok := d.Remove("b")
		if !ok || d.Len() != 0 {
			t.Fatalf("remove b")
		}
		return nil
	}); err != nil {
		t.Fatalf("all consumed: %v", err)
	}
	err = Lint(n, func(d *Dict) error {
		_, err := d.Pop("c")
		return err
	})
	if !errors.Is(err, ErrUndefinedKey) {
		t.Fatalf("expected undefined key, got %v", err)
	}
	err = Lint(n, func(d *Dict) error {
		_, _, err := RemoveAs[string](d, "a")
		return err
	})
	var pe *PathError
	if !errors.As(err, &pe) || pe.Path.String() != "$.a" {
		t.Fatalf("got %v", err)
	}
	if err := Lint(mustParse(t, "[]"), func(*Dict) error { return nil }); !errors.Is(err, ErrType) {
		t.Fatalf("got %v", err)
	}
}

type user struct {
	ID   int64
	Name string
	Tags []string
}

func (u *user) FromIR(n *ir.Node) error {
	return Lint(n, func(d *Dict) error {
		var err error
		if u.ID, err = PopAs[int64](d, "id"); err != nil {
			return err
		}
		if u.Name, _, err = RemoveAs[string](d, "name"); err != nil {
			return err
		}
		return d.RemoveWith("tags", func(n *ir.Node) error {
			u.Tags, err = Elements[string](n)
			return err
		})
	})
}

func (u *user) ToIR() (*ir.Node, error) {
	b := NewObjectBuilder(ElideEmpty())
	b.Set("id", Encode(u.ID))
	if u.Name != "" {
		b.Set("name", Encode(u.Name))
	}
	b.SetArray("tags", func(ab *ArrayBuilder) {
		for _, tag := range u.Tags {
			ab.Append(Encode(tag))
		}
	})
	return b.Node(), nil
}

type users struct {
	Users []user
}

func (us *users) FromIR(n *ir.Node) error {
	d, err := NewObjectDecoder(n)
	if err != nil {
		return err
	}
	return d.Decode("users", func(n *ir.Node) error {
		us.Users, err = DecodeSlice(n, func(n *ir.Node) (user, error) {
			var u user
			err := Decode(n, &u)
			return u, err
		})
		return err
	})
}

func TestPathErrors(t *testing.T) {
	var us users
	err := Unmarshal([]byte(`{"users":[{"id":1},{"id":2},{"id":3},{"id":"x"}]}`), &us)
	if err == nil {
		t.Fatal("expected error")
	}
	want := `decoding $.users[3].id: decode error: type mismatch: expected Number, got String`
	if err.Error() != want {
		t.Fatalf("got  %s\nwant %s", err, want)
	}
	var pe *PathError
	if !errors.As(err, &pe) {
		t.Fatal("expected *PathError")
	}
	ptr, err := pe.Path.Pointer()
	if err != nil || ptr != "/users/3/id" {
		t.Fatalf("pointer %q %v", ptr, err)
	}
}

func TestUnmarshalMarshal(t *testing.T) {
	var us users
	in := `{"users":[{"id":1,"name":"a","tags":["x","y"]},{"id":2}]}`
	if err := Unmarshal([]byte(in), &us); err != nil {
		t.Fatal(err)
	}
	want := []user{{ID: 1, Name: "a", Tags: []string{"x", "y"}}, {ID: 2}}
	if diff := cmp.Diff(want, us.Users); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
	out, err := Marshal(&us.Users[1])
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"id":2}` {
		t.Fatalf("empty tags should be elided, got %s", out)
	}
	out, err = Marshal(&us.Users[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"id":1,"name":"a","tags":["x","y"]}` {
		t.Fatalf("got %s", out)
	}
}

func TestBuilders(t *testing.T) {
	b := NewArrayBuilder()
	b.Append(nil).AppendArray(func(*ArrayBuilder) {}).AppendObject(func(ob *ObjectBuilder) {
		ob.Set("k", Encode(true)).SetObject("e", func(*ObjectBuilder) {})
	})
	if got := encode.MustString(b.Node()); got != `[null,[],{"k":true,"e":{}}]` {
		t.Fatalf("got %s", got)
	}
	e := NewArrayBuilder(ElideEmpty())
	e.AppendArray(func(ab *ArrayBuilder) {
		ab.AppendObject(func(*ObjectBuilder) {})
	}).Append(Encode(uint8(3))).Append(ir.FromSlice(nil))
	if got := encode.MustString(e.Node()); got != `[3]` {
		t.Fatalf("got %s", got)
	}
}
