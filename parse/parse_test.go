package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsonv/ir"
)

func obj(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs) }

func kv(k string, v *ir.Node) ir.KeyVal { return ir.KeyVal{Key: ir.Key(k), Val: v} }

func arr(vs ...*ir.Node) *ir.Node { return ir.FromSlice(vs) }

func num(neg bool, units uint64, places uint32) *ir.Node {
	return ir.FromNumber(ir.Inline(neg, units, places))
}

func TestParse(t *testing.T) {
	pts := []struct {
		in   string
		opts []ParseOption
		want *ir.Node
	}{
		{in: `{}`, want: obj()},
		{in: ` [ ] `, want: arr()},
		{
			in: `{"a": [1, 2, {"b": null}], "c": "x"}`,
			want: obj(
				kv("a", arr(num(false, 1, 0), num(false, 2, 0), obj(kv("b", ir.Null())))),
				kv("c", ir.FromString("x")),
			),
		},
		{
			in:   "[true,false,null]",
			want: arr(ir.FromBool(true), ir.FromBool(false), ir.Null()),
		},
		{
			in:   `{"x": 1, "x": 2}`,
			want: obj(kv("x", num(false, 1, 0)), kv("x", num(false, 2, 0))),
		},
		{
			in:   `["a\tb\"c", "\/\\\b\f\n\r"]`,
			want: arr(ir.FromString("a\tb\"c"), ir.FromString("/\\\b\f\n\r")),
		},
		{in: `["😀"]`, want: arr(ir.FromString("😀"))},
		{in: `["\ud83d\ude00", "\u00e9\u0041"]`, want: arr(ir.FromString("😀"), ir.FromString("éA"))},
		{in: `["été"]`, want: arr(ir.FromString("été"))},
		{in: `["héllo"]`, want: arr(ir.FromString("héllo"))},
		{in: `[1.10]`, want: arr(num(false, 110, 2))},
		{in: `[-0]`, want: arr(num(true, 0, 0))},
		{in: `[1e2, 1.5E+1, 25e-1]`, want: arr(num(false, 100, 0), num(false, 15, 0), num(false, 25, 1))},
		{in: `[0.000]`, want: arr(num(false, 0, 3))},
		{in: `[18446744073709551615]`, want: arr(num(false, 18446744073709551615, 0))},
		{
			in:   `[18446744073709551616, 1e400, 1e-500]`,
			want: arr(ir.FromNumber(ir.Fallback("18446744073709551616")), ir.FromNumber(ir.Fallback("1e400")), ir.FromNumber(ir.Fallback("1e-500"))),
		},
		{in: `"x"`, opts: []ParseOption{ParseFragment()}, want: ir.FromString("x")},
		{in: ` 42 `, opts: []ParseOption{ParseFragment()}, want: num(false, 42, 0)},
		{
			in:   `[inf, -inf, nan, snan, -1]`,
			opts: []ParseOption{ParseNonFinite()},
			want: arr(
				ir.FromNumber(ir.Infinity(false)),
				ir.FromNumber(ir.Infinity(true)),
				ir.FromNumber(ir.NaN()),
				ir.FromNumber(ir.SNaN()),
				num(true, 1, 0),
			),
		},
	}
	for i := range pts {
		pt := &pts[i]
		got, err := ParseString(pt.in, pt.opts...)
		if err != nil {
			t.Fatalf("%q: %v", pt.in, err)
		}
		if diff := cmp.Diff(pt.want, got); diff != "" {
			t.Fatalf("%q: (-want +got)\n%s", pt.in, diff)
		}
		bgot, err := Parse([]byte(pt.in), pt.opts...)
		if err != nil {
			t.Fatalf("%q bytes: %v", pt.in, err)
		}
		if !ir.Equal(got, bgot) {
			t.Fatalf("%q: string and byte input disagree", pt.in)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	pts := []struct {
		in       string
		opts     []ParseOption
		offset   int
		expected string
	}{
		{in: `[1,2,]`, offset: 5, expected: "value"},
		{in: `{"a":1,}`, offset: 7, expected: `'"'`},
		{in: `{"a" 1}`, offset: 5, expected: "':'"},
		{in: `[1 2]`, offset: 3, expected: "',' or ']'"},
		{in: `"x"`, offset: 0, expected: "'{' or '['"},
		{in: ``, offset: 0, expected: "'{' or '['"},
		{in: `[1.]`, offset: 3, expected: "digit"},
		{in: `[1e+]`, offset: 4, expected: "digit"},
		{in: `[-]`, offset: 2, expected: "digit"},
		{in: `01`, opts: []ParseOption{ParseFragment()}, offset: 1, expected: "end of input"},
		{in: `[-01]`, offset: 3, expected: "',' or ']'"},
		{in: `[] []`, offset: 3, expected: "end of input"},
		{in: `["abc`, offset: 5, expected: `'"'`},
		{in: "[\"a\nb\"]", offset: 3, expected: "string character"},
		{in: `["\x"]`, offset: 3, expected: "escape character"},
		{in: `["\u12G4"]`, offset: 6, expected: "hex digit"},
		{in: `[inf]`, offset: 1, expected: "value"},
		{in: `[tru]`, offset: 1, expected: "value"},
	}
	for i := range pts {
		pt := &pts[i]
		_, err := ParseString(pt.in, pt.opts...)
		if err == nil {
			t.Fatalf("%q: expected error", pt.in)
		}
		if !errors.Is(err, ErrParse) {
			t.Fatalf("%q: %v is not a parse error", pt.in, err)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("%q: expected *SyntaxError, got %T", pt.in, err)
		}
		if se.Offset != pt.offset || se.Expected != pt.expected {
			t.Fatalf("%q: got offset %d expected %s, want offset %d expected %s",
				pt.in, se.Offset, se.Expected, pt.offset, pt.expected)
		}
	}
}

func TestParseLineCol(t *testing.T) {
	_, err := ParseString("{\n  \"a\": x}")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if se.Offset != 9 || se.Line != 1 || se.Col != 7 {
		t.Fatalf("got offset=%d line=%d col=%d", se.Offset, se.Line, se.Col)
	}
	if se.Found != "'x'" {
		t.Fatalf("found %s", se.Found)
	}
	if !strings.Contains(err.Error(), "line=1, col=7") {
		t.Fatalf("error text %q lacks position", err)
	}
}

func TestParseLoneSurrogate(t *testing.T) {
	for _, in := range []string{`["\ud800"]`, `["\udc00"]`, `["\ud800A"]`, `["ab\ud83dx"]`} {
		_, err := ParseString(in)
		var ie *InvalidScalarError
		if !errors.As(err, &ie) {
			t.Fatalf("%q: expected *InvalidScalarError, got %v", in, err)
		}
		if !errors.Is(err, ErrInvalidScalar) || !errors.Is(err, ErrParse) {
			t.Fatalf("%q: wrong error chain %v", in, err)
		}
		if off, ok := ErrorOffset(err); !ok || off != strings.IndexByte(in, '\\') {
			t.Fatalf("%q: offset %d", in, off)
		}
	}
}

func TestParseDepth(t *testing.T) {
	deep := strings.Repeat("[", 5) + strings.Repeat("]", 5)
	if _, err := ParseString(deep, ParseMaxDepth(5)); err != nil {
		t.Fatal(err)
	}
	_, err := ParseString(deep, ParseMaxDepth(4))
	var de *DepthError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DepthError, got %v", err)
	}
	if de.Max != 4 || de.Offset != 4 {
		t.Fatalf("got %+v", de)
	}
	huge := strings.Repeat(`{"a":`, DefaultMaxDepth+1) + "1" + strings.Repeat("}", DefaultMaxDepth+1)
	if _, err := ParseString(huge); !errors.Is(err, ErrDepth) {
		t.Fatalf("expected depth error, got %v", err)
	}
	if _, err := ParseString(huge, ParseMaxDepth(0)); err != nil {
		t.Fatalf("unlimited depth: %v", err)
	}
}

func TestRulesRestoreCursor(t *testing.T) {
	c := NewCursor(`"abc`)
	if _, err := StringRule(c); err != ErrNoMatch {
		t.Fatalf("expected no match, got %v", err)
	}
	if c.Offset() != 0 {
		t.Fatalf("cursor moved to %d", c.Offset())
	}
	bc := NewCursor([]byte(`12.5e1,`))
	n, err := NumberRule(bc)
	if err != nil {
		t.Fatal(err)
	}
	if !n.Equal(ir.Inline(false, 125, 0)) || bc.Offset() != 6 {
		t.Fatalf("got %v at %d", n, bc.Offset())
	}
	c = NewCursor("  \t\nx")
	Padding(c)
	if c.Offset() != 4 {
		t.Fatalf("padding stopped at %d", c.Offset())
	}
	if err := Whitespace(c); err != ErrNoMatch {
		t.Fatalf("whitespace matched %q", "x")
	}
}

func TestParsePositions(t *testing.T) {
	src := ` {"a": [1, "xy"], "b": null}`
	pos := map[*ir.Node]Span{}
	node, err := ParseString(src, ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	a := node.Values[0]
	want := map[string]Span{
		`{"a": [1, "xy"], "b": null}`: pos[node],
		`[1, "xy"]`:                   pos[a],
		`1`:                           pos[a.Values[0]],
		`"xy"`:                        pos[a.Values[1]],
		`null`:                        pos[node.Values[1]],
	}
	for text, span := range want {
		if got := src[span.Start:span.End]; got != text {
			t.Errorf("span %v: got %q want %q", span, got, text)
		}
	}
	if len(pos) != 5 {
		t.Errorf("expected 5 spans, got %d", len(pos))
	}
	keys := map[string]Span{`"a"`: pos[a], `"b"`: pos[node.Values[1]]}
	for text, span := range keys {
		if got := src[span.KeyStart:span.KeyEnd]; got != text {
			t.Errorf("key span %v: got %q want %q", span, got, text)
		}
	}
	if sp := pos[a.Values[0]]; sp.KeyStart != 0 || sp.KeyEnd != 0 {
		t.Errorf("array element has key span %v", sp)
	}
}
