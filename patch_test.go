package jsonv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/gomap"
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

func TestPatch(t *testing.T) {
	doc := mustParse(t, `{"price":1.10,"tags":["a","c"],"old":true}`)
	ops := mustParse(t, `[
		{"op":"add","path":"/tags/1","value":"b"},
		{"op":"remove","path":"/old"},
		{"op":"replace","path":"/name","value":"x"}
	]`)
	if _, err := Patch(doc, ops); !errors.Is(err, ErrPatch) {
		t.Fatalf("replace of missing field: expected patch error, got %v", err)
	}
	ops = mustParse(t, `[
		{"op":"add","path":"/tags/1","value":"b"},
		{"op":"remove","path":"/old"},
		{"op":"add","path":"/name","value":"x"}
	]`)
	res, err := Patch(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"x","price":1.10,"tags":["a","b","c"]}`
	if got := encode.MustString(res); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestPatchMissingTarget(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":[1,2]},"n":null}`)
	bad := []string{
		`[{"op":"replace","path":"/x","value":1}]`,
		`[{"op":"replace","path":"/a/b/2","value":1}]`,
		`[{"op":"replace","path":"/a/b/01","value":1}]`,
		`[{"op":"remove","path":"/a/c"}]`,
		`[{"op":"test","path":"/a/b/-","value":1}]`,
		`[{"op":"remove","path":"/n/x"}]`,
		`{"op":"add","path":"/x","value":1}`,
	}
	for _, ops := range bad {
		if _, err := Patch(doc, mustParse(t, ops)); !errors.Is(err, ErrPatch) {
			t.Errorf("%s: expected patch error, got %v", ops, err)
		}
	}
	ops := mustParse(t, `[
		{"op":"add","path":"/c","value":0},
		{"op":"replace","path":"/c","value":5},
		{"op":"replace","path":"/n","value":true},
		{"op":"remove","path":"/a/b/0"}
	]`)
	res, err := Patch(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":{"b":[2]},"c":5,"n":true}`
	if got := encode.MustString(res); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestResolvePointer(t *testing.T) {
	doc := mustParse(t, `{"a/b":{"m~n":[1,[2]]},"":3}`)
	pts := []struct {
		ptr  string
		want string
		ok   bool
	}{
		{ptr: "", want: `{"a/b":{"m~n":[1,[2]]},"":3}`, ok: true},
		{ptr: "/", want: "3", ok: true},
		{ptr: "/a~1b/m~0n/1/0", want: "2", ok: true},
		{ptr: "/a~1b/m~0n/2"},
		{ptr: "/a~1b/m~0n/+1"},
		{ptr: "/a~1b/m~0n/-"},
		{ptr: "a"},
	}
	for _, pt := range pts {
		n, ok := resolvePointer(doc, pt.ptr)
		if ok != pt.ok {
			t.Errorf("%q: ok %v", pt.ptr, ok)
			continue
		}
		if ok && encode.MustString(n) != pt.want {
			t.Errorf("%q: got %s want %s", pt.ptr, encode.MustString(n), pt.want)
		}
	}
}

func TestPatchNonFinite(t *testing.T) {
	doc := mustParse(t, `[inf]`)
	_, err := Patch(doc, mustParse(t, `[]`))
	if !errors.Is(err, ErrPatch) || !errors.Is(err, encode.ErrNonFinite) {
		t.Fatalf("expected non-finite error, got %v", err)
	}
}

var diffPairs = [][2]string{
	{`{"a":1,"b":2}`, `{"a":1,"b":3,"c":4}`},
	{`[1,2,3,4,5]`, `[0,2,4,6]`},
	{`{"users":[{"name":"a"},{"name":"b"}],"n":2}`, `{"users":[{"name":"b","admin":true}],"n":1}`},
	{`{"a/b":{"m~n":[1]}}`, `{"a/b":{"m~n":[1,[2]]}}`},
	{`[]`, `[[],{},"s"]`},
	{`{"a":{"b":{"c":[1]}}}`, `{"a":{"b":"c"}}`},
}

func TestDiffPatch(t *testing.T) {
	for _, tc := range diffPairs {
		from, to := mustParse(t, tc[0]), mustParse(t, tc[1])
		ops, err := Diff(from, to)
		if err != nil {
			t.Fatalf("%s -> %s: %v", tc[0], tc[1], err)
		}
		got, err := Patch(from, ops)
		if err != nil {
			t.Fatalf("%s -> %s: patch %s: %v", tc[0], tc[1], encode.MustString(ops), err)
		}
		if d := cmp.Diff(gomap.ToAny(to), gomap.ToAny(got)); d != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", tc[0], tc[1], d)
		}
	}
}

func TestDiffEqual(t *testing.T) {
	doc := mustParse(t, `{"a":[1,{"b":null}]}`)
	ops, err := Diff(doc, doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(ops); got != "[]" {
		t.Errorf("expected empty patch, got %s", got)
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":{"c":2,"e":[1]}}`)
	patch := mustParse(t, `{"b":{"c":null,"d":3,"e":[2]}}`)
	res, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":1,"b":{"d":3,"e":[2]}}`)
	if d := cmp.Diff(gomap.ToAny(want), gomap.ToAny(res)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestMergeDiff(t *testing.T) {
	from := mustParse(t, `{"a":1,"b":{"c":2},"gone":"x"}`)
	to := mustParse(t, `{"a":1,"b":{"c":3}}`)
	patch, err := MergeDiff(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"b":{"c":3},"gone":null}`)
	if d := cmp.Diff(gomap.ToAny(want), gomap.ToAny(patch)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	res, err := MergePatch(from, patch)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(gomap.ToAny(to), gomap.ToAny(res)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
