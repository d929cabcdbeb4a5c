package libdiff_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/gomap"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/libdiff"
	"github.com/signadot/jsonv/parse"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s, parse.ParseFragment())
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return node
}

func changeStrings(cs []libdiff.Change) []string {
	res := make([]string, len(cs))
	for i := range cs {
		res[i] = cs[i].String()
	}
	return res
}

var diffTests = []struct {
	from, to string
	changes  []string
}{
	{`{"a":[1,{"b":null}]}`, `{"a":[1,{"b":null}]}`, []string{}},
	{`{"a":1,"b":2}`, `{"a":1,"b":3,"c":4}`, []string{
		"replace $.b: 2 -> 3",
		"add $.c: 4",
	}},
	{`{"a":1,"b":2}`, `{"b":2}`, []string{"remove $.a: 1"}},
	{`{"x":[1,2,3]}`, `{"x":[1,3]}`, []string{"remove $.x[1]: 2"}},
	{`[1,2,3]`, `[1,4,3]`, []string{"replace $[1]: 2 -> 4"}},
	{`[1,2]`, `[1,2,5,6]`, []string{"add $[2]: 5", "add $[3]: 6"}},
	{`1`, `"1"`, []string{`replace $: 1 -> "1"`}},
	{`1.50`, `1.5`, []string{}},
	{`0.0`, `-0`, []string{}},
	{`[{"id":1,"tags":["a"]}]`, `[{"id":1,"tags":["a","b"]}]`, []string{`add $[0].tags[1]: "b"`}},
	{`{"a.b":true}`, `{"a.b":false}`, []string{"replace $.'a.b': true -> false"}},
}

func TestDiff(t *testing.T) {
	for _, tc := range diffTests {
		changes, err := libdiff.Diff(mustParse(t, tc.from), mustParse(t, tc.to))
		if err != nil {
			t.Fatalf("%s -> %s: %v", tc.from, tc.to, err)
		}
		if d := cmp.Diff(tc.changes, changeStrings(changes)); d != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", tc.from, tc.to, d)
		}
	}
}

var applyTests = [][2]string{
	{`{"a":1,"b":2}`, `{"a":1,"b":3,"c":4}`},
	{`[1,2,3,4,5]`, `[0,2,4,6]`},
	{`[{"id":1,"v":[1,2]},"x",true]`, `["y",{"id":1,"v":[2,3]},false,null]`},
	{`{"users":[{"name":"a"},{"name":"b"}],"n":2}`, `{"users":[{"name":"b","admin":true}],"n":1}`},
	{`[]`, `[[],{},"s"]`},
	{`{"a":{"b":{"c":[1]}}}`, `{"a":{"b":"c"}}`},
	{`"x"`, `{"x":1}`},
}

func TestApply(t *testing.T) {
	for _, tc := range applyTests {
		from, to := mustParse(t, tc[0]), mustParse(t, tc[1])
		changes, err := libdiff.Diff(from, to)
		if err != nil {
			t.Fatalf("%s -> %s: %v", tc[0], tc[1], err)
		}
		got, err := libdiff.Apply(from, changes)
		if err != nil {
			t.Fatalf("%s -> %s: apply %v: %v", tc[0], tc[1], changeStrings(changes), err)
		}
		if d := cmp.Diff(gomap.ToAny(to), gomap.ToAny(got)); d != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", tc[0], tc[1], d)
		}
		back, err := libdiff.Apply(got, libdiff.Reverse(changes))
		if err != nil {
			t.Fatalf("%s -> %s: reverse: %v", tc[0], tc[1], err)
		}
		if d := cmp.Diff(gomap.ToAny(from), gomap.ToAny(back)); d != "" {
			t.Errorf("%s <- %s (-want +got):\n%s", tc[0], tc[1], d)
		}
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustParse(t, `{"a":[1]}`)
	bad := []libdiff.Change{
		{Op: libdiff.Remove, Path: ir.FieldPath("b", nil)},
		{Op: libdiff.Replace, Path: ir.FieldPath("a", ir.IndexPath(1, nil)), To: ir.FromInt(2)},
		{Op: libdiff.Add, Path: ir.FieldPath("a", ir.IndexPath(2, nil)), To: ir.FromInt(2)},
		{Op: libdiff.Add, Path: ir.IndexPath(0, nil), To: ir.FromInt(2)},
		{Op: libdiff.Remove},
	}
	for _, c := range bad {
		if _, err := libdiff.Apply(doc, []libdiff.Change{c}); !errors.Is(err, libdiff.ErrApply) {
			t.Errorf("%s: expected apply error, got %v", c, err)
		}
	}
	if got := encode.MustString(doc); got != `{"a":[1]}` {
		t.Errorf("doc modified: %s", got)
	}
}

func TestDiffDuplicateKey(t *testing.T) {
	_, err := libdiff.Diff(mustParse(t, `{"a":{"k":1,"k":2}}`), mustParse(t, `{"a":{}}`))
	if !errors.Is(err, libdiff.ErrDiff) || !errors.Is(err, codec.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
	if !strings.Contains(err.Error(), "$.a") {
		t.Errorf("expected path in %q", err)
	}
}

func TestToPatch(t *testing.T) {
	changes, err := libdiff.Diff(
		mustParse(t, `{"a/b":1,"m~n":[1,2],"gone":null}`),
		mustParse(t, `{"a/b":2,"m~n":[1]}`))
	if err != nil {
		t.Fatal(err)
	}
	patch, err := libdiff.ToPatch(changes)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"op":"replace","path":"/a~1b","value":2},` +
		`{"op":"remove","path":"/m~0n/1"},` +
		`{"op":"remove","path":"/gone"}]`
	if got := encode.MustString(patch); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestStringHunks(t *testing.T) {
	changes, err := libdiff.Diff(mustParse(t, `"hello world"`), mustParse(t, `"hello there"`))
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %v", changeStrings(changes))
	}
	hunks := libdiff.StringHunks(changes[0])
	from, to := &strings.Builder{}, &strings.Builder{}
	for _, h := range hunks {
		if h.Type != diffpatch.DiffInsert {
			from.WriteString(h.Text)
		}
		if h.Type != diffpatch.DiffDelete {
			to.WriteString(h.Text)
		}
	}
	if from.String() != "hello world" || to.String() != "hello there" {
		t.Errorf("hunks %v do not rebuild the strings", hunks)
	}
	if hunks[0].Type != diffpatch.DiffEqual || hunks[0].Text != "hello " {
		t.Errorf("expected common prefix, got %v", hunks[0])
	}
	num := libdiff.Change{Op: libdiff.Replace, From: ir.FromInt(1), To: ir.FromInt(2)}
	if libdiff.StringHunks(num) != nil {
		t.Errorf("expected no hunks for numbers")
	}
}
