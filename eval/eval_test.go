package eval

import (
	"errors"
	"testing"

	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s, parse.ParseFragment())
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return node
}

const store = `{"name":"shop","items":[{"id":1,"price":5},{"id":2,"price":15},{"id":3,"price":25}]}`

func TestEval(t *testing.T) {
	t.Setenv("JSONV_EVAL_TEST", "hello")
	doc := mustParse(t, store)
	pts := []struct {
		program string
		opts    []EvalOption
		want    string
	}{
		{program: `doc.name`, want: `"shop"`},
		{program: `getpath("$.items[1].price")`, want: `15`},
		{program: `len(listpath("$.items[*]"))`, want: `3`},
		{program: `map(listpath("$.items[*].id"), # * 10)`, want: `[10,20,30]`},
		{program: `getpath("$.missing")`, want: `null`},
		{program: `getenv("JSONV_EVAL_TEST")`, want: `"hello"`},
		{program: `fromjson("[1,{\"a\":true}]")[1].a`, want: `true`},
		{program: `tojson(doc.items[0])`, want: `"{\"id\":1,\"price\":5}"`},
		{program: `{"n": size}`, opts: []EvalOption{EvalEnv(Env{"size": 2})}, want: `{"n":2}`},
		{program: `"[1, 2]"`, opts: []EvalOption{EvalAs(AsValue)}, want: `[1,2]`},
		{program: `doc.name + "!"`, opts: []EvalOption{EvalAs(AsString)}, want: `"shop!"`},
	}
	for _, pt := range pts {
		res, err := Eval(doc, pt.program, pt.opts...)
		if err != nil {
			t.Fatalf("%s: %v", pt.program, err)
		}
		if got := encode.MustString(res); got != pt.want {
			t.Fatalf("%s: got %s want %s", pt.program, got, pt.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, store)
	for _, program := range []string{`doc.(`, `getpath("nope")`} {
		if _, err := Eval(doc, program); !errors.Is(err, ErrEval) {
			t.Fatalf("%s: expected eval error, got %v", program, err)
		}
	}
	if _, err := Eval(doc, `1`, EvalAs(AsString)); !errors.Is(err, ErrEval) {
		t.Fatalf("expected eval error, got %v", err)
	}
	if _, err := ParseResultAs("yaml"); !errors.Is(err, ErrEval) {
		t.Fatalf("expected eval error, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	items := mustParse(t, store).Get("items")
	res, err := Filter(items, `it.price > 10 && index < 2`)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(res); got != `[{"id":2,"price":15}]` {
		t.Fatalf("got %s", got)
	}
	if _, err := Filter(items, `it.price`); !errors.Is(err, ErrEval) {
		t.Fatalf("non-bool predicate: %v", err)
	}
	if _, err := Filter(mustParse(t, `{}`), `true`); !errors.Is(err, ErrEval) {
		t.Fatalf("object filter: %v", err)
	}
}

func TestRegister(t *testing.T) {
	if err := Register(GetEnv()); !errors.Is(err, ErrFuncExists) {
		t.Fatalf("expected exists, got %v", err)
	}
	if err := Register(&Func{Name: "getpath"}); !errors.Is(err, ErrFuncExists) {
		t.Fatalf("getpath is reserved, got %v", err)
	}
	double := &Func{
		Name: "double",
		Fn: func(params ...any) (any, error) {
			return params[0].(int) * 2, nil
		},
		Types: []any{new(func(int) int)},
	}
	if err := Register(double); err != nil {
		t.Fatal(err)
	}
	if Lookup("double") != double {
		t.Fatal("lookup")
	}
	res, err := Eval(ir.Null(), `double(21)`)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(res); got != "42" {
		t.Fatalf("got %s", got)
	}
	names := []string{}
	for _, f := range Funcs() {
		names = append(names, f.Name)
	}
	if len(names) < 4 || names[0] != "double" {
		t.Fatalf("got %v", names)
	}
}
