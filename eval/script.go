package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/signadot/jsonv/gomap"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/parse"
)

var ErrEval = errors.New("eval error")

// Env holds the variables visible to a program. Eval adds doc.
type Env map[string]any

type ResultAs string

const (
	// AsAny converts the result with gomap.FromAny.
	AsAny ResultAs = "any"
	// AsValue parses a string result as JSON text.
	AsValue ResultAs = "value"
	// AsString requires a string result.
	AsString ResultAs = "string"
)

func ParseResultAs(v string) (ResultAs, error) {
	as, ok := map[string]ResultAs{
		"any":    AsAny,
		"value":  AsValue,
		"string": AsString,
	}[v]
	if ok {
		return as, nil
	}
	return "", fmt.Errorf("%w: invalid result kind %q", ErrEval, v)
}

type evalOpts struct {
	env Env
	as  ResultAs
}

type EvalOption func(*evalOpts)

// EvalEnv adds env to the program's variables.
func EvalEnv(env Env) EvalOption {
	return func(o *evalOpts) { o.env = env }
}

func EvalAs(as ResultAs) EvalOption {
	return func(o *evalOpts) { o.as = as }
}

func newEvalOpts(opts []EvalOption) *evalOpts {
	o := &evalOpts{as: AsAny}
	for _, f := range opts {
		f(o)
	}
	return o
}

func (o *evalOpts) vars(doc *ir.Node) Env {
	env := make(Env, len(o.env)+1)
	for k, v := range o.env {
		env[k] = v
	}
	env["doc"] = gomap.ToAny(doc)
	return env
}

// Eval runs program against doc and returns its result as a tree. The
// program sees doc as the variable doc and may call getpath and listpath
// on it.
func Eval(doc *ir.Node, program string, opts ...EvalOption) (*ir.Node, error) {
	o := newEvalOpts(opts)
	prg, err := expr.Compile(program, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(prg, o.vars(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return result(res, o.as)
}

func result(res any, as ResultAs) (*ir.Node, error) {
	switch as {
	case AsValue:
		v, ok := res.(string)
		if !ok {
			return nil, fmt.Errorf("%w: result as value but returned type %T", ErrEval, res)
		}
		return parse.ParseString(v, parse.ParseFragment())
	case AsString:
		v, ok := res.(string)
		if !ok {
			return nil, fmt.Errorf("%w: result as string but returned type %T", ErrEval, res)
		}
		return ir.FromString(v), nil
	default:
		return gomap.FromAny(res)
	}
}

// Filter keeps the elements of the array doc for which predicate holds.
// The predicate sees the element as it and its index as index, besides
// doc.
func Filter(doc *ir.Node, predicate string, opts ...EvalOption) (*ir.Node, error) {
	if doc.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: filter applies to arrays, got %s", ErrEval, doc.Type)
	}
	o := newEvalOpts(opts)
	prg, err := expr.Compile(predicate, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	env := o.vars(doc)
	var keep []*ir.Node
	for i, elt := range doc.Values {
		env["it"] = gomap.ToAny(elt)
		env["index"] = i
		res, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrEval, i, err)
		}
		b, ok := res.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: element %d: predicate returned %T", ErrEval, i, res)
		}
		if b {
			keep = append(keep, elt)
		}
	}
	return ir.FromSlice(keep), nil
}
