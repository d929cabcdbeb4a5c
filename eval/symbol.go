package eval

import "github.com/expr-lang/expr"

// Func is a function made available to every program.
type Func struct {
	Name string
	Fn   func(params ...any) (any, error)
	// Types are signature hints, as for expr.Function, e.g.
	// new(func(string) string).
	Types []any
}

func (f *Func) String() string {
	return f.Name
}

func (f *Func) option() expr.Option {
	return expr.Function(f.Name, f.Fn, f.Types...)
}
