package eval

import (
	"github.com/expr-lang/expr"
	"github.com/signadot/jsonv/gomap"
	"github.com/signadot/jsonv/ir"
)

var docFuncs = []string{"getpath", "listpath"}

func exprOpts(doc *ir.Node) []expr.Option {
	opts := []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return gomap.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			yRes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(yRes))
			for i, item := range yRes {
				res[i] = gomap.ToAny(item)
			}
			return res, nil
		},
			new(func(string) []any)),
	}
	for _, f := range Funcs() {
		opts = append(opts, f.option())
	}
	return opts
}
