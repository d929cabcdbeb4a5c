package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jsonv/eval"
	"github.com/signadot/jsonv/gomap"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/parse"

	"github.com/scott-cotton/cli"
)

func jvEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Funcs {
		fmt.Fprintf(cc.Out, "available functions:\n")
		for _, f := range eval.Funcs() {
			fmt.Fprintf(cc.Out, "\t- %s\n", f)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	program := args[0]
	opts := []eval.EvalOption{eval.EvalEnv(cfg.Env)}
	if cfg.As != "" {
		as, err := eval.ParseResultAs(cfg.As)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts = append(opts, eval.EvalAs(as))
	}
	return eachFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *ir.Node) error {
		var (
			res *ir.Node
			err error
		)
		if cfg.Filter {
			res, err = eval.Filter(doc, program, opts...)
		} else {
			res, err = eval.Eval(doc, program, opts...)
		}
		if err != nil {
			return err
		}
		return cfg.output(cc.Out, res)
	})
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc binds name=val in env, val being json text.
func envFunc(env map[string]any, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	node, err := parse.ParseString(val, parse.ParseFragment())
	if err != nil {
		return fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, name, err)
	}
	env[name] = gomap.ToAny(node)
	return nil
}
