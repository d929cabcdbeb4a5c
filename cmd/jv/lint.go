package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/ir"

	"github.com/scott-cotton/cli"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		cfg.Lint.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: lint requires a comma separated list of fields", cli.ErrUsage)
	}
	var fields []ir.Key
	for _, f := range strings.Split(args[0], ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, ir.Key(f))
		}
	}
	problems := 0
	err = eachFile(cfg.MainConfig, cc, args[1:], func(name string, doc *ir.Node) error {
		err := codec.Lint(doc, func(d *codec.Dict) error {
			for _, f := range fields {
				if cfg.Required {
					if _, err := d.Pop(f); err != nil {
						return err
					}
					continue
				}
				d.Remove(f)
			}
			return nil
		})
		if err == nil {
			return nil
		}
		lerr := &codec.LintingError{}
		uerr := &codec.UndefinedKeyError{}
		switch {
		case errors.As(err, &lerr):
			for _, kv := range lerr.Unused {
				fmt.Fprintf(cc.Out, "%s: unknown field %q\n", name, kv.Key)
			}
		case errors.As(err, &uerr):
			fmt.Fprintf(cc.Out, "%s: missing field %q\n", name, uerr.Key)
		default:
			return err
		}
		problems++
		return nil
	})
	if err != nil {
		return err
	}
	if problems != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
