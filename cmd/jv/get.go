package main

import (
	"fmt"

	"github.com/signadot/jsonv/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *ir.Node) error {
		if cfg.List {
			res, err := doc.ListPath(nil, path)
			if err != nil {
				return err
			}
			return cfg.output(cc.Out, ir.FromSlice(res))
		}
		res, err := doc.GetPath(path)
		if err != nil {
			return err
		}
		if res == nil {
			// don't encode anything and don't yell either
			return nil
		}
		return cfg.output(cc.Out, res)
	})
}
