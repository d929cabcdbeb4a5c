package main

import (
	"fmt"

	"github.com/signadot/jsonv"
	"github.com/signadot/jsonv/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch document, and optionally files to which to apply it", cli.ErrUsage)
	}
	ops, err := getish(cfg.MainConfig, cc, args[0], cfg.String)
	if err != nil {
		return fmt.Errorf("%w: error decoding patch: %w", cli.ErrUsage, err)
	}
	if ops.Type != ir.ArrayType {
		return fmt.Errorf("%w: patch should be an array of operations, got %s", cli.ErrUsage, ops.Type)
	}
	return eachFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *ir.Node) error {
		res, err := jsonv.Patch(doc, ops)
		if err != nil {
			return err
		}
		if err := cfg.output(cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
