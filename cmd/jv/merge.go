package main

import (
	"fmt"

	"github.com/signadot/jsonv"
	"github.com/signadot/jsonv/ir"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires a merge patch, and optionally files to which to apply it", cli.ErrUsage)
	}
	mp, err := getish(cfg.MainConfig, cc, args[0], cfg.String)
	if err != nil {
		return fmt.Errorf("%w: error decoding merge patch: %w", cli.ErrUsage, err)
	}
	return eachFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *ir.Node) error {
		res, err := jsonv.MergePatch(doc, mp)
		if err != nil {
			return err
		}
		if err := cfg.output(cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
