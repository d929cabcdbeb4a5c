package main

import (
	"fmt"

	"github.com/signadot/jsonv/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachFile(cfg.MainConfig, cc, args, func(_ string, doc *ir.Node) error {
		if err := cfg.output(cc.Out, doc); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
