package main

import (
	"errors"
	"fmt"

	"github.com/signadot/jsonv/parse"
	"github.com/signadot/jsonv/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		_, err = cfg.decode(d)
		if err == nil {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", file)
			}
			continue
		}
		failed++
		fmt.Fprintf(cc.Out, "%s: %s\n", file, describe(d, err))
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// describe reports err with a 1-based line and column when it has an
// offset.
func describe(d []byte, err error) string {
	var se *parse.SyntaxError
	if errors.As(err, &se) {
		return fmt.Sprintf("%d:%d: expected %s, found %s", se.Line+1, se.Col+1, se.Expected, se.Found)
	}
	off, ok := parse.ErrorOffset(err)
	if !ok {
		return err.Error()
	}
	line, col := token.NewPosDoc(d).LineCol(off)
	return fmt.Sprintf("%d:%d: %s", line+1, col+1, err)
}
