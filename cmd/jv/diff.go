package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jsonv"
	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Merge && cfg.Changes {
		return fmt.Errorf("%w: -m and -c are exclusive", cli.ErrUsage)
	}
	y1, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Merge {
		mp, err := jsonv.MergeDiff(a, b)
		if err != nil {
			return false, err
		}
		if mp.Type == ir.ObjectType && len(mp.Values) == 0 {
			return false, nil
		}
		return true, cfg.output(w, mp)
	}
	changes, err := libdiff.Diff(a, b)
	if err != nil {
		return false, err
	}
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Changes {
		return true, writeChanges(cfg.MainConfig, w, changes)
	}
	p, err := libdiff.ToPatch(changes)
	if err != nil {
		return false, err
	}
	return true, cfg.output(w, p)
}

// writeChanges lists changes one per line. String replacements show their
// hunks, in color when the output has colors.
func writeChanges(cfg *MainConfig, w io.Writer, changes []libdiff.Change) error {
	es := &encode.EncState{}
	for _, opt := range cfg.encOpts(w) {
		opt(es)
	}
	for _, c := range changes {
		hunks := libdiff.StringHunks(c)
		if hunks == nil {
			if _, err := fmt.Fprintln(w, c.String()); err != nil {
				return err
			}
			continue
		}
		buf := &strings.Builder{}
		for _, h := range hunks {
			text := encode.MustString(ir.FromString(h.Text))
			text = text[1 : len(text)-1]
			switch h.Type {
			case diffpatch.DiffDelete:
				buf.WriteString(deleteColor(es, "[-" + text + "-]"))
			case diffpatch.DiffInsert:
				buf.WriteString(insertColor(es, "{+" + text + "+}"))
			default:
				buf.WriteString(text)
			}
		}
		if _, err := fmt.Fprintf(w, "%s %s: \"%s\"\n", c.Op, c.Path, buf); err != nil {
			return err
		}
	}
	return nil
}

func deleteColor(es *encode.EncState, s string) string {
	if es.Color == nil {
		return s
	}
	return color.New(color.FgRed).Sprint(s)
}

func insertColor(es *encode.EncState, s string) string {
	if es.Color == nil {
		return s
	}
	return color.New(color.FgGreen).Sprint(s)
}
