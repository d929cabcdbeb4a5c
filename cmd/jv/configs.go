package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/format"
	"github.com/signadot/jsonv/gomap"
	"github.com/signadot/jsonv/ir"
	"github.com/signadot/jsonv/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	X      bool `cli:"name=x desc='accept inf, -inf, nan and snan literals'"`
	Indent int  `cli:"name=indent desc='indent output by n spaces'"`
	Color  bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format(fp *format.Format) format.Format {
	var res format.Format
	switch {
	case cfg.Y:
		res = format.YAMLFormat
	case cfg.J:
		res = format.JSONFormat
	}
	if fp != nil {
		res = *fp
	}
	return res
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.X {
		res = append(res, parse.ParseNonFinite())
	}
	return res
}

// decode parses d according to the input format.
func (cfg *MainConfig) decode(d []byte) (*ir.Node, error) {
	if cfg.format(cfg.InFormat).IsYAML() {
		return gomap.FromYAML(d)
	}
	return parse.Parse(d, cfg.parseOpts()...)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeStrict(!cfg.X),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// output writes node to w in the output format.
func (cfg *MainConfig) output(w io.Writer, node *ir.Node) error {
	if cfg.format(cfg.OutFormat).IsYAML() {
		return gomap.EncodeYAML(node, w)
	}
	return encode.Encode(node, w, cfg.encOpts(w)...)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	List bool `cli:"name=l aliases=list desc='list all matches as an array'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Merge   bool `cli:"name=m aliases=merge desc='produce a merge patch'"`
	Changes bool `cli:"name=c aliases=changes desc='list changes instead of a patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='merge patch arg as string'"`

	Merge *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	As     string `cli:"name=as desc='result kind: any, value or string'"`
	Filter bool   `cli:"name=filter desc='treat the expression as a predicate on array elements'"`
	Funcs  bool   `cli:"name=funcs desc='show available functions'"`

	Eval *cli.Command
}

type LintConfig struct {
	*MainConfig
	Required bool `cli:"name=r aliases=required desc='fields are required'"`

	Lint *cli.Command
}
