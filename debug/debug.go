package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/ir"
)

type debug struct {
	Parse  bool
	Decode bool
	Patch  bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSONV_DEBUG_PARSE")
	d.Decode = boolEnv("JSONV_DEBUG_DECODE")
	d.Patch = boolEnv("JSONV_DEBUG_PATCH")
	d.LSP = boolEnv("JSONV_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Decode() bool {
	return d.Decode
}
func Patch() bool {
	return d.Patch
}
func LSP() bool {
	return d.LSP
}

// Logf writes a formatted line to stderr. *ir.Node arguments are rendered
// as compact JSON.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, render(args)...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}

func render(args []any) []any {
	res := make([]any, len(args))
	for i, arg := range args {
		res[i] = arg
		if node, ok := arg.(*ir.Node); ok {
			s, err := encode.String(node)
			if err != nil {
				s = "<" + err.Error() + ">"
			}
			res[i] = s
		}
	}
	return res
}
