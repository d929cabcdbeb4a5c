package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/jsonv/encode"
	"github.com/signadot/jsonv/gomap"
	"github.com/signadot/jsonv/parse"
)

// GetEnv returns getenv(name), the value of an environment variable.
func GetEnv() *Func {
	return &Func{
		Name: "getenv",
		Fn: func(params ...any) (any, error) {
			return os.Getenv(strings.TrimSpace(params[0].(string))), nil
		},
		Types: []any{new(func(string) string)},
	}
}

// FromJSON returns fromjson(text), which parses a JSON value held in a
// string.
func FromJSON() *Func {
	return &Func{
		Name: "fromjson",
		Fn: func(params ...any) (any, error) {
			node, err := parse.ParseString(params[0].(string), parse.ParseFragment())
			if err != nil {
				return nil, err
			}
			return gomap.ToAny(node), nil
		},
		Types: []any{new(func(string) any)},
	}
}

// ToJSON returns tojson(v), the compact JSON text of v.
func ToJSON() *Func {
	return &Func{
		Name: "tojson",
		Fn: func(params ...any) (any, error) {
			node, err := gomap.FromAny(params[0])
			if err != nil {
				return nil, fmt.Errorf("tojson: %w", err)
			}
			return encode.String(node)
		},
		Types: []any{new(func(any) string)},
	}
}
