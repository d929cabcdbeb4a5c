package eval

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]*Func{}
)

var ErrFuncExists = errors.New("function exists")

// Register adds f to the functions available to programs. Names bound
// to the document, such as getpath, are reserved.
func Register(f *Func) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[f.Name]
	if present || slices.Contains(docFuncs, f.Name) {
		return fmt.Errorf("%s: %w", f, ErrFuncExists)
	}
	d[f.Name] = f
	return nil
}

func init() {
	Register(GetEnv())
	Register(FromJSON())
	Register(ToJSON())
}

func Lookup(name string) *Func {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Funcs returns the registered functions sorted by name.
func Funcs() []*Func {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]*Func, 0, len(d))
	for _, f := range d {
		res = append(res, f)
	}
	slices.SortFunc(res, func(a, b *Func) int { return strings.Compare(a.Name, b.Name) })
	return res
}
