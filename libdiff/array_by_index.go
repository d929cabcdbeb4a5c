package libdiff

import (
	"strconv"
	"unicode/utf8"

	"github.com/signadot/jsonv/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray compares arrays by index.
//
//  1. every element is summarised: its type, plus the value for scalars
//  2. the summary sequences are diffed
//  3. elements with matching summaries are recursed on, which only yields
//     changes for containers
//  4. a run of deletions next to a run of insertions is paired up into
//     replacements, the excess becomes removes or adds
//
// ri tracks the index in the array as patched so far.
func diffArray(p prefix, from, to *ir.Node, out *[]Change) error {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ri := 0, 0, 0
	for i := 0; i < len(diffs); i++ {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		if diff.Type == diffpatch.DiffEqual {
			for range n {
				if err := diffNode(p.at(ri), from.Values[fi], to.Values[ti], out); err != nil {
					return err
				}
				fi++
				ti++
				ri++
			}
			continue
		}
		dels, ins := 0, 0
		count := func(d *diffpatch.Diff, n int) {
			if d.Type == diffpatch.DiffDelete {
				dels += n
			} else {
				ins += n
			}
		}
		count(diff, n)
		if i+1 < len(diffs) {
			next := &diffs[i+1]
			if next.Type != diffpatch.DiffEqual && next.Type != diff.Type {
				count(next, utf8.RuneCountInString(next.Text))
				i++
			}
		}
		paired := min(dels, ins)
		for range paired {
			if err := diffNode(p.at(ri), from.Values[fi], to.Values[ti], out); err != nil {
				return err
			}
			fi++
			ti++
			ri++
		}
		for range dels - paired {
			*out = append(*out, makeRemove(p.at(ri), from.Values[fi]))
			fi++
		}
		for range ins - paired {
			*out = append(*out, makeAdd(p.at(ri), to.Values[ti]))
			ti++
			ri++
		}
	}
	return nil
}

// mapValues assigns each distinct summary a rune. Runes are allocated
// past the surrogate range so that they survive the string conversions
// done by diffmatchpatch.
func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		n := normalize(node.Number)
		return node.Type.String() + "-" + n.Kind.String() + "-" + n.String()
	default:
		return node.Type.String()
	}
}
