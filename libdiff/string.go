package libdiff

import (
	"strings"

	"github.com/signadot/jsonv/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// StringHunks returns the character level differences of a change
// replacing one string by another, or nil for any other change. Multi-line
// strings are diffed line first.
func StringHunks(c Change) []diffpatch.Diff {
	if c.Op != Replace || c.From == nil || c.To == nil {
		return nil
	}
	if c.From.Type != ir.StringType || c.To.Type != ir.StringType {
		return nil
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(c.From.String, "\n") && strings.Contains(c.To.String, "\n")
	diffs := diffCfg.DiffMain(c.From.String, c.To.String, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}
