package edit

import (
	"context"

	"github.com/lexlapax/xmerge/pkg/log"
)

// Lua hook function names for table editing. Hooks observe the stage and
// cannot change the table; their return values are ignored.
const (
	// Called after the asymmetric unit column is added
	// Parameters: rows number, target_identity string
	afterASUMappingFuncName = "after_asu_mapping"

	// Called after pruning
	// Parameters: columns []string
	afterPruneFuncName = "after_prune"
)

func (e *TableEditor) callHook(ctx context.Context, name string, args ...interface{}) {
	if e.scriptEngine == nil || !e.scriptEngine.HasFunction(name) {
		return
	}
	if _, err := e.scriptEngine.ExecuteFunction(ctx, name, args...); err != nil {
		log.FromContext(ctx).Warn("Error in Lua hook", "hook", name, "error", err)
	}
}
