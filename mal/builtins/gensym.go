package builtins

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gfreezy/mal/mal/types"
)

// gensymCounter makes successive gensym symbols within one process
// distinct; the 8-character uuid suffix makes it unlikely that a
// generated name matches a symbol a user wrote in the same G__N shape.
var gensymCounter int64

func init() {
	register("gensym", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("gensym", args, 0); err != nil {
			return nil, err
		}
		n := atomic.AddInt64(&gensymCounter, 1)
		return types.Sym(fmt.Sprintf("G__%d_%s", n, uuid.NewString()[:8])), nil
	})
}
