package builtins

import (
	"time"

	"github.com/gfreezy/mal/mal/types"
)

func init() {
	register("meta", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("meta", args, 1); err != nil {
			return nil, err
		}
		return types.Meta(args[0]), nil
	})
	register("with-meta", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("with-meta", args, 2); err != nil {
			return nil, err
		}
		return types.WithMeta(args[0], args[1])
	})
	register("time-ms", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("time-ms", args, 0); err != nil {
			return nil, err
		}
		return types.Num(time.Now().UnixMilli()), nil
	})
	register("throw", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("throw", args, 1); err != nil {
			return nil, err
		}
		return nil, &types.Thrown{Val: args[0]}
	})
}
