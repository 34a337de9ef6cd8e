package builtins

import "github.com/gfreezy/mal/mal/types"

func init() {
	register("<", compareNum("<", func(a, b types.Num) bool { return a < b }))
	register("<=", compareNum("<=", func(a, b types.Num) bool { return a <= b }))
	register(">", compareNum(">", func(a, b types.Num) bool { return a > b }))
	register(">=", compareNum(">=", func(a, b types.Num) bool { return a >= b }))
	register("=", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("=", args, 2); err != nil {
			return nil, err
		}
		return types.Bool(types.Equal(args[0], args[1])), nil
	})
}

func compareNum(name string, f func(a, b types.Num) bool) types.NativeFn {
	return func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		a, err := num(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := num(name, args[1])
		if err != nil {
			return nil, err
		}
		return types.Bool(f(a, b)), nil
	}
}
