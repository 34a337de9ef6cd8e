package builtins

import "github.com/gfreezy/mal/mal/types"

func init() {
	register("+", binaryNum("+", func(a, b types.Num) types.Num { return a + b }))
	register("-", binaryNum("-", func(a, b types.Num) types.Num { return a - b }))
	register("*", binaryNum("*", func(a, b types.Num) types.Num { return a * b }))
	register("/", binaryNum("/", func(a, b types.Num) types.Num { return a / b }))
}

func binaryNum(name string, f func(a, b types.Num) types.Num) types.NativeFn {
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
		return f(a, b), nil
	}
}
