package builtins

import "github.com/gfreezy/mal/mal/types"

func init() {
	register("atom", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("atom", args, 1); err != nil {
			return nil, err
		}
		return types.NewAtom(args[0]), nil
	})
	register("atom?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("atom?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(*types.Atom)
		return types.Bool(ok), nil
	})
	register("deref", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("deref", args, 1); err != nil {
			return nil, err
		}
		a, err := atom("deref", args[0])
		if err != nil {
			return nil, err
		}
		return a.Val, nil
	})
	register("reset!", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("reset!", args, 2); err != nil {
			return nil, err
		}
		a, err := atom("reset!", args[0])
		if err != nil {
			return nil, err
		}
		a.Val = args[1]
		return a.Val, nil
	})
	register("swap!", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arityAtLeast("swap!", args, 2); err != nil {
			return nil, err
		}
		a, err := atom("swap!", args[0])
		if err != nil {
			return nil, err
		}
		fn, err := closure("swap!", args[1])
		if err != nil {
			return nil, err
		}
		callArgs := append([]types.Value{a.Val}, args[2:]...)
		v, err := call(fn, callArgs)
		if err != nil {
			return nil, err
		}
		a.Val = v
		return v, nil
	})
}
