package builtins

import "github.com/gfreezy/mal/mal/types"

func init() {
	register("symbol", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("symbol", args, 1); err != nil {
			return nil, err
		}
		s, err := str("symbol", args[0])
		if err != nil {
			return nil, err
		}
		return types.Sym(s), nil
	})
	register("symbol?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("symbol?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(types.Sym)
		return types.Bool(ok), nil
	})
	register("keyword", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("keyword", args, 1); err != nil {
			return nil, err
		}
		if kw, ok := args[0].(types.Kw); ok {
			return kw, nil
		}
		s, err := str("keyword", args[0])
		if err != nil {
			return nil, err
		}
		return types.NewKw(string(s)), nil
	})
	register("keyword?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("keyword?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(types.Kw)
		return types.Bool(ok), nil
	})
	register("string?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("string?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(types.Str)
		return types.Bool(ok), nil
	})
	register("number?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("number?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(types.Num)
		return types.Bool(ok), nil
	})
	register("nil?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("nil?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(types.Nil)
		return types.Bool(ok), nil
	})
	register("true?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("true?", args, 1); err != nil {
			return nil, err
		}
		b, ok := args[0].(types.Bool)
		return types.Bool(ok && bool(b)), nil
	})
	register("false?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("false?", args, 1); err != nil {
			return nil, err
		}
		b, ok := args[0].(types.Bool)
		return types.Bool(ok && !bool(b)), nil
	})
	register("fn?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("fn?", args, 1); err != nil {
			return nil, err
		}
		c, ok := args[0].(*types.Closure)
		return types.Bool(ok && !c.IsMacro), nil
	})
	register("macro?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("macro?", args, 1); err != nil {
			return nil, err
		}
		c, ok := args[0].(*types.Closure)
		return types.Bool(ok && c.IsMacro), nil
	})
}
