package builtins

import (
	"fmt"

	"github.com/gfreezy/mal/mal/types"
)

func init() {
	register("list", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		return types.NewList(append([]types.Value{}, args...)), nil
	})
	register("list?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("list?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(*types.List)
		return types.Bool(ok), nil
	})
	register("vector", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		return types.NewVec(append([]types.Value{}, args...)), nil
	})
	register("vector?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("vector?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(*types.Vec)
		return types.Bool(ok), nil
	})
	register("empty?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("empty?", args, 1); err != nil {
			return nil, err
		}
		if _, ok := args[0].(types.Nil); ok {
			return types.Bool(true), nil
		}
		items, err := seqItems("empty?", args[0])
		if err != nil {
			return nil, err
		}
		return types.Bool(len(items) == 0), nil
	})
	register("count", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("count", args, 1); err != nil {
			return nil, err
		}
		if _, ok := args[0].(types.Nil); ok {
			return types.Num(0), nil
		}
		items, err := seqItems("count", args[0])
		if err != nil {
			return nil, err
		}
		return types.Num(len(items)), nil
	})
	register("sequential?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("sequential?", args, 1); err != nil {
			return nil, err
		}
		return types.Bool(types.IsSequential(args[0])), nil
	})
	register("cons", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("cons", args, 2); err != nil {
			return nil, err
		}
		rest, err := seqItems("cons", args[1])
		if err != nil {
			return nil, err
		}
		items := make([]types.Value, 0, len(rest)+1)
		items = append(items, args[0])
		items = append(items, rest...)
		return types.NewList(items), nil
	})
	register("concat", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		var items []types.Value
		for _, a := range args {
			part, err := seqItems("concat", a)
			if err != nil {
				return nil, err
			}
			items = append(items, part...)
		}
		return types.NewList(items), nil
	})
	register("nth", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("nth", args, 2); err != nil {
			return nil, err
		}
		items, err := seqItems("nth", args[0])
		if err != nil {
			return nil, err
		}
		n, err := num("nth", args[1])
		if err != nil {
			return nil, err
		}
		i := int(n)
		if i < 0 || i >= len(items) {
			return nil, fmt.Errorf("nth: index out of range")
		}
		return items[i], nil
	})
	register("first", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("first", args, 1); err != nil {
			return nil, err
		}
		if _, ok := args[0].(types.Nil); ok {
			return types.NilValue, nil
		}
		items, err := seqItems("first", args[0])
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return types.NilValue, nil
		}
		return items[0], nil
	})
	register("rest", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("rest", args, 1); err != nil {
			return nil, err
		}
		if _, ok := args[0].(types.Nil); ok {
			return types.NewList(nil), nil
		}
		items, err := seqItems("rest", args[0])
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return types.NewList(nil), nil
		}
		return types.NewList(append([]types.Value{}, items[1:]...)), nil
	})
	register("map", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("map", args, 2); err != nil {
			return nil, err
		}
		fn, err := closure("map", args[0])
		if err != nil {
			return nil, err
		}
		items, err := seqItems("map", args[1])
		if err != nil {
			return nil, err
		}
		out := make([]types.Value, len(items))
		for i, it := range items {
			v, err := call(fn, []types.Value{it})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return types.NewList(out), nil
	})
	register("apply", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arityAtLeast("apply", args, 2); err != nil {
			return nil, err
		}
		fn, err := closure("apply", args[0])
		if err != nil {
			return nil, err
		}
		last, err := seqItems("apply", args[len(args)-1])
		if err != nil {
			return nil, err
		}
		callArgs := append([]types.Value{}, args[1:len(args)-1]...)
		callArgs = append(callArgs, last...)
		return call(fn, callArgs)
	})
	register("conj", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arityAtLeast("conj", args, 1); err != nil {
			return nil, err
		}
		switch seq := args[0].(type) {
		case *types.List:
			items := append([]types.Value{}, seq.Items...)
			for _, v := range args[1:] {
				items = append([]types.Value{v}, items...)
			}
			return types.NewList(items), nil
		case *types.Vec:
			items := append([]types.Value{}, seq.Items...)
			items = append(items, args[1:]...)
			return types.NewVec(items), nil
		default:
			return nil, fmt.Errorf("conj: expected a list or vector, got %s", args[0].Kind())
		}
	})
	register("seq", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("seq", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case types.Nil:
			return types.NilValue, nil
		case *types.List:
			if len(v.Items) == 0 {
				return types.NilValue, nil
			}
			return v, nil
		case *types.Vec:
			if len(v.Items) == 0 {
				return types.NilValue, nil
			}
			return types.NewList(append([]types.Value{}, v.Items...)), nil
		case types.Str:
			if len(v) == 0 {
				return types.NilValue, nil
			}
			items := make([]types.Value, 0, len(v))
			for _, r := range string(v) {
				items = append(items, types.Str(string(r)))
			}
			return types.NewList(items), nil
		default:
			return nil, fmt.Errorf("seq: expected a list, vector, string, or nil, got %s", args[0].Kind())
		}
	})
}
