package builtins

import (
	"fmt"

	"github.com/gfreezy/mal/mal/types"
)

func init() {
	register("hash-map", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		entries, err := pairsToEntries("hash-map", args)
		if err != nil {
			return nil, err
		}
		return types.NewMap(entries), nil
	})
	register("map?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("map?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(*types.Map)
		return types.Bool(ok), nil
	})
	register("assoc", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arityAtLeast("assoc", args, 1); err != nil {
			return nil, err
		}
		m, err := asMap("assoc", args[0])
		if err != nil {
			return nil, err
		}
		extra, err := pairsToEntries("assoc", args[1:])
		if err != nil {
			return nil, err
		}
		out := m.Clone()
		for k, v := range extra {
			out.Entries[k] = v
		}
		return out, nil
	})
	register("dissoc", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arityAtLeast("dissoc", args, 1); err != nil {
			return nil, err
		}
		m, err := asMap("dissoc", args[0])
		if err != nil {
			return nil, err
		}
		out := m.Clone()
		for _, k := range args[1:] {
			key, ok := types.NewMapKey(k)
			if !ok {
				return nil, fmt.Errorf("dissoc: expected a string or keyword key, got %s", k.Kind())
			}
			delete(out.Entries, key)
		}
		return out, nil
	})
	register("get", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("get", args, 2); err != nil {
			return nil, err
		}
		if _, ok := args[0].(types.Nil); ok {
			return types.NilValue, nil
		}
		m, err := asMap("get", args[0])
		if err != nil {
			return nil, err
		}
		key, ok := types.NewMapKey(args[1])
		if !ok {
			return types.NilValue, nil
		}
		v, ok := m.Entries[key]
		if !ok {
			return types.NilValue, nil
		}
		return v, nil
	})
	register("contains?", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("contains?", args, 2); err != nil {
			return nil, err
		}
		m, err := asMap("contains?", args[0])
		if err != nil {
			return nil, err
		}
		key, ok := types.NewMapKey(args[1])
		if !ok {
			return types.Bool(false), nil
		}
		_, ok = m.Entries[key]
		return types.Bool(ok), nil
	})
	register("keys", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("keys", args, 1); err != nil {
			return nil, err
		}
		m, err := asMap("keys", args[0])
		if err != nil {
			return nil, err
		}
		items := make([]types.Value, 0, len(m.Entries))
		for k := range m.Entries {
			items = append(items, k.ToValue())
		}
		return types.NewList(items), nil
	})
	register("vals", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("vals", args, 1); err != nil {
			return nil, err
		}
		m, err := asMap("vals", args[0])
		if err != nil {
			return nil, err
		}
		items := make([]types.Value, 0, len(m.Entries))
		for _, v := range m.Entries {
			items = append(items, v)
		}
		return types.NewList(items), nil
	})
}

// pairsToEntries turns a flat key/value argument run into map entries,
// the same even-count/key-type rules the reader applies to {} literals.
func pairsToEntries(name string, args []types.Value) (map[types.MapKey]types.Value, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%s: expected an even number of key/value arguments, got %d", name, len(args))
	}
	entries := make(map[types.MapKey]types.Value, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := types.NewMapKey(args[i])
		if !ok {
			return nil, fmt.Errorf("%s: keys must be strings or keywords, got %s", name, args[i].Kind())
		}
		entries[key] = args[i+1]
	}
	return entries, nil
}
