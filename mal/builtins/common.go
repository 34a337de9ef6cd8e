package builtins

import (
	"fmt"

	"github.com/gfreezy/mal/mal/types"
)

func arity(name string, args []types.Value, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func arityAtLeast(name string, args []types.Value, n int) error {
	if len(args) < n {
		return fmt.Errorf("%s: expected at least %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// num, str, closure, atom, and asMap wrap the types package's own
// coercions (types.AsNum and friends, spec §4.A "coercions") to attach the
// calling builtin's name to the error instead of duplicating the
// underlying type switch.

func num(name string, v types.Value) (types.Num, error) {
	n, err := types.AsNum(v)
	if err != nil {
		return 0, fmt.Errorf("%s: expected a number, got %s", name, v.Kind())
	}
	return n, nil
}

func str(name string, v types.Value) (types.Str, error) {
	s, err := types.AsStr(v)
	if err != nil {
		return "", fmt.Errorf("%s: expected a string, got %s", name, v.Kind())
	}
	return s, nil
}

func closure(name string, v types.Value) (*types.Closure, error) {
	c, err := types.AsClosure(v)
	if err != nil {
		return nil, fmt.Errorf("%s: expected a function, got %s", name, v.Kind())
	}
	return c, nil
}

func atom(name string, v types.Value) (*types.Atom, error) {
	a, err := types.AsAtom(v)
	if err != nil {
		return nil, fmt.Errorf("%s: expected an atom, got %s", name, v.Kind())
	}
	return a, nil
}

func asMap(name string, v types.Value) (*types.Map, error) {
	m, err := types.AsMap(v)
	if err != nil {
		return nil, fmt.Errorf("%s: expected a map, got %s", name, v.Kind())
	}
	return m, nil
}

// seqItems returns v's elements if v is List or Vec, erroring otherwise.
func seqItems(name string, v types.Value) ([]types.Value, error) {
	items, ok := types.Items(v)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list or vector, got %s", name, v.Kind())
	}
	return items, nil
}

// call invokes any Closure -- builtin or user-defined -- uniformly. A
// capturing closure's Native trampoline (set up by mal/eval when it builds
// the closure) runs the body to completion; this is the non-tail-call path
// used by apply, map, and swap!, never the main evaluator loop, so it is
// not expected to participate in tail-call elimination (spec §4.E names
// only the evaluator's own loop as TCO-eligible).
func call(c *types.Closure, args []types.Value) (types.Value, error) {
	return c.Native(args, c.Capture)
}
