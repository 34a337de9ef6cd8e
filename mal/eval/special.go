package eval

import (
	"fmt"

	"github.com/gfreezy/mal/mal/types"
)

// evalDef implements def! (spec §4.E): evaluate EXPR in env, bind SYM to
// it in env, return the value. Terminal -- not tail-call eligible.
func evalDef(list *types.List, env *types.Env) (types.Value, error) {
	if len(list.Items)-1 != 2 {
		return nil, arityErr("def!", 2, len(list.Items)-1)
	}
	sym, err := types.AsSym(list.Items[1])
	if err != nil {
		return nil, fmt.Errorf("def!: first argument must be a symbol")
	}
	v, err := Eval(list.Items[2], env)
	if err != nil {
		return nil, err
	}
	env.Set(sym, v)
	return v, nil
}

// evalLet implements let* (spec §4.E): build a child env, bind each
// BINDINGS pair in order (each EXPR sees the bindings made before it),
// then return (BODY, child) for the caller to tail-continue with.
func evalLet(list *types.List, env *types.Env) (types.Value, *types.Env, error) {
	if len(list.Items)-1 != 2 {
		return nil, nil, arityErr("let*", 2, len(list.Items)-1)
	}
	pairs, ok := types.Items(list.Items[1])
	if !ok {
		return nil, nil, fmt.Errorf("let*: bindings must be a list or vector")
	}
	if len(pairs)%2 != 0 {
		return nil, nil, fmt.Errorf("let*: bindings must have an even number of forms")
	}
	child := types.NewEnv(env, nil, nil)
	for i := 0; i < len(pairs); i += 2 {
		sym, ok := pairs[i].(types.Sym)
		if !ok {
			return nil, nil, fmt.Errorf("let*: binding names must be symbols")
		}
		v, err := Eval(pairs[i+1], child)
		if err != nil {
			return nil, nil, err
		}
		child.Set(sym, v)
	}
	return list.Items[2], child, nil
}

// evalDo implements do (spec §4.E): evaluate every EXPR but the last for
// effect, return the last for the caller to tail-continue with. An empty
// do returns Nil directly (no further evaluation).
func evalDo(list *types.List, env *types.Env) (types.Value, error) {
	items := list.Items[1:]
	if len(items) == 0 {
		return types.NilValue, nil
	}
	for _, it := range items[:len(items)-1] {
		if _, err := Eval(it, env); err != nil {
			return nil, err
		}
	}
	return items[len(items)-1], nil
}

// evalIf implements if (spec §4.E): only Nil and false are falsy. A
// missing ELSE evaluates to Nil.
func evalIf(list *types.List, env *types.Env) (types.Value, error) {
	n := len(list.Items) - 1
	if n != 2 && n != 3 {
		return nil, fmt.Errorf("if: expected 2 or 3 argument(s), got %d", n)
	}
	cond, err := Eval(list.Items[1], env)
	if err != nil {
		return nil, err
	}
	if types.IsTruthy(cond) {
		return list.Items[2], nil
	}
	if n == 3 {
		return list.Items[3], nil
	}
	return types.NilValue, nil
}

// evalFnStar implements fn* (spec §4.E): construct a capturing closure
// whose Native trampoline runs its body to completion for callers (apply,
// map, swap!) that can't participate in the evaluator's own TCO loop. The
// loop itself never calls this trampoline -- it binds params and
// tail-continues on fn.Capture.Body directly (see Eval's application
// step).
func evalFnStar(list *types.List, env *types.Env) (types.Value, error) {
	if len(list.Items)-1 != 2 {
		return nil, arityErr("fn*", 2, len(list.Items)-1)
	}
	params := list.Items[1]
	if _, err := types.ParamNames(params); err != nil {
		return nil, err
	}
	capture := &types.Capture{Params: params, Body: list.Items[2], Env: env}
	return types.NewFn(capture, func(args []types.Value, c *types.Capture) (types.Value, error) {
		childEnv, err := bindParams(c, args)
		if err != nil {
			return nil, err
		}
		return Eval(c.Body, childEnv)
	}), nil
}

// evalDefmacro implements defmacro! (spec §4.E): like def!, but the value
// must already be a fn* closure (builtins are rejected), and the bound copy has its macro flag set --
// the original (if it's still referenced elsewhere) is left untouched.
func evalDefmacro(list *types.List, env *types.Env) (types.Value, error) {
	if len(list.Items)-1 != 2 {
		return nil, arityErr("defmacro!", 2, len(list.Items)-1)
	}
	sym, err := types.AsSym(list.Items[1])
	if err != nil {
		return nil, fmt.Errorf("defmacro!: first argument must be a symbol")
	}
	v, err := Eval(list.Items[2], env)
	if err != nil {
		return nil, err
	}
	c, err := types.AsClosure(v)
	if err != nil {
		return nil, err
	}
	if c.Capture == nil {
		return nil, fmt.Errorf("defmacro!: a builtin function cannot be a macro")
	}
	macro := types.NewFn(c.Capture, c.Native).WithMeta(c.Meta())
	macro.IsMacro = true
	env.Set(sym, macro)
	return macro, nil
}

// evalTry implements try*/catch* (spec §4.E, §7). On success it returns
// (value, nil, nil, true, nil) -- terminal. On a raised error it binds the
// exception value in a child env and returns (nil, HANDLER, child, false,
// nil) for the caller to tail-continue with.
func evalTry(list *types.List, env *types.Env) (types.Value, types.Value, *types.Env, bool, error) {
	if len(list.Items)-1 != 2 {
		return nil, nil, nil, false, arityErr("try*", 2, len(list.Items)-1)
	}
	catchList, ok := list.Items[2].(*types.List)
	if !ok || len(catchList.Items) != 3 {
		return nil, nil, nil, false, fmt.Errorf("try*: second form must be (catch* SYM HANDLER)")
	}
	catchSym, ok := catchList.Items[0].(types.Sym)
	if !ok || catchSym != "catch*" {
		return nil, nil, nil, false, fmt.Errorf("try*: second form must be (catch* SYM HANDLER)")
	}
	bindSym, ok := catchList.Items[1].(types.Sym)
	if !ok {
		return nil, nil, nil, false, fmt.Errorf("try*: catch* binding must be a symbol")
	}
	handler := catchList.Items[2]

	v, err := Eval(list.Items[1], env)
	if err == nil {
		return v, nil, nil, true, nil
	}

	var excVal types.Value
	if t, ok := types.AsThrown(err); ok {
		excVal = t.Val
	} else {
		excVal = types.Str(err.Error())
	}
	child := types.NewEnv(env, []types.Sym{bindSym}, []types.Value{excVal})
	return nil, handler, child, false, nil
}

// bindParams binds capture's parameter form to args, validating arity
// (the shape checks spec §4.D defers to the caller rather than Env.New).
func bindParams(capture *types.Capture, args []types.Value) (*types.Env, error) {
	names, err := types.ParamNames(capture.Params)
	if err != nil {
		return nil, err
	}
	if err := checkArity(names, args); err != nil {
		return nil, err
	}
	return types.NewEnv(capture.Env, names, args), nil
}

func checkArity(names []types.Sym, args []types.Value) error {
	amp := -1
	for i, n := range names {
		if n == "&" {
			amp = i
			break
		}
	}
	if amp == -1 {
		if len(args) != len(names) {
			return fmt.Errorf("wrong number of arguments: expected %d, got %d", len(names), len(args))
		}
		return nil
	}
	if len(args) < amp {
		return fmt.Errorf("wrong number of arguments: expected at least %d, got %d", amp, len(args))
	}
	return nil
}
