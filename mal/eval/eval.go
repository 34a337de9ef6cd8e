// Package eval implements the tree-walking evaluator (spec §4.E): a single
// loop over (ast, env) that eliminates tail calls by updating its own loop
// variables instead of recursing, expands macro calls to a fixed point before
// every special-form dispatch, and builds the Native trampoline every
// fn* closure needs so mal/builtins can invoke user functions without
// importing this package.
package eval

import (
	"fmt"

	"github.com/gfreezy/mal/mal/printer"
	"github.com/gfreezy/mal/mal/types"
)

// Eval evaluates ast in env, implementing spec §4.E's loop. Special forms
// that evaluate a sub-form outside tail position (def!'s value, the eval
// form's argument, try*'s protected expression) call back into this
// function; fn* closures instead get a Native trampoline wired to it once,
// at construction time, so apply/map/swap! never need to import this
// package.
func Eval(ast types.Value, env *types.Env) (types.Value, error) {
	for {
		list, ok := ast.(*types.List)
		if !ok || len(list.Items) == 0 {
			return evalAst(ast, env)
		}

		expanded, err := macroExpand(ast, env)
		if err != nil {
			return nil, err
		}
		ast = expanded

		list, ok = ast.(*types.List)
		if !ok || len(list.Items) == 0 {
			return evalAst(ast, env)
		}

		sym, headIsSym := list.Items[0].(types.Sym)
		if headIsSym {
			switch sym {
			case "def!":
				return evalDef(list, env)
			case "let*":
				ast, env, err = evalLet(list, env)
				if err != nil {
					return nil, err
				}
				continue
			case "do":
				ast, err = evalDo(list, env)
				if err != nil {
					return nil, err
				}
				continue
			case "if":
				ast, err = evalIf(list, env)
				if err != nil {
					return nil, err
				}
				continue
			case "fn*":
				return evalFnStar(list, env)
			case "quote":
				if len(list.Items)-1 != 1 {
					return nil, arityErr("quote", 1, len(list.Items)-1)
				}
				return list.Items[1], nil
			case "quasiquote":
				if len(list.Items)-1 != 1 {
					return nil, arityErr("quasiquote", 1, len(list.Items)-1)
				}
				ast = qq(list.Items[1])
				continue
			case "defmacro!":
				return evalDefmacro(list, env)
			case "macroexpand":
				if len(list.Items)-1 != 1 {
					return nil, arityErr("macroexpand", 1, len(list.Items)-1)
				}
				return macroExpand(list.Items[1], env)
			case "try*":
				v, nextAst, nextEnv, done, err := evalTry(list, env)
				if err != nil {
					return nil, err
				}
				if done {
					return v, nil
				}
				ast, env = nextAst, nextEnv
				continue
			case "eval":
				if len(list.Items)-1 != 1 {
					return nil, arityErr("eval", 1, len(list.Items)-1)
				}
				v, err := Eval(list.Items[1], env)
				if err != nil {
					return nil, err
				}
				ast = v
				env = env.Root()
				continue
			}
		}

		// Step 4: function application.
		results, err := evalItems(list.Items, env)
		if err != nil {
			return nil, err
		}
		fn, ok := results[0].(*types.Closure)
		if !ok {
			return nil, fmt.Errorf("%s is not a function", printer.PrStr(results[0], true))
		}
		args := results[1:]

		if fn.Capture == nil {
			return fn.Native(args, nil)
		}

		childEnv, err := bindParams(fn.Capture, args)
		if err != nil {
			return nil, err
		}
		ast = fn.Capture.Body
		env = childEnv
	}
}

// evalAst implements spec §4.E step 1: Sym resolves through env, Vec and
// Map have their elements (only, not Map keys) evaluated, everything else
// -- including an empty List -- returns unchanged.
func evalAst(ast types.Value, env *types.Env) (types.Value, error) {
	switch x := ast.(type) {
	case types.Sym:
		v, ok := env.Get(x)
		if !ok {
			return nil, types.NotFoundError(x)
		}
		return v, nil
	case *types.Vec:
		items, err := evalItems(x.Items, env)
		if err != nil {
			return nil, err
		}
		return types.NewVec(items), nil
	case *types.Map:
		entries := make(map[types.MapKey]types.Value, len(x.Entries))
		for k, v := range x.Entries {
			ev, err := Eval(v, env)
			if err != nil {
				return nil, err
			}
			entries[k] = ev
		}
		return types.NewMap(entries), nil
	default:
		return ast, nil
	}
}

func evalItems(items []types.Value, env *types.Env) ([]types.Value, error) {
	out := make([]types.Value, len(items))
	for i, it := range items {
		v, err := Eval(it, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func arityErr(form string, want, got int) error {
	return fmt.Errorf("%s: expected %d argument(s), got %d", form, want, got)
}
