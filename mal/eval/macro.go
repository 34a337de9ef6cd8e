package eval

import "github.com/gfreezy/mal/mal/types"

// macroCall reports whether ast is a call to a macro-flagged closure bound
// in env, returning that closure if so (spec §4.E step 2).
func macroCall(ast types.Value, env *types.Env) (*types.Closure, bool) {
	list, ok := ast.(*types.List)
	if !ok || len(list.Items) == 0 {
		return nil, false
	}
	sym, ok := list.Items[0].(types.Sym)
	if !ok {
		return nil, false
	}
	v, ok := env.Get(sym)
	if !ok {
		return nil, false
	}
	c, ok := v.(*types.Closure)
	if !ok || !c.IsMacro {
		return nil, false
	}
	return c, true
}

// macroExpand repeatedly applies step 2 until ast is no longer a macro
// call, the fixed point macroexpand (the special form) exposes directly
// and Eval's main loop performs once per iteration before dispatch.
func macroExpand(ast types.Value, env *types.Env) (types.Value, error) {
	for {
		c, ok := macroCall(ast, env)
		if !ok {
			return ast, nil
		}
		args := ast.(*types.List).Items[1:]
		v, err := c.Native(args, c.Capture)
		if err != nil {
			return nil, err
		}
		ast = v
	}
}
