package eval

import "github.com/gfreezy/mal/mal/types"

// qq implements the quasiquote transform (spec §4.E "Quasiquote
// transform"): it rewrites x into a form built from quote/cons/concat that,
// when evaluated, reconstructs x with ~ and ~@ positions substituted. The
// result is handed back to Eval as the new ast in the same env, which is
// what actually performs the substitution.
func qq(x types.Value) types.Value {
	items, ok := types.Items(x)
	if !ok || len(items) == 0 {
		return quoted(x)
	}

	head, tail := items[0], items[1:]

	if sym, ok := head.(types.Sym); ok && sym == "unquote" {
		if len(tail) == 0 {
			return types.NilValue
		}
		return tail[0]
	}

	if headItems, ok := types.Items(head); ok && len(headItems) > 0 {
		if sym, ok := headItems[0].(types.Sym); ok && sym == "splice-unquote" {
			if len(headItems) < 2 {
				return qq(types.NewVec(append([]types.Value{}, tail...)))
			}
			return wrapList(types.Sym("concat"), headItems[1], qq(types.NewVec(append([]types.Value{}, tail...))))
		}
	}

	return wrapList(types.Sym("cons"), qq(head), qq(types.NewVec(append([]types.Value{}, tail...))))
}

func quoted(x types.Value) types.Value {
	return wrapList(types.Sym("quote"), x)
}

func wrapList(items ...types.Value) types.Value {
	return types.NewList(items)
}
