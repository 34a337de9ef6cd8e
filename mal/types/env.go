package types

import "fmt"

// Env is a node in the lexical-scope tree shared by closures (spec §3.3).
// Lookup walks the parent chain; definition (Set) only ever writes to the
// receiving node's own table. Envs form a tree whose root is created once at
// startup and survives for the session; child Envs come and go with
// let*, function application, and try*/catch* bindings.
//
// Go's garbage collector reclaims the Env<->Closure reference cycles the
// spec warns about (§3.3, §9) on its own: once no live frame and no
// surviving closure reaches an Env, the collector frees the whole cycle.
// There is nothing here to break by hand.
type Env struct {
	vars   map[Sym]Value
	parent *Env
}

// NewEnv builds a new Env. Binds pairs positionally with exprs; if binds
// contains the symbol "&", the name immediately following it is bound to a
// List of every remaining expr (which may be empty). NewEnv trusts its
// caller -- shape mismatches (too few exprs, or no "&" but wrong arity) are
// the evaluator's responsibility to detect and report, not NewEnv's (spec
// §4.D).
func NewEnv(parent *Env, binds []Sym, exprs []Value) *Env {
	e := &Env{vars: make(map[Sym]Value, len(binds)), parent: parent}
	for i := 0; i < len(binds); i++ {
		if binds[i] == "&" {
			var tail []Value
			if i < len(exprs) {
				tail = append([]Value(nil), exprs[i:]...)
			}
			e.vars[binds[i+1]] = NewList(tail)
			return e
		}
		var v Value = NilValue
		if i < len(exprs) {
			v = exprs[i]
		}
		e.vars[binds[i]] = v
	}
	return e
}

// NewRootEnv creates an Env with no parent, the session root.
func NewRootEnv() *Env { return NewEnv(nil, nil, nil) }

// Set binds name to value in e's own table only.
func (e *Env) Set(name Sym, value Value) {
	e.vars[name] = value
}

// Get walks the parent chain looking for name, returning ok=false if no
// Env in the chain binds it.
func (e *Env) Get(name Sym) (Value, bool) {
	for n := e; n != nil; n = n.parent {
		if v, ok := n.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Root walks to the outermost Env reachable from e.
func (e *Env) Root() *Env {
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// NotFoundError renders the "'X' not found" message the evaluator raises
// when eval_ast resolves an unbound symbol (spec §4.E step 1).
func NotFoundError(name Sym) error {
	return fmt.Errorf("'%s' not found", name)
}

// ParamNames splits a parameter form (a List or Vec of Sym, optionally
// containing a single "&" followed by one rest-binder) into the binds
// slice NewEnv expects, validating the shape fn* and defmacro! require.
func ParamNames(params Value) ([]Sym, error) {
	items, ok := Items(params)
	if !ok {
		return nil, fmt.Errorf("fn* parameter list must be a list or vector")
	}
	names := make([]Sym, 0, len(items))
	ampSeen := false
	for i, it := range items {
		sym, ok := it.(Sym)
		if !ok {
			return nil, fmt.Errorf("fn* parameters must be symbols")
		}
		if sym == "&" {
			if ampSeen {
				return nil, fmt.Errorf("fn* parameter list may contain only one '&'")
			}
			if i != len(items)-2 {
				return nil, fmt.Errorf("'&' must be followed by exactly one name")
			}
			ampSeen = true
		}
		names = append(names, sym)
	}
	return names, nil
}
