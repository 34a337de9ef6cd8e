// Package types defines the Value tree that every other mal package
// consumes: the reader builds it, the printer serializes it, the evaluator
// walks it, and the environment binds symbols to it.
//
// Environment lives in this package too, alongside Value, rather than in a
// package of its own. A Closure's capture holds a *Env, and an Env's
// bindings hold Values (including Closures) -- keeping them apart would
// just be an import cycle wearing a trench coat. cuelang.org/go's
// internal/core/adt package makes the same call, folding its Environment
// and Vertex (value) types together for the same reason.
package types

import "strings"

// Value is implemented by every runtime form. Nil, Bool, Num, Str, Sym, and
// Kw are plain Go value types -- copying one is already O(1) because there
// is nothing behind a pointer to deep-copy. List, Vec, Map, Atom, and
// Closure are pointers to small structs; copying the pointer is O(1) and
// the payload (a slice header, a map header, or a mutable cell) is only
// ever replaced, never walked, by a copy.
type Value interface {
	Kind() Kind
	// mal is a marker method: only types declared in this package may
	// implement Value. It keeps the variant set closed the way a Rust
	// enum or a sealed interface would.
	mal()
}

// Kind identifies which Value variant a value holds.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNum
	KindStr
	KindSym
	KindKw
	KindList
	KindVec
	KindMap
	KindAtom
	KindClosure
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNum:
		return "number"
	case KindStr:
		return "string"
	case KindSym:
		return "symbol"
	case KindKw:
		return "keyword"
	case KindList:
		return "list"
	case KindVec:
		return "vector"
	case KindMap:
		return "map"
	case KindAtom:
		return "atom"
	case KindClosure:
		return "function"
	default:
		return "?"
	}
}

// Nil is the sole nil value.
type Nil struct{}

func (Nil) Kind() Kind { return KindNil }
func (Nil) mal()       {}

// NilValue is the (only) Nil instance; Nil carries no state so there is no
// reason to allocate more than one.
var NilValue Value = Nil{}

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) mal()       {}

// Num is mal's only numeric type: a 64-bit float. The spec explicitly rules
// out a numeric tower.
type Num float64

func (Num) Kind() Kind { return KindNum }
func (Num) mal()       {}

// Str is a UTF-8 string with escapes already decoded.
type Str string

func (Str) Kind() Kind { return KindStr }
func (Str) mal()       {}

// Sym is an identifier looked up in an Env.
type Sym string

func (Sym) Kind() Kind { return KindSym }
func (Sym) mal()       {}

// Kw is a keyword. Its stored form includes the leading ':' -- the reader
// captures that character as part of the token and nothing downstream ever
// needs to strip and reattach it.
type Kw string

func (Kw) Kind() Kind { return KindKw }
func (Kw) mal()       {}

// NewKw builds a Kw from a name, adding the leading ':' if the caller didn't
// already include one (the keyword builtin passes bare names; the reader
// passes the already-colon-prefixed token).
func NewKw(name string) Kw {
	if strings.HasPrefix(name, ":") {
		return Kw(name)
	}
	return Kw(":" + name)
}

// List is an ordered, finite sequence. list? is true for List and false for
// Vec -- the two are "sequential" (interchangeable for most sequence
// builtins and for equality) but not the same kind.
type List struct {
	Items []Value
	meta  Value
}

func NewList(items []Value) *List { return &List{Items: items} }

func (*List) Kind() Kind { return KindList }
func (*List) mal()       {}

func (l *List) Meta() Value {
	if l.meta == nil {
		return NilValue
	}
	return l.meta
}

// WithMeta returns a new List sharing l's items but carrying m as metadata.
func (l *List) WithMeta(m Value) *List {
	n := *l
	n.meta = m
	return &n
}

// Vec is an ordered, finite sequence, like List, but is never a "call"
// when it appears as the head form of evaluation and list? is false for it.
type Vec struct {
	Items []Value
	meta  Value
}

func NewVec(items []Value) *Vec { return &Vec{Items: items} }

func (*Vec) Kind() Kind { return KindVec }
func (*Vec) mal()       {}

func (v *Vec) Meta() Value {
	if v.meta == nil {
		return NilValue
	}
	return v.meta
}

func (v *Vec) WithMeta(m Value) *Vec {
	n := *v
	n.meta = m
	return &n
}

// MapKey is either a Str or a Kw -- the only two Value kinds the language
// permits as map keys. It is a plain comparable struct so it can be used
// directly as a Go map key without a separate hashing step.
type MapKey struct {
	Kw bool
	S  string
}

// ToValue converts a MapKey back to the Value it was built from.
func (k MapKey) ToValue() Value {
	if k.Kw {
		return Kw(k.S)
	}
	return Str(k.S)
}

// NewMapKey converts v to a MapKey, reporting ok=false if v isn't a valid
// map key (anything other than Str or Kw).
func NewMapKey(v Value) (MapKey, bool) {
	switch x := v.(type) {
	case Str:
		return MapKey{S: string(x)}, true
	case Kw:
		return MapKey{Kw: true, S: string(x)}, true
	default:
		return MapKey{}, false
	}
}

// Map is an unordered mapping from MapKey to Value.
type Map struct {
	Entries map[MapKey]Value
	meta    Value
}

func NewMap(entries map[MapKey]Value) *Map {
	if entries == nil {
		entries = map[MapKey]Value{}
	}
	return &Map{Entries: entries}
}

func (*Map) Kind() Kind { return KindMap }
func (*Map) mal()       {}

func (m *Map) Meta() Value {
	if m.meta == nil {
		return NilValue
	}
	return m.meta
}

func (m *Map) WithMeta(meta Value) *Map {
	n := *m
	n.meta = meta
	return &n
}

// Clone returns a Map with a freshly allocated (shallow-copied) Entries
// table, used by assoc/dissoc so the original map is never mutated.
func (m *Map) Clone() *Map {
	entries := make(map[MapKey]Value, len(m.Entries)+1)
	for k, v := range m.Entries {
		entries[k] = v
	}
	return &Map{Entries: entries, meta: m.meta}
}

// Atom is a mutable single-slot cell, shared by reference. Unlike the
// collection kinds, metadata is not carried on Atom (spec §3.1) and
// equality is by cell identity, not contents.
type Atom struct {
	Val Value
}

func NewAtom(v Value) *Atom { return &Atom{Val: v} }

func (*Atom) Kind() Kind { return KindAtom }
func (*Atom) mal()       {}

// NativeFn is the signature every Closure's callable wraps: a sequence of
// already-evaluated arguments (and, for user-defined functions, the
// Capture that produced them), returning a Value or an error.
type NativeFn func(args []Value, capture *Capture) (Value, error)

// Capture is present on Closures built by fn*; it is what makes them
// tail-call eligible and holds what the evaluator needs to expand the call
// in place: the parameter form, the body form, and the environment that was
// active when fn* ran.
type Capture struct {
	Params Value // List or Vec of Sym, optionally containing '&' and a rest-binder
	Body   Value
	Env    *Env
}

// Closure is mal's only callable kind. Builtins wrap a NativeFn with no
// Capture and are never macro-eligible or tail-call-eligible; user
// functions (fn*) carry a Capture and may be flagged as macros by
// defmacro!.
type Closure struct {
	Native  NativeFn
	Capture *Capture
	IsMacro bool
	meta    Value
}

// NewBuiltin wraps a native Go function as a (non-capturing) Closure.
func NewBuiltin(fn NativeFn) *Closure {
	return &Closure{Native: fn}
}

// NewFn wraps a captured fn* as a closure. Its Native trampoline exists so
// that apply, map, and swap! (which all invoke a Closure uniformly as a
// NativeFn) can call a user function without duplicating the evaluator's
// tree-walking loop; it runs the capture's body to completion rather than
// participating in the trampoline's own TCO, since only the single
// top-level evaluator loop gets that benefit (spec §4.E).
func NewFn(capture *Capture, apply NativeFn) *Closure {
	return &Closure{Native: apply, Capture: capture}
}

func (*Closure) Kind() Kind { return KindClosure }
func (*Closure) mal()       {}

func (c *Closure) Meta() Value {
	if c.meta == nil {
		return NilValue
	}
	return c.meta
}

func (c *Closure) WithMeta(m Value) *Closure {
	n := *c
	n.meta = m
	return &n
}

// IsTruthy implements mal's truthiness rule: only Nil and Bool(false) are
// falsy, everything else -- including 0, "", and empty collections -- is
// truthy.
func IsTruthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(x)
	default:
		return true
	}
}

// Items returns the elements of a List or Vec, and reports ok=false for
// any other kind (the "sequential" view used by most sequence builtins).
func Items(v Value) ([]Value, bool) {
	switch x := v.(type) {
	case *List:
		return x.Items, true
	case *Vec:
		return x.Items, true
	default:
		return nil, false
	}
}

// IsSequential reports whether v is a List or a Vec.
func IsSequential(v Value) bool {
	switch v.(type) {
	case *List, *Vec:
		return true
	default:
		return false
	}
}
