package types

// Equal implements the structural, deep equality rule from spec §3.1:
// collections compare element-wise; List and Vec are sequential-equivalent
// (a List and a Vec with the same contents are equal to each other); Maps
// compare equal if their keysets match and values are pairwise equal;
// Atoms compare by the identity of their cell; Closures are never equal
// except by identity.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Num:
		y, ok := b.(Num)
		return ok && x == y
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case Sym:
		y, ok := b.(Sym)
		return ok && x == y
	case Kw:
		y, ok := b.(Kw)
		return ok && x == y
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x == y
	case *Closure:
		y, ok := b.(*Closure)
		return ok && x == y
	case *Map:
		y, ok := b.(*Map)
		if !ok || len(x.Entries) != len(y.Entries) {
			return false
		}
		for k, v := range x.Entries {
			ov, ok := y.Entries[k]
			if !ok || !Equal(v, ov) {
				return false
			}
		}
		return true
	default:
		// List and Vec fall through here: both are "sequential" and are
		// compared the same way regardless of which of the two each side is.
		aItems, aOK := Items(a)
		bItems, bOK := Items(b)
		if !aOK || !bOK {
			return false
		}
		if len(aItems) != len(bItems) {
			return false
		}
		for i := range aItems {
			if !Equal(aItems[i], bItems[i]) {
				return false
			}
		}
		return true
	}
}

// Meta reads a value's metadata, returning Nil for kinds that don't carry
// any of their own (spec §3.1: only List, Vec, Map, and Closure do).
func Meta(v Value) Value {
	switch x := v.(type) {
	case *List:
		return x.Meta()
	case *Vec:
		return x.Meta()
	case *Map:
		return x.Meta()
	case *Closure:
		return x.Meta()
	default:
		return NilValue
	}
}

// WithMeta returns a copy of v carrying m as metadata, or an error if v's
// kind doesn't carry metadata.
func WithMeta(v, m Value) (Value, error) {
	switch x := v.(type) {
	case *List:
		return x.WithMeta(m), nil
	case *Vec:
		return x.WithMeta(m), nil
	case *Map:
		return x.WithMeta(m), nil
	case *Closure:
		return x.WithMeta(m), nil
	default:
		return nil, typeErrorf("with-meta", v, "list, vector, map, or function")
	}
}
