package types

import "fmt"

// typeErrorf renders the "coercion from the wrong variant" error every
// Value accessor raises when called on a value of the wrong Kind.
func typeErrorf(op string, got Value, want string) error {
	return fmt.Errorf("%s: expected %s, got %s", op, want, got.Kind())
}

// AsNum coerces v to Num, erroring on any other kind.
func AsNum(v Value) (Num, error) {
	n, ok := v.(Num)
	if !ok {
		return 0, typeErrorf("number", v, "number")
	}
	return n, nil
}

// AsStr coerces v to Str, erroring on any other kind.
func AsStr(v Value) (Str, error) {
	s, ok := v.(Str)
	if !ok {
		return "", typeErrorf("string", v, "string")
	}
	return s, nil
}

// AsSym coerces v to Sym, erroring on any other kind.
func AsSym(v Value) (Sym, error) {
	s, ok := v.(Sym)
	if !ok {
		return "", typeErrorf("symbol", v, "symbol")
	}
	return s, nil
}

// AsClosure coerces v to *Closure, erroring on any other kind.
func AsClosure(v Value) (*Closure, error) {
	c, ok := v.(*Closure)
	if !ok {
		return nil, typeErrorf("function", v, "function")
	}
	return c, nil
}

// AsAtom coerces v to *Atom, erroring on any other kind.
func AsAtom(v Value) (*Atom, error) {
	a, ok := v.(*Atom)
	if !ok {
		return nil, typeErrorf("atom", v, "atom")
	}
	return a, nil
}

// AsMap coerces v to *Map, erroring on any other kind.
func AsMap(v Value) (*Map, error) {
	m, ok := v.(*Map)
	if !ok {
		return nil, typeErrorf("map", v, "map")
	}
	return m, nil
}
