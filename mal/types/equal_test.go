package types_test

import (
	"testing"

	"github.com/gfreezy/mal/mal/types"
)

func TestEqualListVecCrossEquivalence(t *testing.T) {
	l := types.NewList([]types.Value{types.Num(1), types.Num(2), types.Num(3)})
	v := types.NewVec([]types.Value{types.Num(1), types.Num(2), types.Num(3)})
	if !types.Equal(l, v) {
		t.Fatalf("expected list and vector with matching contents to be equal")
	}
	if !types.Equal(v, l) {
		t.Fatalf("expected equality to be symmetric")
	}
}

func TestEqualMapKeysetAndValues(t *testing.T) {
	a := types.NewMap(map[types.MapKey]types.Value{
		{S: "a"}: types.Num(1),
		{S: "b"}: types.Num(2),
	})
	b := types.NewMap(map[types.MapKey]types.Value{
		{S: "b"}: types.Num(2),
		{S: "a"}: types.Num(1),
	})
	if !types.Equal(a, b) {
		t.Fatalf("expected maps with matching entries to be equal regardless of insertion order")
	}

	c := a.Clone()
	c.Entries[types.MapKey{S: "a"}] = types.Num(99)
	if types.Equal(a, c) {
		t.Fatalf("expected maps with differing values to be unequal")
	}
}

func TestEqualAtomsByIdentityOnly(t *testing.T) {
	a1 := types.NewAtom(types.Num(1))
	a2 := types.NewAtom(types.Num(1))
	if types.Equal(a1, a2) {
		t.Fatalf("expected distinct atoms with equal contents to be unequal")
	}
	if !types.Equal(a1, a1) {
		t.Fatalf("expected an atom to equal itself")
	}
}

func TestEqualClosuresNeverEqualExceptByIdentity(t *testing.T) {
	fn := func(args []types.Value, _ *types.Capture) (types.Value, error) { return types.NilValue, nil }
	c1 := types.NewBuiltin(fn)
	c2 := types.NewBuiltin(fn)
	if types.Equal(c1, c2) {
		t.Fatalf("expected distinct closures to be unequal even with the same underlying function")
	}
	if !types.Equal(c1, c1) {
		t.Fatalf("expected a closure to equal itself")
	}
}

func TestWithMetaAndMeta(t *testing.T) {
	l := types.NewList([]types.Value{types.Num(1)})
	if types.Meta(l) != types.NilValue {
		t.Fatalf("expected fresh list to have Nil metadata")
	}
	m, err := types.WithMeta(l, types.Str("tag"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if types.Meta(m) != types.Value(types.Str("tag")) {
		t.Fatalf("expected with-meta to attach metadata")
	}
	if types.Meta(l) != types.NilValue {
		t.Fatalf("expected original list's metadata to be unaffected")
	}
}

func TestWithMetaRejectsNonCarryingKinds(t *testing.T) {
	if _, err := types.WithMeta(types.Num(1), types.Str("x")); err == nil {
		t.Fatalf("expected an error attaching metadata to a number")
	}
}
