package types_test

import (
	"testing"

	"github.com/gfreezy/mal/mal/types"
)

func TestEnvLookupWalksParentChain(t *testing.T) {
	root := types.NewRootEnv()
	root.Set("x", types.Num(1))
	child := types.NewEnv(root, nil, nil)
	child.Set("y", types.Num(2))

	if v, ok := child.Get("x"); !ok || v != types.Value(types.Num(1)) {
		t.Fatalf("expected child to see parent's binding for x, got %v, %v", v, ok)
	}
	if _, ok := root.Get("y"); ok {
		t.Fatalf("expected parent not to see child's binding for y")
	}
}

func TestEnvSetIsLocalOnly(t *testing.T) {
	root := types.NewRootEnv()
	child := types.NewEnv(root, nil, nil)
	child.Set("x", types.Num(1))
	if _, ok := root.Get("x"); ok {
		t.Fatalf("expected Set on child not to leak into parent")
	}
}

func TestEnvRootWalksToOutermost(t *testing.T) {
	root := types.NewRootEnv()
	mid := types.NewEnv(root, nil, nil)
	leaf := types.NewEnv(mid, nil, nil)
	if leaf.Root() != root {
		t.Fatalf("expected Root() to return the outermost Env")
	}
}

func TestNewEnvRestBinding(t *testing.T) {
	binds := []types.Sym{"a", "&", "rest"}
	exprs := []types.Value{types.Num(1), types.Num(2), types.Num(3)}
	e := types.NewEnv(nil, binds, exprs)

	a, _ := e.Get("a")
	if a != types.Value(types.Num(1)) {
		t.Fatalf("expected a to bind to 1, got %v", a)
	}
	rest, ok := e.Get("rest")
	if !ok {
		t.Fatalf("expected rest to be bound")
	}
	restList, ok := rest.(*types.List)
	if !ok || len(restList.Items) != 2 {
		t.Fatalf("expected rest to be a 2-element list, got %v", rest)
	}
}

func TestNewEnvRestBindingEmptyTail(t *testing.T) {
	binds := []types.Sym{"a", "&", "rest"}
	exprs := []types.Value{types.Num(1)}
	e := types.NewEnv(nil, binds, exprs)
	rest, ok := e.Get("rest")
	if !ok {
		t.Fatalf("expected rest to be bound even with nothing left over")
	}
	restList, ok := rest.(*types.List)
	if !ok || len(restList.Items) != 0 {
		t.Fatalf("expected rest to be an empty list, got %v", rest)
	}
}

func TestParamNamesValidation(t *testing.T) {
	ok, err := types.ParamNames(types.NewVec([]types.Value{types.Sym("a"), types.Sym("&"), types.Sym("rest")}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ok) != 3 {
		t.Fatalf("expected 3 names, got %d", len(ok))
	}

	if _, err := types.ParamNames(types.NewVec([]types.Value{types.Sym("&")})); err == nil {
		t.Fatalf("expected an error when '&' has no following name")
	}
	if _, err := types.ParamNames(types.NewVec([]types.Value{types.Num(1)})); err == nil {
		t.Fatalf("expected an error when a parameter is not a symbol")
	}
}
