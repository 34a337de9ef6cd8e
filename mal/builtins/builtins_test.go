package builtins_test

import (
	"testing"

	"github.com/gfreezy/mal/mal/builtins"
	"github.com/gfreezy/mal/mal/eval"
	"github.com/gfreezy/mal/mal/printer"
	"github.com/gfreezy/mal/mal/reader"
	"github.com/gfreezy/mal/mal/types"
)

func newEnv(t *testing.T, deps builtins.Deps) *types.Env {
	t.Helper()
	root := types.NewRootEnv()
	if err := builtins.Install(root, deps, eval.Eval); err != nil {
		t.Fatalf("Install: %v", err)
	}
	return root
}

func rep(t *testing.T, env *types.Env, src string) string {
	t.Helper()
	form, err := reader.ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q): %v", src, err)
	}
	v, err := eval.Eval(form, env)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return printer.PrStr(v, true)
}

func TestSequenceBuiltins(t *testing.T) {
	env := newEnv(t, builtins.Deps{})
	cases := map[string]string{
		"(list? (list 1 2))":          "true",
		"(list? (vector 1 2))":        "false",
		"(vector? (vector 1 2))":      "true",
		"(empty? (list))":             "true",
		"(empty? nil)":                "true",
		"(count nil)":                 "0",
		"(count (list 1 2 3))":        "3",
		"(sequential? (vector 1 2))":  "true",
		"(sequential? {:a 1})":        "false",
		"(cons 0 (list 1 2))":         "(0 1 2)",
		"(concat (list 1) (list 2))":  "(1 2)",
		"(nth (list 1 2 3) 1)":        "2",
		"(first (list 1 2))":          "1",
		"(first nil)":                 "nil",
		"(rest (list 1 2 3))":         "(2 3)",
		"(rest nil)":                  "()",
		"(map (fn* (x) (* x 2)) (list 1 2 3))": "(2 4 6)",
		"(apply + (list 1 2))":        "3",
		"(apply + 1 (list 2))":        "3",
		"(conj (list 1 2) 3)":         "(3 1 2)",
		"(conj (vector 1 2) 3)":       "[1 2 3]",
		"(seq (list 1 2))":            "(1 2)",
		"(seq (vector 1 2))":          "(1 2)",
		"(seq nil)":                   "nil",
		"(seq \"\")":                  "nil",
	}
	for src, want := range cases {
		if got := rep(t, env, src); got != want {
			t.Errorf("%s: got %s, want %s", src, got, want)
		}
	}
}

func TestMapBuiltins(t *testing.T) {
	env := newEnv(t, builtins.Deps{})
	rep(t, env, "(def! m (hash-map :a 1 :b 2))")
	if got := rep(t, env, "(get m :a)"); got != "1" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(get m :missing)"); got != "nil" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(contains? m :a)"); got != "true" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(count (keys m))"); got != "2" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(get (assoc m :c 3) :c)"); got != "3" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(get (dissoc m :a) :a)"); got != "nil" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(get m :a)"); got != "1" {
		t.Fatalf("expected assoc/dissoc not to mutate the original map, got %s", got)
	}
}

func TestAtomBuiltins(t *testing.T) {
	env := newEnv(t, builtins.Deps{})
	rep(t, env, "(def! a (atom 5))")
	if got := rep(t, env, "(atom? a)"); got != "true" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(deref a)"); got != "5" {
		t.Fatalf("got %s", got)
	}
	rep(t, env, "(reset! a 10)")
	if got := rep(t, env, "(deref a)"); got != "10" {
		t.Fatalf("got %s", got)
	}
}

func TestPredicateBuiltins(t *testing.T) {
	env := newEnv(t, builtins.Deps{})
	cases := map[string]string{
		"(symbol? (quote x))": "true",
		"(keyword? :a)":       "true",
		"(keyword \"a\")":     ":a",
		"(string? \"a\")":     "true",
		"(number? 1)":         "true",
		"(nil? nil)":          "true",
		"(true? true)":        "true",
		"(false? false)":      "true",
		"(fn? (fn* (x) x))":   "true",
	}
	for src, want := range cases {
		if got := rep(t, env, src); got != want {
			t.Errorf("%s: got %s, want %s", src, got, want)
		}
	}
}

func TestPrintingBuiltins(t *testing.T) {
	env := newEnv(t, builtins.Deps{})
	if got := rep(t, env, `(pr-str 1 "two" :three)`); got != `"1 \"two\" :three"` {
		t.Fatalf("got %q", got)
	}
	if got := rep(t, env, `(str 1 "two" :three)`); got != `"1two:three"` {
		t.Fatalf("got %q", got)
	}
	if got := rep(t, env, `(read-string "(1 2 3)")`); got != "(1 2 3)" {
		t.Fatalf("got %q", got)
	}
}

func TestHostLanguageAndARGV(t *testing.T) {
	env := newEnv(t, builtins.Deps{Args: []string{"a", "b"}, HostLanguage: "go"})
	if got := rep(t, env, "*host-language*"); got != `"go"` {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "*ARGV*"); got != `("a" "b")` {
		t.Fatalf("got %s", got)
	}
}

func TestReadlineWiring(t *testing.T) {
	calls := 0
	env := newEnv(t, builtins.Deps{
		ReadLine: func(prompt string) (string, bool) {
			calls++
			if prompt != "> " {
				t.Fatalf("unexpected prompt %q", prompt)
			}
			return "hello", true
		},
	})
	if got := rep(t, env, `(readline "> ")`); got != `"hello"` {
		t.Fatalf("got %s", got)
	}
	if calls != 1 {
		t.Fatalf("expected the injected ReadLine to be called once, got %d", calls)
	}
}

func TestGensymProducesDistinctSymbols(t *testing.T) {
	env := newEnv(t, builtins.Deps{})
	a := rep(t, env, "(gensym)")
	b := rep(t, env, "(gensym)")
	if a == b {
		t.Fatalf("expected two gensym calls to produce distinct symbols, got %s twice", a)
	}
}
