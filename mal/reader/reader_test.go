package reader_test

import (
	"testing"

	"github.com/gfreezy/mal/mal/errors"
	"github.com/gfreezy/mal/mal/printer"
	"github.com/gfreezy/mal/mal/reader"
	"github.com/gfreezy/mal/mal/types"
)

func read(t *testing.T, src string) types.Value {
	t.Helper()
	v, err := reader.ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q): unexpected error: %v", src, err)
	}
	return v
}

func TestReadAtoms(t *testing.T) {
	if v := read(t, "42"); v != types.Value(types.Num(42)) {
		t.Fatalf("expected Num(42), got %v", v)
	}
	if v := read(t, "-1.5"); v != types.Value(types.Num(-1.5)) {
		t.Fatalf("expected Num(-1.5), got %v", v)
	}
	if v := read(t, "nil"); v != types.NilValue {
		t.Fatalf("expected Nil, got %v", v)
	}
	if v := read(t, "true"); v != types.Value(types.Bool(true)) {
		t.Fatalf("expected true, got %v", v)
	}
	if v := read(t, "abc"); v != types.Value(types.Sym("abc")) {
		t.Fatalf("expected Sym(abc), got %v", v)
	}
	if v := read(t, ":kw"); v != types.Value(types.Kw(":kw")) {
		t.Fatalf("expected Kw(:kw), got %v", v)
	}
}

func TestReadString(t *testing.T) {
	v := read(t, `"a\nb\t\"c\"\\d"`)
	s, ok := v.(types.Str)
	if !ok {
		t.Fatalf("expected Str, got %v", v)
	}
	if string(s) != "a\nb\t\"c\"\\d" {
		t.Fatalf("unexpected decode: %q", string(s))
	}
}

func TestReadStringUnknownEscapeIsLiteral(t *testing.T) {
	v := read(t, `"\x"`)
	s := v.(types.Str)
	if string(s) != `\x` {
		t.Fatalf("expected unknown escape to pass through literally, got %q", string(s))
	}
}

func TestReadList(t *testing.T) {
	v := read(t, "(1 2 3)")
	l, ok := v.(*types.List)
	if !ok || len(l.Items) != 3 {
		t.Fatalf("expected a 3-element list, got %v", v)
	}
}

func TestReadVec(t *testing.T) {
	v := read(t, "[1 2]")
	if _, ok := v.(*types.Vec); !ok {
		t.Fatalf("expected a vector, got %v", v)
	}
}

func TestReadMapEvenForms(t *testing.T) {
	v := read(t, `{:a 1 :b 2}`)
	m, ok := v.(*types.Map)
	if !ok || len(m.Entries) != 2 {
		t.Fatalf("expected a 2-entry map, got %v", v)
	}
}

func TestReadMapOddFormsIsError(t *testing.T) {
	if _, err := reader.ReadStr(`{:a 1 :b}`); err == nil {
		t.Fatalf("expected an error for an odd number of map forms")
	}
}

func TestReadMapDuplicateKeysOverwrite(t *testing.T) {
	v := read(t, `{:a 1 :a 2}`)
	m := v.(*types.Map)
	if len(m.Entries) != 1 {
		t.Fatalf("expected duplicate keys to collapse to one entry")
	}
	got := m.Entries[types.MapKey{Kw: true, S: ":a"}]
	if got != types.Value(types.Num(2)) {
		t.Fatalf("expected the later value to win, got %v", got)
	}
}

func TestReadMacroExpansions(t *testing.T) {
	cases := map[string]string{
		"'x":  "(quote x)",
		"`x":  "(quasiquote x)",
		"~x":  "(unquote x)",
		"~@x": "(splice-unquote x)",
		"@x":  "(deref x)",
	}
	for src, want := range cases {
		got := printer.PrStr(read(t, src), true)
		if got != want {
			t.Fatalf("%s: got %q, want %q", src, got, want)
		}
	}
}

func TestReadMetaSwapsArgumentOrder(t *testing.T) {
	got := printer.PrStr(read(t, "^{:a 1} [1 2]"), true)
	want := "(with-meta [1 2] {:a 1})"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadUnterminatedList(t *testing.T) {
	if _, err := reader.ReadStr("(1 2"); err == nil {
		t.Fatalf("expected an error for an unterminated list")
	}
}

func TestReadCommentOnlyInput(t *testing.T) {
	_, err := reader.ReadStr("; just a comment")
	if err == nil || !errors.IsCommentOnly(err) {
		t.Fatalf("expected a CommentOnly sentinel error, got %v", err)
	}
}

func TestReadEmptyInput(t *testing.T) {
	_, err := reader.ReadStr("")
	if err == nil || errors.IsCommentOnly(err) {
		t.Fatalf("expected a plain reader error for empty input, got %v", err)
	}
}

func TestReadStrIgnoresTrailingInput(t *testing.T) {
	v := read(t, "1 2 3")
	if v != types.Value(types.Num(1)) {
		t.Fatalf("expected only the first form to be read, got %v", v)
	}
}

// Non-finite strconv.ParseFloat results (Inf, NaN) must not become Num
// (spec §4.B: only a finite f64 does); they read as plain symbols.
func TestReadNonFiniteLiteralsAreSymbols(t *testing.T) {
	for _, src := range []string{"Inf", "+Inf", "-Inf", "NaN"} {
		v := read(t, src)
		if _, ok := v.(types.Sym); !ok {
			t.Fatalf("%s: expected Sym, got %T (%v)", src, v, v)
		}
	}
}
