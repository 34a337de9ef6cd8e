package printer_test

import (
	"testing"

	"github.com/gfreezy/mal/mal/printer"
	"github.com/gfreezy/mal/mal/reader"
	"github.com/gfreezy/mal/mal/types"
)

func TestPrStrReadableStrings(t *testing.T) {
	got := printer.PrStr(types.Str("a\nb\t\"c\"\\d"), true)
	want := `"a\nb\t\"c\"\\d"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrStrUnreadableStringsAreRaw(t *testing.T) {
	got := printer.PrStr(types.Str("a\nb"), false)
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrStrNumFormatting(t *testing.T) {
	if got := printer.PrStr(types.Num(3), true); got != "3" {
		t.Fatalf("expected integral float to print without a decimal point, got %q", got)
	}
	if got := printer.PrStr(types.Num(3.5), true); got != "3.5" {
		t.Fatalf("got %q", got)
	}
}

func TestPrStrCollections(t *testing.T) {
	l := types.NewList([]types.Value{types.Num(1), types.Sym("a"), types.Kw(":b")})
	if got := printer.PrStr(l, true); got != "(1 a :b)" {
		t.Fatalf("got %q", got)
	}
	v := types.NewVec([]types.Value{types.Num(1), types.Num(2)})
	if got := printer.PrStr(v, true); got != "[1 2]" {
		t.Fatalf("got %q", got)
	}
}

func TestPrStrAtomAndClosure(t *testing.T) {
	a := types.NewAtom(types.Num(1))
	if got := printer.PrStr(a, true); got != "(atom 1)" {
		t.Fatalf("got %q", got)
	}
	c := types.NewBuiltin(func(args []types.Value, _ *types.Capture) (types.Value, error) { return types.NilValue, nil })
	if got := printer.PrStr(c, true); got != "#<function>" {
		t.Fatalf("got %q", got)
	}
}

// Reader/Printer round-trip (spec §8.1): for every readable Value v,
// read_str(pr_str(v, true)) is structurally equal to v.
func TestRoundTrip(t *testing.T) {
	cases := []string{
		`42`,
		`-3.5`,
		`nil`,
		`true`,
		`false`,
		`"a\nb\t\"c\"\\d"`,
		`sym`,
		`:kw`,
		`(1 2 (3 4) [5 6])`,
		`[1 "two" :three nil]`,
		`{:a 1 :b [2 3]}`,
	}
	for _, src := range cases {
		v, err := reader.ReadStr(src)
		if err != nil {
			t.Fatalf("ReadStr(%q): %v", src, err)
		}
		again, err := reader.ReadStr(printer.PrStr(v, true))
		if err != nil {
			t.Fatalf("ReadStr(PrStr(%q)): %v", src, err)
		}
		if !types.Equal(v, again) {
			t.Fatalf("round-trip mismatch for %q: %v != %v", src, v, again)
		}
	}
}
