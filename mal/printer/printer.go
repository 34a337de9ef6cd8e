// Package printer serializes a types.Value tree back to mal source text.
package printer

import (
	"strconv"
	"strings"

	"github.com/gfreezy/mal/mal/types"
)

// PrStr renders v as mal source text. In readable mode, Str values are
// wrapped in double quotes with '\\', '\n', '\t', and '"' re-escaped;
// in unreadable mode a Str's raw bytes are emitted as-is. Every other kind
// prints the same way regardless of mode.
func PrStr(v types.Value, readable bool) string {
	var b strings.Builder
	write(&b, v, readable)
	return b.String()
}

// Join renders each of vs with PrStr and joins the results with sep, the
// shape pr-str, str, prn, and println all share (str passes "", the others
// a single space).
func Join(vs []types.Value, readable bool, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = PrStr(v, readable)
	}
	return strings.Join(parts, sep)
}

func write(b *strings.Builder, v types.Value, readable bool) {
	switch x := v.(type) {
	case types.Nil:
		b.WriteString("nil")
	case types.Bool:
		if x {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case types.Num:
		b.WriteString(formatNum(float64(x)))
	case types.Str:
		writeStr(b, string(x), readable)
	case types.Sym:
		b.WriteString(string(x))
	case types.Kw:
		b.WriteString(string(x))
	case *types.List:
		writeSeq(b, "(", x.Items, ")", readable)
	case *types.Vec:
		writeSeq(b, "[", x.Items, "]", readable)
	case *types.Map:
		writeMap(b, x, readable)
	case *types.Atom:
		b.WriteString("(atom ")
		write(b, x.Val, readable)
		b.WriteString(")")
	case *types.Closure:
		b.WriteString("#<function>")
	default:
		b.WriteString("#<unknown>")
	}
}

// formatNum prints the shortest round-trip decimal form of a float64,
// without a decimal point for integral values -- the spec leaves exact
// float formatting as an open question (§9) but pins this much: "3" not
// "3.0" for whole numbers.
func formatNum(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeStr(b *strings.Builder, s string, readable bool) {
	if !readable {
		b.WriteString(s)
		return
	}
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

func writeSeq(b *strings.Builder, open string, items []types.Value, close string, readable bool) {
	b.WriteString(open)
	for i, it := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, it, readable)
	}
	b.WriteString(close)
}

// writeMap prints alternating key/value pairs. Map iteration order is
// unspecified by the spec (§9 open question (b)); Go's randomized map
// iteration is exactly that, so no caller should rely on a fixed order.
func writeMap(b *strings.Builder, m *types.Map, readable bool) {
	b.WriteByte('{')
	first := true
	for k, v := range m.Entries {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		write(b, k.ToValue(), readable)
		b.WriteByte(' ')
		write(b, v, readable)
	}
	b.WriteByte('}')
}
