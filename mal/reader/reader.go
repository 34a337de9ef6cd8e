// Package reader implements stage 2 of the mal reader (spec §4.B): a
// one-token-lookahead parser, modeled on cue/parser's next/tok pattern,
// that consumes mal/scanner's token stream and builds a types.Value tree.
package reader

import (
	"math"
	"strconv"
	"strings"

	"github.com/gfreezy/mal/mal/errors"
	"github.com/gfreezy/mal/mal/scanner"
	"github.com/gfreezy/mal/mal/token"
	"github.com/gfreezy/mal/mal/types"
)

// Parser holds a one-token lookahead over a scanner.Scanner.
type Parser struct {
	sc   scanner.Scanner
	pos  token.Pos
	tok  token.Kind
	lit  string
	errs errors.List
}

// Handlef implements scanner.Handler, collecting scan-time errors (such as
// an unterminated string) so readForm can report them with the reader's
// own error type.
func (p *Parser) Handlef(pos token.Pos, format string, args ...interface{}) {
	p.errs.Add(errors.Newf(pos, format, args...))
}

// ReadStr parses the first form in src and returns it. Trailing input after
// that form is ignored -- exactly one form is read, the same contract
// read-string and load-file's wrapping "(do ...)" rely on.
//
// If src contains no tokens at all, ReadStr returns a plain reader error.
// If src contains only comments (and/or whitespace), it returns the
// errors.CommentOnly sentinel, which the REPL driver swallows without
// printing (spec §4.B, §7).
func ReadStr(src string) (types.Value, error) {
	p := &Parser{}
	p.sc.Init([]byte(src), p)

	sawComment := false
	for {
		pos, tok, lit := p.sc.Scan()
		if tok == token.COMMENT {
			sawComment = true
			continue
		}
		p.pos, p.tok, p.lit = pos, tok, lit
		break
	}

	if p.tok == token.EOF {
		if sawComment {
			return nil, errors.CommentOnly{}
		}
		return nil, errors.Newf(p.pos, "empty input")
	}

	v, err := p.readForm()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// next advances the lookahead token, transparently skipping comments --
// inside a collection (or anywhere past the first token) a comment is
// always just whitespace with opinions (spec §4.B).
func (p *Parser) next() {
	for {
		pos, tok, lit := p.sc.Scan()
		if tok == token.COMMENT {
			continue
		}
		p.pos, p.tok, p.lit = pos, tok, lit
		return
	}
}

func (p *Parser) readForm() (types.Value, error) {
	switch p.tok {
	case token.LPAREN:
		return p.readSeq(token.RPAREN, "')'", func(items []types.Value) types.Value {
			return types.NewList(items)
		})
	case token.LBRACK:
		return p.readSeq(token.RBRACK, "']'", func(items []types.Value) types.Value {
			return types.NewVec(items)
		})
	case token.LBRACE:
		return p.readMap()
	case token.RPAREN:
		return nil, errors.Newf(p.pos, "unexpected ')'")
	case token.RBRACK:
		return nil, errors.Newf(p.pos, "unexpected ']'")
	case token.RBRACE:
		return nil, errors.Newf(p.pos, "unexpected '}'")
	case token.QUOTE:
		return p.readWrap("quote")
	case token.QUASIQUOTE:
		return p.readWrap("quasiquote")
	case token.UNQUOTE:
		return p.readWrap("unquote")
	case token.SPLICE_UNQUOTE:
		return p.readWrap("splice-unquote")
	case token.META:
		return p.readMetaForm()
	case token.DEREF:
		return p.readWrap("deref")
	case token.STRING:
		v, err := decodeString(p.pos, p.lit)
		if err != nil {
			return nil, err
		}
		p.next()
		return v, nil
	case token.ATOM:
		v := atomValue(p.lit)
		p.next()
		return v, nil
	case token.ILLEGAL:
		if len(p.errs) > 0 {
			return nil, errors.Wrapf(p.errs[len(p.errs)-1], p.pos, "malformed token %q", p.lit)
		}
		return nil, errors.Newf(p.pos, "malformed token %q", p.lit)
	case token.EOF:
		return nil, errors.Newf(p.pos, "unexpected EOF")
	default:
		return nil, errors.Newf(p.pos, "unexpected token %v", p.tok)
	}
}

// readSeq reads a ( or [ delimited sequence of forms up to close, reporting
// "expected <closeLit>" if EOF is reached first (spec §4.B).
func (p *Parser) readSeq(close token.Kind, closeLit string, build func([]types.Value) types.Value) (types.Value, error) {
	open := p.pos
	p.next() // consume the opener
	var items []types.Value
	for {
		switch p.tok {
		case token.EOF:
			return nil, errors.Newf(open, "expected %s", closeLit)
		case close:
			p.next()
			return build(items), nil
		}
		v, err := p.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (p *Parser) readMap() (types.Value, error) {
	open := p.pos
	p.next() // consume '{'
	entries := map[types.MapKey]types.Value{}
	for {
		if p.tok == token.EOF {
			return nil, errors.Newf(open, "expected '}'")
		}
		if p.tok == token.RBRACE {
			p.next()
			return types.NewMap(entries), nil
		}
		k, err := p.readForm()
		if err != nil {
			return nil, err
		}
		if p.tok == token.RBRACE || p.tok == token.EOF {
			return nil, errors.Newf(open, "map literal must have an even number of forms")
		}
		v, err := p.readForm()
		if err != nil {
			return nil, err
		}
		mk, ok := types.NewMapKey(k)
		if !ok {
			return nil, errors.Newf(open, "map keys must be strings or keywords")
		}
		entries[mk] = v // duplicate keys overwrite in insertion order
	}
}

// readWrap implements the reader macros that expand to a two-element list:
// 'x -> (quote x), `x -> (quasiquote x), ~x -> (unquote x),
// ~@x -> (splice-unquote x), @x -> (deref x).
func (p *Parser) readWrap(sym string) (types.Value, error) {
	marker := p.pos
	p.next()
	if p.tok == token.EOF {
		return nil, errors.Newf(marker, "expected a form after '%s'", sym)
	}
	v, err := p.readForm()
	if err != nil {
		return nil, err
	}
	return types.NewList([]types.Value{types.Sym(sym), v}), nil
}

// readMetaForm implements ^meta value -> (with-meta value meta): note the
// argument order swap from source order to the with-meta call (spec §4.B).
func (p *Parser) readMetaForm() (types.Value, error) {
	marker := p.pos
	p.next()
	if p.tok == token.EOF {
		return nil, errors.Newf(marker, "expected a form after '^'")
	}
	meta, err := p.readForm()
	if err != nil {
		return nil, err
	}
	if p.tok == token.EOF {
		return nil, errors.Newf(marker, "expected a form after '^'")
	}
	value, err := p.readForm()
	if err != nil {
		return nil, err
	}
	return types.NewList([]types.Value{types.Sym("with-meta"), value, meta}), nil
}

// atomValue classifies a bare atom token: a finite float becomes Num, the
// three reserved words become their Values, a leading ':' becomes a Kw,
// anything else is a Sym (spec §4.B stage 2).
func atomValue(lit string) types.Value {
	if f, err := strconv.ParseFloat(lit, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return types.Num(f)
	}
	switch lit {
	case "nil":
		return types.NilValue
	case "true":
		return types.Bool(true)
	case "false":
		return types.Bool(false)
	}
	if strings.HasPrefix(lit, ":") {
		return types.NewKw(lit)
	}
	return types.Sym(lit)
}

// decodeString strips the surrounding quotes from a scanned string literal
// and decodes \\, \n, \t, \" escapes. Any other \x sequence is left as a
// literal backslash followed by x -- an asymmetry the printer does not
// mirror back (it only re-escapes the four meta-characters), preserving
// bytes a stricter decoder would drop (spec §4.B, §9).
func decodeString(pos token.Pos, lit string) (types.Value, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return nil, errors.Newf(pos, "expected '\"'")
	}
	body := lit[1 : len(lit)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(body) {
			b.WriteByte('\\')
			break
		}
		i++
		switch body[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte('\\')
			b.WriteByte(body[i])
		}
	}
	return types.Str(b.String()), nil
}
