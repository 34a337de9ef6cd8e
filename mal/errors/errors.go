// Package errors defines the positioned error type the mal reader produces,
// the CommentOnly sentinel, and Print.
//
// Reader errors implement Error. Evaluation errors are plain Go errors and
// user exceptions raised by throw are *types.Thrown; neither implements
// Error. Print renders any error by its Error() string; cmd/mal renders a
// Thrown separately, from its Value.
package errors

import (
	"errors"
	"fmt"
	"io"

	"github.com/gfreezy/mal/mal/token"
)

// Message is a printf-style error message whose formatting is deferred,
// allowing the same message to be rendered more than once.
type Message struct {
	format string
	args   []interface{}
}

// NewMessagef builds a deferred, printf-style message.
func NewMessagef(format string, args ...interface{}) Message {
	return Message{format: format, args: args}
}

// Msg returns the format string and arguments for human consumption.
func (m *Message) Msg() (string, []interface{}) { return m.format, m.args }

func (m *Message) Error() string { return fmt.Sprintf(m.format, m.args...) }

// Error is the common interface implemented by every error mal produces
// during reading and evaluation.
type Error interface {
	error

	// Position returns where in the source the error occurred, or
	// token.NoPos if the error has no useful position (most evaluation
	// errors, which are raised deep inside a tree walk with no token
	// stream to point into).
	Position() token.Pos

	// Msg returns the unformatted message and its arguments.
	Msg() (format string, args []interface{})
}

var _ Error = &posError{}

type posError struct {
	pos token.Pos
	Message
}

func (e *posError) Position() token.Pos { return e.pos }

// Newf creates an Error at the given position.
func Newf(pos token.Pos, format string, args ...interface{}) Error {
	return &posError{pos: pos, Message: NewMessagef(format, args...)}
}

// Wrapf creates an Error at the given position that also reports child
// for additional context, the way a reader error wraps the underlying
// malformed-token description.
func Wrapf(child error, pos token.Pos, format string, args ...interface{}) Error {
	parent := &posError{pos: pos, Message: NewMessagef(format, args...)}
	if child == nil {
		return parent
	}
	return &wrapped{parent, child}
}

type wrapped struct {
	main Error
	wrap error
}

func (e *wrapped) Error() string {
	msg := e.main.Error()
	if e.wrap == nil {
		return msg
	}
	if msg == "" {
		return e.wrap.Error()
	}
	return fmt.Sprintf("%s: %s", msg, e.wrap)
}

func (e *wrapped) Msg() (string, []interface{}) { return e.main.Msg() }
func (e *wrapped) Position() token.Pos          { return e.main.Position() }
func (e *wrapped) Unwrap() error                { return e.wrap }

// List is a list of Errors, itself an Error, reported as one error per line
// by Print. The reader collects scan-time errors in one; CommentOnly is a
// separate type and does not use it.
type List []Error

func (p List) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", p[0], len(p)-1)
	}
}

func (p List) Msg() (string, []interface{}) {
	if len(p) == 0 {
		return "no errors", nil
	}
	return p[0].Msg()
}

func (p List) Position() token.Pos {
	if len(p) == 0 {
		return token.NoPos
	}
	return p[0].Position()
}

// Add appends err to the list, flattening nested Lists.
func (p *List) Add(err Error) {
	if l, ok := err.(List); ok {
		*p = append(*p, l...)
		return
	}
	*p = append(*p, err)
}

// Print writes one line per error in err to w. If err is not an Error or
// List, it is printed via its plain Error() string.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var l List
	if errors.As(err, &l) {
		for _, e := range l {
			fmt.Fprintln(w, e.Error())
		}
		return
	}
	var e Error
	if errors.As(err, &e) {
		fmt.Fprintln(w, e.Error())
		return
	}
	fmt.Fprintln(w, err.Error())
}

// CommentOnly is the soft error (spec §4.B, §7) produced when an input
// contains only comments and/or whitespace. The REPL driver treats it
// differently from every other Error: it suppresses it instead of printing
// it, and loops back to the prompt.
type CommentOnly struct{}

func (CommentOnly) Error() string                 { return "comment" }
func (CommentOnly) Position() token.Pos           { return token.NoPos }
func (CommentOnly) Msg() (string, []interface{})  { return "comment", nil }

// IsCommentOnly reports whether err is the CommentOnly sentinel.
func IsCommentOnly(err error) bool {
	_, ok := err.(CommentOnly)
	return ok
}
