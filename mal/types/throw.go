package types

import "fmt"

// Thrown wraps a value passed to (throw expr) so that try*/catch* can
// recover the original Value rather than a formatted message. Error()
// gives a plain fallback for contexts that never unwrap it back to a
// Value (e.g. code that formats the error directly); an uncaught throw at
// the top level is rendered from the Value itself by cmd/mal's printErr.
type Thrown struct {
	Val Value
}

func (t *Thrown) Error() string {
	return fmt.Sprintf("uncaught exception: %v", t.Val)
}

// AsThrown reports whether err itself is a *Thrown. It does not unwrap:
// a Thrown wrapped inside another error is not found. The evaluator
// passes a Thrown up unwrapped.
func AsThrown(err error) (*Thrown, bool) {
	t, ok := err.(*Thrown)
	return t, ok
}
