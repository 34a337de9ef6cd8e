package builtins

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gfreezy/mal/mal/types"
)

// installReadline registers the "readline" builtin against readLine, the
// line-input source Install was given (StdinReadLine when Deps.ReadLine is
// nil, which is how cmd/mal installs it; tests may inject their own).
func installReadline(root *types.Env, readLine func(prompt string) (string, bool)) {
	root.Set("readline", types.NewBuiltin(func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("readline", args, 1); err != nil {
			return nil, err
		}
		prompt, err := str("readline", args[0])
		if err != nil {
			return nil, err
		}
		line, ok := readLine(string(prompt))
		if !ok {
			return types.NilValue, nil
		}
		return types.Str(line), nil
	}))
}

var stdin = bufio.NewReader(os.Stdin)

// StdinReadLine is the default Deps.ReadLine: it prints prompt to stdout
// and reads one line from stdin, the same fallback a non-interactive
// invocation (piped input, tests) needs when no readline library is
// attached.
func StdinReadLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimNewline(line), true
		}
		return "", false
	}
	return trimNewline(line), true
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
