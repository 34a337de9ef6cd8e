// Package builtins implements the fixed primitive namespace installed into
// the root Env at startup (spec §4.F), plus the small number of bootstrap
// definitions (spec §4.F "Bootstrap definitions") evaluated immediately
// after.
//
// Builtins are registered as a table of name/function pairs rather than as
// one switch statement per call, the way cuelang.org/go's
// internal/pkg.Package.Native registers a package's native functions --
// each entry here is independently testable and the registration loop that
// installs them into an Env is the only place that needs to change if the
// packaging strategy ever does.
package builtins

import (
	"github.com/gfreezy/mal/mal/types"
)

// Builtin pairs a root-Env symbol name with the native function it calls.
type Builtin struct {
	Name string
	Func types.NativeFn
}

// Deps supplies the collaborators a handful of builtins need but that the
// language spec deliberately keeps external (spec §6.2): a line-input
// source for readline, and the process argv tail for *ARGV*. Every other
// builtin talks to the OS directly (os.ReadFile for slurp, time.Now for
// time-ms) the same way cuelang.org/go's own pkg/tool builtins do, since
// the spec does not ask for those to be swappable.
type Deps struct {
	// ReadLine prints prompt and returns the next line with ok=true, or
	// ok=false on EOF/interrupt. If nil, StdinReadLine is used.
	ReadLine func(prompt string) (line string, ok bool)

	// Args becomes *ARGV*, a List of Str (spec §4.F bootstrap item 5,
	// §6.1).
	Args []string

	// HostLanguage becomes *host-language* (spec §4.F bootstrap item 5).
	HostLanguage string
}

// table is built up by the init functions in this package's other files
// (arithmetic.go, sequences.go, ...); each calls register once per name it
// owns.
var table []Builtin

func register(name string, fn types.NativeFn) {
	table = append(table, Builtin{Name: name, Func: fn})
}

// Install populates root with every builtin in the table, then evaluates
// the fixed bootstrap definitions in the order spec §4.F gives them. eval
// is the evaluator's own Eval entry point, used only for the bootstrap
// forms below -- builtins, apply, map, and swap! never need it, since
// every Closure (builtin or user-defined) can be invoked directly through
// its own Native function.
func Install(root *types.Env, deps Deps, eval func(ast types.Value, env *types.Env) (types.Value, error)) error {
	for _, b := range table {
		root.Set(types.Sym(b.Name), types.NewBuiltin(b.Func))
	}

	if deps.ReadLine == nil {
		deps.ReadLine = StdinReadLine
	}
	installReadline(root, deps.ReadLine)

	argv := make([]types.Value, len(deps.Args))
	for i, a := range deps.Args {
		argv[i] = types.Str(a)
	}
	root.Set("*ARGV*", types.NewList(argv))

	host := deps.HostLanguage
	if host == "" {
		host = "go"
	}
	root.Set("*host-language*", types.Str(host))

	return bootstrap(root, eval)
}
