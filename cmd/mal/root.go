// Command mal is the process entry point (spec §6.1): a REPL when invoked
// with no file, or a batch loader when given one. Argument parsing is
// cobra/pflag, the way cuelang.org/go's cmd/cue wires its own root
// command, even though mal needs exactly one command and no subcommands.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/gfreezy/mal/mal/builtins"
	malerrors "github.com/gfreezy/mal/mal/errors"
	"github.com/gfreezy/mal/mal/eval"
	"github.com/gfreezy/mal/mal/printer"
	"github.com/gfreezy/mal/mal/reader"
	"github.com/gfreezy/mal/mal/types"
)

const historyFile = ".mal-history"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:                   "mal [file] [args...]",
		Short:                 "a small Lisp",
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		Args:                  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runREPL()
			}
			return runFile(args[0], args[1:])
		},
	}
	return root
}

// runFile implements spec §6.1's "With FILE" branch: *ARGV* is bound to
// the remaining arguments, then (load-file "FILE") is evaluated and the
// process exits. Any evaluation error during load is fatal; it is printed
// to stderr before propagating so the non-zero exit status isn't silent
// (SPEC_FULL §8).
func runFile(file string, rest []string) error {
	env := newRootEnv(rest)
	form := types.NewList([]types.Value{types.Sym("load-file"), types.Str(file)})
	_, err := eval.Eval(form, env)
	if err != nil {
		printErr(os.Stderr, err)
	}
	return err
}

// printErr renders err the way an uncaught exception must be shown (spec
// §7): a *types.Thrown carries the original raised Value, which prints in
// its readable form; any other error goes through mal/errors.Print.
func printErr(w io.Writer, err error) {
	if t, ok := types.AsThrown(err); ok {
		fmt.Fprintln(w, printer.PrStr(t.Val, true))
		return
	}
	malerrors.Print(w, err)
}

// runREPL implements spec §6.1's "No FILE" branch: a chzyer/readline-backed
// prompt with `.mal-history` persistence, exiting cleanly on EOF or
// interrupt.
func runREPL() error {
	env := newRootEnv(nil)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "user> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("Mal [go]")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return nil
		}

		form, err := reader.ReadStr(line)
		if err != nil {
			if malerrors.IsCommentOnly(err) {
				continue
			}
			malerrors.Print(os.Stdout, err)
			continue
		}

		v, err := eval.Eval(form, env)
		if err != nil {
			printErr(os.Stdout, err)
			continue
		}
		fmt.Println(printer.PrStr(v, true))
	}
}

// newRootEnv builds the root Env with every builtin and bootstrap
// definition installed, wiring argvRest in as *ARGV* (spec §4.F bootstrap
// item 5).
func newRootEnv(argvRest []string) *types.Env {
	root := types.NewRootEnv()
	deps := builtins.Deps{
		Args:         argvRest,
		HostLanguage: "go",
	}
	if err := builtins.Install(root, deps, eval.Eval); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return root
}
