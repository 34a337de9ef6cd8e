package builtins

import (
	"fmt"

	"github.com/gfreezy/mal/mal/reader"
	"github.com/gfreezy/mal/mal/types"
)

// source holds the bootstrap definitions that are simplest to state in mal
// itself rather than as Go closures (spec §4.F "Bootstrap definitions"):
// not, load-file, and the cond/or macros. or needs quasiquote and gensym
// to expand hygienically, which only make sense
// once the reader/eval/gensym machinery already exists, so writing them
// here mirrors how the mal reference implementations bootstrap core.mal
// from within the language itself rather than the host language. The
// whole thing is wrapped in a single (do ...) below so Install only needs
// one read and one eval call.
const source = `
(do
  (def! not (fn* (a) (if a false true)))

  (def! load-file
    (fn* (f)
      (eval (read-string (str "(do " (slurp f) "\nnil)")))))

  (defmacro! cond
    (fn* (& xs)
      (if (> (count xs) 0)
        (list 'if (first xs)
          (if (> (count xs) 1)
            (nth xs 1)
            (throw "odd number of forms to cond"))
          (cons 'cond (rest (rest xs)))))))

  (defmacro! or
    (fn* (& xs)
      (if (empty? xs)
        nil
        (if (= 1 (count xs))
          (first xs)
          (let* (condvar (gensym))
            ` + "`" + `(let* (~condvar ~(first xs))
               (if ~condvar ~condvar (or ~@(rest xs)))))))))

  nil)
`

// bootstrap evaluates source in root. It runs after every native builtin
// has been installed, since cond/or/load-file all call straight through
// to them.
func bootstrap(root *types.Env, eval func(ast types.Value, env *types.Env) (types.Value, error)) error {
	form, err := reader.ReadStr(source)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if _, err := eval(form, root); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	return nil
}
