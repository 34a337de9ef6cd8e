package builtins

import (
	"fmt"
	"os"

	"github.com/gfreezy/mal/mal/printer"
	"github.com/gfreezy/mal/mal/reader"
	"github.com/gfreezy/mal/mal/types"
)

func init() {
	register("pr-str", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		return types.Str(printer.Join(args, true, " ")), nil
	})
	register("str", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		return types.Str(printer.Join(args, false, "")), nil
	})
	register("prn", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		fmt.Println(printer.Join(args, true, " "))
		return types.NilValue, nil
	})
	register("println", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		fmt.Println(printer.Join(args, false, " "))
		return types.NilValue, nil
	})
	register("read-string", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("read-string", args, 1); err != nil {
			return nil, err
		}
		s, err := str("read-string", args[0])
		if err != nil {
			return nil, err
		}
		return reader.ReadStr(string(s))
	})
	register("slurp", func(args []types.Value, _ *types.Capture) (types.Value, error) {
		if err := arity("slurp", args, 1); err != nil {
			return nil, err
		}
		path, err := str("slurp", args[0])
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(string(path))
		if err != nil {
			return nil, err
		}
		return types.Str(content), nil
	})
}
