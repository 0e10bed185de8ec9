// Package inspect implements the inspect subcommand: it parses selector
// strings, reports violations and optionally renders the parsed structure.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"csb/selector"
	"csb/state"
	"csb/utils/debug"
)

// Run implements the inspect subcommand.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	if cmd.Args().Len() == 0 {
		return errors.New("no selectors have been specified")
	}
	tree := cmd.Bool("tree")

	var (
		out  strings.Builder
		errs error
	)
	for _, arg := range cmd.Args().Slice() {
		sel, err := selector.Parse(arg)
		if err != nil {
			errs = multierr.Append(errs, err)
			log.Warn("Selector rejected", zap.String("selector", arg), zap.Error(err))
			continue
		}
		if tree {
			out.WriteString(Describe(arg, sel))
		} else {
			fmt.Fprintf(&out, "%s\n", sel.Stringify())
		}
	}
	if errs != nil {
		return errs
	}

	env.Rpt.StoreData("output/inspect.txt", []byte(out.String()))
	_, err := os.Stdout.WriteString(out.String())
	return err
}

// Describe renders the parsed structure of a selector: per-fragment lines
// for a compound, operand and combinator lines for a combined selector.
func Describe(raw string, sel selector.Stringifier) string {
	tw := debug.NewTreeWriter()
	tw.TextBlock(0, "selector", raw)

	switch s := sel.(type) {
	case *selector.Builder:
		for _, f := range s.Fragments() {
			tw.TextBlock(1, f.Category.String(), f.Value)
		}
	case selector.Composite:
		tw.TextBlock(1, "left", s.Left())
		tw.TextBlock(1, "combinator", s.Combinator())
		tw.TextBlock(1, "right", s.Right())
	default:
		tw.TextBlock(1, "text", sel.Stringify())
	}
	return tw.String()
}
