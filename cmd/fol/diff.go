package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/skolemize/go-fol/diff"
	"github.com/skolemize/go-fol/parse"
)

func folDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	l, err := cfg.vocabulary()
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes two formulas", cli.ErrUsage)
	}
	from, err := parse.Formula(l, args[0])
	if err != nil {
		return err
	}
	to, err := parse.Formula(l, args[1])
	if err != nil {
		return err
	}
	edits := diff.Formulas(from, to)
	fmt.Fprintln(cc.Out, diff.Render(edits, cfg.colored(cc.Out)))
	return nil
}
