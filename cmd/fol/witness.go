package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/skolemize/go-fol/encode"
	"github.com/skolemize/go-fol/parse"
	"github.com/skolemize/go-fol/subst"
)

func folWitness(cfg *WitnessConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Witness.Parse(cc, args)
	if err != nil {
		return err
	}
	l, err := cfg.vocabulary()
	if err != nil {
		return err
	}
	if cfg.Var == "" {
		return fmt.Errorf("%w: -x <var> is required", cli.ErrUsage)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: witness takes a pattern and a result formula", cli.ErrUsage)
	}
	pattern, err := parse.Formula(l, args[0])
	if err != nil {
		return err
	}
	result, err := parse.Formula(l, args[1])
	if err != nil {
		return err
	}
	w, err := subst.FindTerm(pattern, result, cfg.Var)
	if err != nil {
		return err
	}
	if !w.Constrained {
		fmt.Fprintln(cc.Out, "any term")
		return nil
	}
	if err := encode.EncodeTerm(w.Term, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}
