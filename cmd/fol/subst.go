package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/skolemize/go-fol/encode"
	"github.com/skolemize/go-fol/parse"
	"github.com/skolemize/go-fol/subst"
)

func folSubst(cfg *SubstConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Subst.Parse(cc, args)
	if err != nil {
		return err
	}
	l, err := cfg.vocabulary()
	if err != nil {
		return err
	}
	if cfg.Var == "" || cfg.Term == "" {
		return fmt.Errorf("%w: both -x <var> and -t <term> are required", cli.ErrUsage)
	}
	f, err := formulaArg(l, args)
	if err != nil {
		return err
	}
	t, err := parse.Term(l, cfg.Term)
	if err != nil {
		return err
	}
	if !cfg.Force {
		ok, err := subst.OK(f, cfg.Var, t)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%q is not substitutable for %s in %q (-f to force)",
				cfg.Term, cfg.Var, f)
		}
	}
	res, err := subst.Apply(f, cfg.Var, t)
	if err != nil {
		return err
	}
	if err := encode.EncodeFormula(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}
