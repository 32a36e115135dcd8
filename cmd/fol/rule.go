package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/skolemize/go-fol/infer"
	"github.com/skolemize/go-fol/ir"
	"github.com/skolemize/go-fol/parse"
)

var inferenceRules = []struct {
	name string
	is   func([]*ir.Formula, *ir.Formula) (bool, error)
}{
	{"propositional consequence", infer.PropositionalConsequence},
	{"universal quantifier rule", infer.UniversalRule},
	{"existential quantifier rule", infer.ExistentialRule},
}

func folRule(cfg *RuleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rule.Parse(cc, args)
	if err != nil {
		return err
	}
	l, err := cfg.vocabulary()
	if err != nil {
		return err
	}
	theta, err := formulaArg(l, args)
	if err != nil {
		return err
	}
	gamma := make([]*ir.Formula, len(cfg.Premises))
	for i, p := range cfg.Premises {
		if gamma[i], err = parse.Formula(l, p); err != nil {
			return fmt.Errorf("premise %d: %w", i+1, err)
		}
	}
	found := false
	for _, r := range inferenceRules {
		ok, err := r.is(gamma, theta)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(cc.Out, r.name)
			found = true
		}
	}
	if !found {
		fmt.Fprintln(cc.Out, "none")
	}
	return nil
}
