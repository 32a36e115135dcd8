package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/skolemize/go-fol/axioms"
	"github.com/skolemize/go-fol/ir"
)

var axiomSchemas = []struct {
	name string
	is   func(*ir.Formula) bool
}{
	{"reflexivity", axioms.IsReflexivity},
	{"function substitution", axioms.IsFunctionSubstitution},
	{"relation substitution", axioms.IsRelationSubstitution},
	{"universal instantiation", axioms.IsUniversalInstantiation},
	{"existential generalization", axioms.IsExistentialGeneralization},
}

func folAxiom(cfg *AxiomConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Axiom.Parse(cc, args)
	if err != nil {
		return err
	}
	l, err := cfg.vocabulary()
	if err != nil {
		return err
	}
	f, err := formulaArg(l, args)
	if err != nil {
		return err
	}
	found := false
	for _, s := range axiomSchemas {
		if s.is(f) {
			fmt.Fprintln(cc.Out, s.name)
			found = true
		}
	}
	if !found {
		fmt.Fprintln(cc.Out, "none")
	}
	return nil
}
