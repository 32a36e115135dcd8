package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/skolemize/go-fol/encode"
)

func folParse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	l, err := cfg.vocabulary()
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if cfg.Term {
		t, err := termArg(l, args)
		if err != nil {
			return err
		}
		if err := encode.EncodeTerm(t, cc.Out, opts...); err != nil {
			return err
		}
	} else {
		f, err := formulaArg(l, args)
		if err != nil {
			return err
		}
		if err := encode.EncodeFormula(f, cc.Out, opts...); err != nil {
			return err
		}
	}
	fmt.Fprintln(cc.Out)
	return nil
}
