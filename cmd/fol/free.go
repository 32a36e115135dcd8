package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/skolemize/go-fol/lang"
)

func folFree(cfg *FreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Free.Parse(cc, args)
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
	free := f.FreeVariables()
	if len(free) == 0 {
		fmt.Fprintln(cc.Out, "free: (none)")
	} else {
		vars := make([]string, 0, len(free))
		for v := range free {
			vars = append(vars, v)
		}
		sort.Slice(vars, func(i, j int) bool {
			// Symbols come from a parsed formula, always valid.
			vi, _ := lang.VariableIndex(vars[i])
			vj, _ := lang.VariableIndex(vars[j])
			return vi < vj
		})
		fmt.Fprintf(cc.Out, "free: %s\n", strings.Join(vars, " "))
	}
	fmt.Fprintf(cc.Out, "sentence: %v\n", f.IsSentence())
	return nil
}
