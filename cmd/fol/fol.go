package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/skolemize/go-fol/ir"
	"github.com/skolemize/go-fol/lang"
	"github.com/skolemize/go-fol/parse"
)

func folMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// formulaArg parses the remaining command arguments as one formula.
// Symbols may arrive as separate arguments or inside quoted strings.
func formulaArg(l *lang.Language, args []string) (*ir.Formula, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no formula given", cli.ErrUsage)
	}
	return parse.Formula(l, strings.Join(args, " "))
}

func termArg(l *lang.Language, args []string) (*ir.Term, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no term given", cli.ErrUsage)
	}
	return parse.Term(l, strings.Join(args, " "))
}
