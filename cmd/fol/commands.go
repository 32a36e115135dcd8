package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "L",
			Aliases:     []string{"lang"},
			Description: "vocabulary file (yaml)",
			Type:        cli.NamedFuncOpt(cfg.langOpt, "(vocab.yaml)"),
		},
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "fol").
		WithSynopsis("fol -L <vocab.yaml> [opts] command [opts]").
		WithDescription("fol is a tool for working with first order formulas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return folMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			FreeCommand(cfg),
			SubstCommand(cfg),
			WitnessCommand(cfg),
			DiffCommand(cfg),
			AxiomCommand(cfg),
			RuleCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [-t] <symbols...>").
		WithDescription("parse a symbol sequence and re-render it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return folParse(cfg, cc, args)
		})
}

func FreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FreeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Free, "free").
		WithAliases("f").
		WithSynopsis("free <symbols...>").
		WithDescription("report the free variables of a formula").
		WithRun(func(cc *cli.Context, args []string) error {
			return folFree(cfg, cc, args)
		})
}

func SubstCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SubstConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Subst, "subst").
		WithAliases("s").
		WithSynopsis("subst -x <var> -t <term> <symbols...>").
		WithDescription("substitute a term for a variable's free occurrences").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return folSubst(cfg, cc, args)
		})
}

func WitnessCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WitnessConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Witness, "witness").
		WithAliases("w").
		WithSynopsis("witness -x <var> <pattern> <result>").
		WithDescription("find the term whose substitution turns pattern into result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return folWitness(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <formula> <formula>").
		WithDescription("diff two formulas symbol by symbol").
		WithRun(func(cc *cli.Context, args []string) error {
			return folDiff(cfg, cc, args)
		})
}

func AxiomCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AxiomConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Axiom, "axiom").
		WithAliases("a").
		WithSynopsis("axiom <symbols...>").
		WithDescription("report which logical axiom schemas a formula instantiates").
		WithRun(func(cc *cli.Context, args []string) error {
			return folAxiom(cfg, cc, args)
		})
}

func RuleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RuleConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "p",
			Aliases:     []string{"premise"},
			Description: "premise formula, repeatable",
			Type:        cli.NamedFuncOpt(cfg.premiseOpt, "(formula)"),
		},
	}
	return cli.NewCommandAt(&cfg.Rule, "rule").
		WithAliases("r").
		WithSynopsis("rule [-p premise]... <conclusion>").
		WithDescription("report which inference rules derive the conclusion").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return folRule(cfg, cc, args)
		})
}
