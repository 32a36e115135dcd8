package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/skolemize/go-fol/encode"
	"github.com/skolemize/go-fol/lang"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Vocab     *lang.Language
	VocabPath string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) langOpt(cc *cli.Context, a string) (any, error) {
	l, err := lang.LoadFile(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.VocabPath = a
	cfg.Vocab = l
	return nil, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// vocabulary returns the loaded language, erring when -L was not given.
func (cfg *MainConfig) vocabulary() (*lang.Language, error) {
	if cfg.Vocab == nil {
		return nil, fmt.Errorf("%w: no vocabulary, pass -L <vocab.yaml>", cli.ErrUsage)
	}
	return cfg.Vocab, nil
}

// colored reports whether output to w should carry colors: forced by
// -color, otherwise on when w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.colored(w) {
		return []encode.EncodeOption{encode.WithColors(encode.NewColors())}
	}
	return nil
}

type ParseConfig struct {
	*MainConfig
	Term bool `cli:"name=t aliases=term desc='input is a term, not a formula'"`

	Parse *cli.Command
}

type FreeConfig struct {
	*MainConfig

	Free *cli.Command
}

type SubstConfig struct {
	*MainConfig
	Var   string `cli:"name=x desc='variable symbol to replace'"`
	Term  string `cli:"name=t desc='replacement term'"`
	Force bool   `cli:"name=f desc='substitute even when capture would occur'"`

	Subst *cli.Command
}

type WitnessConfig struct {
	*MainConfig
	Var string `cli:"name=x desc='variable symbol of the pattern'"`

	Witness *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type AxiomConfig struct {
	*MainConfig

	Axiom *cli.Command
}

type RuleConfig struct {
	*MainConfig
	Premises []string

	Rule *cli.Command
}

func (cfg *RuleConfig) premiseOpt(cc *cli.Context, a string) (any, error) {
	cfg.Premises = append(cfg.Premises, a)
	return nil, nil
}
