package subst

import (
	"fmt"

	"github.com/skolemize/go-fol/ir"
	"github.com/skolemize/go-fol/lang"
)

func checkArgs(treeLang *lang.Language, x string, t *ir.Term) error {
	if !lang.IsVariableSymbol(x) {
		return fmt.Errorf("%w: not a variable symbol: %q", ir.ErrConstruct, x)
	}
	if t == nil || t.Lang != treeLang {
		return fmt.Errorf("%w: term is not of the tree's language", ir.ErrConstruct)
	}
	return nil
}

// ApplyTerm returns u with every occurrence of variable x replaced by
// t. Every variable occurrence in a term is free.
func ApplyTerm(u *ir.Term, x string, t *ir.Term) (*ir.Term, error) {
	if err := checkArgs(u.Lang, x, t); err != nil {
		return nil, err
	}
	return applyTerm(u, x, t), nil
}

func applyTerm(u *ir.Term, x string, t *ir.Term) *ir.Term {
	switch u.Kind {
	case ir.Variable:
		if u.Sym == x {
			return t
		}
		return u
	case ir.Constant:
		return u
	case ir.FuncApp:
		args := make([]*ir.Term, len(u.Args))
		for i, arg := range u.Args {
			args[i] = applyTerm(arg, x, t)
		}
		return &ir.Term{Kind: ir.FuncApp, Sym: u.Sym, Args: args, Lang: u.Lang}
	}
	return u
}

// Apply returns f with every free occurrence of variable x replaced by
// t. The inputs are never mutated.
func Apply(f *ir.Formula, x string, t *ir.Term) (*ir.Formula, error) {
	if err := checkArgs(f.Lang, x, t); err != nil {
		return nil, err
	}
	return apply(f, x, t), nil
}

func apply(f *ir.Formula, x string, t *ir.Term) *ir.Formula {
	switch f.Kind {
	case ir.Equality, ir.Relation:
		args := make([]*ir.Term, len(f.Args))
		for i, arg := range f.Args {
			args[i] = applyTerm(arg, x, t)
		}
		return &ir.Formula{Kind: f.Kind, Sym: f.Sym, Args: args, Lang: f.Lang}
	case ir.Negation:
		return &ir.Formula{Kind: ir.Negation, Left: apply(f.Left, x, t), Lang: f.Lang}
	case ir.Disjunction:
		return &ir.Formula{
			Kind: ir.Disjunction,
			Left: apply(f.Left, x, t), Right: apply(f.Right, x, t),
			Lang: f.Lang,
		}
	case ir.Quantified:
		// The quantifier's own variable shadows x.
		if f.Sym == x {
			return f
		}
		return &ir.Formula{
			Kind: ir.Quantified, Sym: f.Sym,
			Left: apply(f.Left, x, t),
			Lang: f.Lang,
		}
	}
	return f
}
