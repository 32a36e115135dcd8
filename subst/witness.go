package subst

import (
	"fmt"

	"github.com/skolemize/go-fol/ir"
	"github.com/skolemize/go-fol/lang"
)

// Witness is the explicit three-way outcome of FindTerm (the error
// case aside): either the unique substituted term, or "unconstrained",
// meaning the variable has no free occurrence at any compared position
// and every term satisfies the claimed substitution.
type Witness struct {
	// Term is the recovered term; nil iff the witness is unconstrained.
	Term *ir.Term
	// Constrained distinguishes a concrete witness from the
	// anything-goes case.
	Constrained bool
}

// Unconstrained is the Witness carrying no constraint.
var Unconstrained = Witness{}

func witnessOf(t *ir.Term) Witness {
	return Witness{Term: t, Constrained: true}
}

// merge combines the witnesses of two sibling positions. Two
// constrained witnesses must agree by structural equality.
func merge(a, b Witness) (Witness, error) {
	if !a.Constrained {
		return b, nil
	}
	if !b.Constrained {
		return a, nil
	}
	if a.Term.Equal(b.Term) {
		return a, nil
	}
	return Witness{}, fmt.Errorf("%w: occurrences demand %q and %q",
		ErrUnsatisfiable, a.Term, b.Term)
}

// FindTermInTerm recovers the term s such that result equals pattern
// with s substituted for x, if s is uniquely determined.
func FindTermInTerm(pattern, result *ir.Term, x string) (Witness, error) {
	if !lang.IsVariableSymbol(x) {
		return Witness{}, fmt.Errorf("%w: not a variable symbol: %q", ir.ErrConstruct, x)
	}
	if result == nil || result.Lang != pattern.Lang {
		return Witness{}, fmt.Errorf("%w: result is not a term of the pattern's language",
			ir.ErrConstruct)
	}
	return findInTerm(pattern, result, x)
}

func findInTerm(pattern, result *ir.Term, x string) (Witness, error) {
	switch pattern.Kind {
	case ir.Variable:
		if pattern.Sym == x {
			return witnessOf(result), nil
		}
		if result.Equal(pattern) {
			return Unconstrained, nil
		}
		return Witness{}, fmt.Errorf("%w: %q differs from %q at a position not holding %s",
			ErrUnsatisfiable, result, pattern, x)
	case ir.Constant:
		// x cannot occur inside a constant.
		if result.Equal(pattern) {
			return Unconstrained, nil
		}
		return Witness{}, fmt.Errorf("%w: %q is not the constant %q",
			ErrUnsatisfiable, result, pattern)
	case ir.FuncApp:
		if result.Kind != ir.FuncApp || result.Sym != pattern.Sym ||
			len(result.Args) != len(pattern.Args) {
			return Witness{}, fmt.Errorf("%w: %q does not apply %q",
				ErrUnsatisfiable, result, pattern.Sym)
		}
		w := Unconstrained
		for i := range pattern.Args {
			wi, err := findInTerm(pattern.Args[i], result.Args[i], x)
			if err != nil {
				return Witness{}, err
			}
			if w, err = merge(w, wi); err != nil {
				return Witness{}, err
			}
		}
		return w, nil
	}
	return Witness{}, fmt.Errorf("%w: unknown term kind %s", ErrUnsatisfiable, pattern.Kind)
}

// FindTerm recovers the term s such that result equals
// Apply(pattern, x, s), if s is uniquely determined.
func FindTerm(pattern, result *ir.Formula, x string) (Witness, error) {
	if !lang.IsVariableSymbol(x) {
		return Witness{}, fmt.Errorf("%w: not a variable symbol: %q", ir.ErrConstruct, x)
	}
	if result == nil || result.Lang != pattern.Lang {
		return Witness{}, fmt.Errorf("%w: result is not a formula of the pattern's language",
			ir.ErrConstruct)
	}
	return find(pattern, result, x)
}

func find(pattern, result *ir.Formula, x string) (Witness, error) {
	if result.Kind != pattern.Kind {
		return Witness{}, fmt.Errorf("%w: %s against %s",
			ErrUnsatisfiable, result.Kind, pattern.Kind)
	}
	switch pattern.Kind {
	case ir.Equality:
		return findInArgs(pattern.Args, result.Args, x)
	case ir.Relation:
		if result.Sym != pattern.Sym || len(result.Args) != len(pattern.Args) {
			return Witness{}, fmt.Errorf("%w: %q does not apply %q",
				ErrUnsatisfiable, result, pattern.Sym)
		}
		return findInArgs(pattern.Args, result.Args, x)
	case ir.Negation:
		return find(pattern.Left, result.Left, x)
	case ir.Disjunction:
		wl, err := find(pattern.Left, result.Left, x)
		if err != nil {
			return Witness{}, err
		}
		wr, err := find(pattern.Right, result.Right, x)
		if err != nil {
			return Witness{}, err
		}
		return merge(wl, wr)
	case ir.Quantified:
		if pattern.Sym == x {
			// x is rebound here, so nothing below was
			// replaced: only an exact match is consistent.
			if pattern.Equal(result) {
				return Unconstrained, nil
			}
			return Witness{}, fmt.Errorf("%w: %q rebinds %s yet differs from %q",
				ErrUnsatisfiable, result, x, pattern)
		}
		if result.Sym != pattern.Sym {
			return Witness{}, fmt.Errorf("%w: binder %q against %q",
				ErrUnsatisfiable, result.Sym, pattern.Sym)
		}
		return find(pattern.Left, result.Left, x)
	}
	return Witness{}, fmt.Errorf("%w: unknown formula kind %s", ErrUnsatisfiable, pattern.Kind)
}

func findInArgs(pattern, result []*ir.Term, x string) (Witness, error) {
	w := Unconstrained
	for i := range pattern {
		wi, err := findInTerm(pattern[i], result[i], x)
		if err != nil {
			return Witness{}, err
		}
		if w, err = merge(w, wi); err != nil {
			return Witness{}, err
		}
	}
	return w, nil
}
