package infer

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/skolemize/go-fol/ir"
)

// skeletonBuilder maps formulas to literals of a logic circuit. Atoms
// are shared by rendering, so the same subformula always maps to the
// same literal across all formulas built by one builder.
type skeletonBuilder struct {
	c     *logic.C
	atoms map[string]z.Lit
}

func newSkeletonBuilder() *skeletonBuilder {
	return &skeletonBuilder{
		c:     logic.NewC(),
		atoms: make(map[string]z.Lit),
	}
}

// lit returns the circuit literal of f's propositional skeleton.
// Equality, relation and quantified formulas are atoms.
func (b *skeletonBuilder) lit(f *ir.Formula) z.Lit {
	switch f.Kind {
	case ir.Negation:
		return b.lit(f.Left).Not()
	case ir.Disjunction:
		return b.c.Ors(b.lit(f.Left), b.lit(f.Right))
	default:
		key := f.String()
		if m, ok := b.atoms[key]; ok {
			return m
		}
		m := b.c.Lit()
		b.atoms[key] = m
		return m
	}
}

// isTautology reports whether m holds under every assignment: its
// negation is assumed and the circuit solved, unsat means tautology.
func (b *skeletonBuilder) isTautology(m z.Lit) bool {
	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(m.Not())
	return g.Solve() != 1
}

// IsTautology reports whether the propositional skeleton of f is a
// tautology.
func IsTautology(f *ir.Formula) bool {
	b := newSkeletonBuilder()
	return b.isTautology(b.lit(f))
}

// sameLanguage errors unless every formula shares theta's vocabulary.
func sameLanguage(gamma []*ir.Formula, theta *ir.Formula) error {
	for _, f := range gamma {
		if f.Lang != theta.Lang {
			return fmt.Errorf("%w: formulas are not of the same language",
				ir.ErrConstruct)
		}
	}
	return nil
}

// PropositionalConsequence reports whether theta follows
// propositionally from gamma: every assignment satisfying all of gamma
// satisfies theta. An empty gamma asks whether theta is a tautology.
func PropositionalConsequence(gamma []*ir.Formula, theta *ir.Formula) (bool, error) {
	if err := sameLanguage(gamma, theta); err != nil {
		return false, err
	}
	b := newSkeletonBuilder()
	goal := b.lit(theta)
	if len(gamma) > 0 {
		lits := make([]z.Lit, len(gamma))
		for i, f := range gamma {
			lits[i] = b.lit(f)
		}
		goal = b.c.Ors(b.c.Ands(lits...).Not(), goal)
	}
	return b.isTautology(goal), nil
}

// UniversalRule reports whether gamma, theta instantiate the universal
// quantifier rule: from ( psi -> phi ) infer ( psi -> ( AA x ) ( phi ) ),
// provided x is not free in psi.
func UniversalRule(gamma []*ir.Formula, theta *ir.Formula) (bool, error) {
	if len(gamma) != 1 {
		return false, nil
	}
	if err := sameLanguage(gamma, theta); err != nil {
		return false, err
	}
	g := gamma[0]
	if g.Kind != ir.Disjunction || g.Left.Kind != ir.Negation {
		return false, nil
	}
	psi, phi := g.Left.Left, g.Right
	if theta.Kind != ir.Disjunction || theta.Left.Kind != ir.Negation ||
		!theta.Left.Left.Equal(psi) {
		return false, nil
	}
	q := theta.Right
	if q.Kind != ir.Quantified {
		return false, nil
	}
	return q.Left.Equal(phi) && !psi.VariableFreeIn(q.Sym), nil
}

// ExistentialRule reports whether gamma, theta instantiate the
// existential quantifier rule: from ( phi -> psi ) infer
// ( ( EE x ) ( phi ) -> psi ), provided x is not free in psi.
func ExistentialRule(gamma []*ir.Formula, theta *ir.Formula) (bool, error) {
	if len(gamma) != 1 {
		return false, nil
	}
	if err := sameLanguage(gamma, theta); err != nil {
		return false, err
	}
	g := gamma[0]
	if g.Kind != ir.Disjunction || g.Left.Kind != ir.Negation {
		return false, nil
	}
	phi, psi := g.Left.Left, g.Right
	// ( EE x ) ( phi ) is ( !! ( AA x ) ( !! phi ) ).
	if theta.Kind != ir.Disjunction || theta.Left.Kind != ir.Negation {
		return false, nil
	}
	ex := theta.Left.Left
	if ex.Kind != ir.Negation || ex.Left.Kind != ir.Quantified ||
		ex.Left.Left.Kind != ir.Negation || !ex.Left.Left.Left.Equal(phi) {
		return false, nil
	}
	return theta.Right.Equal(psi) && !psi.VariableFreeIn(ex.Left.Sym), nil
}
