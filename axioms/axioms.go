// Package axioms builds and recognizes instances of the logical axiom
// schemas of a first order proof system: the equality axioms
// (reflexivity, function substitution, relation substitution) and the
// quantifier axioms (universal instantiation, existential
// generalization).
//
// Builders validate through the ir constructors and return errors;
// recognizers never error on near-misses, they return false.
// Quantifier-axiom recognition rests on subst.FindTerm: a formula
// instantiates the schema iff a witness term exists.
package axioms

import (
	"fmt"

	"github.com/skolemize/go-fol/ir"
	"github.com/skolemize/go-fol/lang"
	"github.com/skolemize/go-fol/subst"
)

// Pair is an ordered pair of variable symbols, the (x, y) of one
// equality "= x y" in a substitution axiom.
type Pair [2]string

// ConjoinEqualities builds the left-nested conjunction
//
//	( ... ( = x1 y1 && = x2 y2 ) && ... ) && = xn yn )
//
// over the given variable pairs.
func ConjoinEqualities(l *lang.Language, pairs []Pair) (*ir.Formula, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no variable pairs", ir.ErrConstruct)
	}
	conj, err := equalityOf(l, pairs[0])
	if err != nil {
		return nil, err
	}
	for _, p := range pairs[1:] {
		eq, err := equalityOf(l, p)
		if err != nil {
			return nil, err
		}
		if conj, err = ir.And(conj, eq); err != nil {
			return nil, err
		}
	}
	return conj, nil
}

func equalityOf(l *lang.Language, p Pair) (*ir.Formula, error) {
	x, err := ir.Var(l, p[0])
	if err != nil {
		return nil, err
	}
	y, err := ir.Var(l, p[1])
	if err != nil {
		return nil, err
	}
	return ir.Eq(l, x, y)
}

func isVariableEquality(f *ir.Formula) bool {
	return f.Kind == ir.Equality &&
		f.Args[0].Kind == ir.Variable && f.Args[1].Kind == ir.Variable
}

// variablePairs decomposes a left-nested conjunction of variable
// equalities back into its term pairs.
func variablePairs(f *ir.Formula) ([][2]*ir.Term, error) {
	if isVariableEquality(f) {
		return [][2]*ir.Term{{f.Args[0], f.Args[1]}}, nil
	}
	// ( P && Q ) is ( !! ( ( !! P ) || ( !! Q ) ) ).
	if f.Kind != ir.Negation || f.Left.Kind != ir.Disjunction ||
		f.Left.Left.Kind != ir.Negation || f.Left.Right.Kind != ir.Negation ||
		!isVariableEquality(f.Left.Right.Left) {
		return nil, fmt.Errorf("%w: not a conjunction of variable equalities",
			subst.ErrUnsatisfiable)
	}
	pairs, err := variablePairs(f.Left.Left.Left)
	if err != nil {
		return nil, err
	}
	last := f.Left.Right.Left
	return append(pairs, [2]*ir.Term{last.Args[0], last.Args[1]}), nil
}

// Reflexivity builds the axiom "= x x".
func Reflexivity(l *lang.Language, x string) (*ir.Formula, error) {
	return equalityOf(l, Pair{x, x})
}

// IsReflexivity reports whether f instantiates the reflexivity axiom.
func IsReflexivity(f *ir.Formula) bool {
	return isVariableEquality(f) && f.Args[0].Equal(f.Args[1])
}

// FunctionSubstitution builds, for an n-ary function symbol fn and n
// variable pairs, the axiom
//
//	( <equalities> -> = fn x1 .. xn fn y1 .. yn )
func FunctionSubstitution(l *lang.Language, pairs []Pair, fn string) (*ir.Formula, error) {
	conj, err := ConjoinEqualities(l, pairs)
	if err != nil {
		return nil, err
	}
	lhs, err := ir.Func(l, fn, pairSide(l, pairs, 0))
	if err != nil {
		return nil, err
	}
	rhs, err := ir.Func(l, fn, pairSide(l, pairs, 1))
	if err != nil {
		return nil, err
	}
	eq, err := ir.Eq(l, lhs, rhs)
	if err != nil {
		return nil, err
	}
	return ir.Implies(conj, eq)
}

// pairSide builds the variable terms of one side of the pairs. Symbols
// are validated by the application constructor consuming them.
func pairSide(l *lang.Language, pairs []Pair, side int) []*ir.Term {
	args := make([]*ir.Term, len(pairs))
	for i, p := range pairs {
		v, err := ir.Var(l, p[side])
		if err != nil {
			return nil
		}
		args[i] = v
	}
	return args
}

// IsFunctionSubstitution reports whether f instantiates the function
// substitution axiom.
func IsFunctionSubstitution(f *ir.Formula) bool {
	// ( P -> Q ) is ( ( !! P ) || Q ).
	if f.Kind != ir.Disjunction || f.Left.Kind != ir.Negation {
		return false
	}
	pairs, err := variablePairs(f.Left.Left)
	if err != nil {
		return false
	}
	q := f.Right
	if q.Kind != ir.Equality ||
		q.Args[0].Kind != ir.FuncApp || q.Args[1].Kind != ir.FuncApp ||
		q.Args[0].Sym != q.Args[1].Sym {
		return false
	}
	return sidesMatch(pairs, q.Args[0].Args, q.Args[1].Args)
}

func sidesMatch(pairs [][2]*ir.Term, lhs, rhs []*ir.Term) bool {
	if len(lhs) != len(pairs) || len(rhs) != len(pairs) {
		return false
	}
	for i, p := range pairs {
		if !lhs[i].Equal(p[0]) || !rhs[i].Equal(p[1]) {
			return false
		}
	}
	return true
}

// RelationSubstitution builds, for an n-ary relation symbol r and n
// variable pairs, the axiom
//
//	( <equalities> -> ( r x1 .. xn -> r y1 .. yn ) )
func RelationSubstitution(l *lang.Language, pairs []Pair, r string) (*ir.Formula, error) {
	conj, err := ConjoinEqualities(l, pairs)
	if err != nil {
		return nil, err
	}
	lhs, err := ir.Rel(l, r, pairSide(l, pairs, 0))
	if err != nil {
		return nil, err
	}
	rhs, err := ir.Rel(l, r, pairSide(l, pairs, 1))
	if err != nil {
		return nil, err
	}
	imp, err := ir.Implies(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return ir.Implies(conj, imp)
}

// IsRelationSubstitution reports whether f instantiates the relation
// substitution axiom.
func IsRelationSubstitution(f *ir.Formula) bool {
	if f.Kind != ir.Disjunction || f.Left.Kind != ir.Negation {
		return false
	}
	pairs, err := variablePairs(f.Left.Left)
	if err != nil {
		return false
	}
	q := f.Right
	if q.Kind != ir.Disjunction || q.Left.Kind != ir.Negation {
		return false
	}
	lhs, rhs := q.Left.Left, q.Right
	if lhs.Kind != ir.Relation || rhs.Kind != ir.Relation || lhs.Sym != rhs.Sym {
		return false
	}
	return sidesMatch(pairs, lhs.Args, rhs.Args)
}

// UniversalInstantiation builds "( ( AA x ) ( P ) -> P[t/x] )". The
// term t must be substitutable for x in P.
func UniversalInstantiation(l *lang.Language, p *ir.Formula, x string, t *ir.Term) (*ir.Formula, error) {
	if p == nil || p.Lang != l {
		return nil, fmt.Errorf("%w: formula is not of the given language", ir.ErrConstruct)
	}
	okr, err := subst.OK(p, x, t)
	if err != nil {
		return nil, err
	}
	if !okr {
		return nil, fmt.Errorf("%w: %q is not substitutable for %s in %q",
			ir.ErrConstruct, t, x, p)
	}
	all, err := ir.ForAll(x, p)
	if err != nil {
		return nil, err
	}
	inst, err := subst.Apply(p, x, t)
	if err != nil {
		return nil, err
	}
	return ir.Implies(all, inst)
}

// IsUniversalInstantiation reports whether f instantiates the
// universal instantiation axiom, i.e. whether a witness term exists.
func IsUniversalInstantiation(f *ir.Formula) bool {
	if f.Kind != ir.Disjunction || f.Left.Kind != ir.Negation ||
		f.Left.Left.Kind != ir.Quantified {
		return false
	}
	all := f.Left.Left
	_, err := subst.FindTerm(all.Left, f.Right, all.Sym)
	return err == nil
}

// ExistentialGeneralization builds "( P[t/x] -> ( EE x ) ( P ) )". The
// term t must be substitutable for x in P.
func ExistentialGeneralization(l *lang.Language, p *ir.Formula, x string, t *ir.Term) (*ir.Formula, error) {
	if p == nil || p.Lang != l {
		return nil, fmt.Errorf("%w: formula is not of the given language", ir.ErrConstruct)
	}
	okr, err := subst.OK(p, x, t)
	if err != nil {
		return nil, err
	}
	if !okr {
		return nil, fmt.Errorf("%w: %q is not substitutable for %s in %q",
			ir.ErrConstruct, t, x, p)
	}
	inst, err := subst.Apply(p, x, t)
	if err != nil {
		return nil, err
	}
	ex, err := ir.Exists(x, p)
	if err != nil {
		return nil, err
	}
	return ir.Implies(inst, ex)
}

// IsExistentialGeneralization reports whether f instantiates the
// existential generalization axiom.
func IsExistentialGeneralization(f *ir.Formula) bool {
	// ( P[t/x] -> ( !! ( AA x ) ( !! P ) ) )
	if f.Kind != ir.Disjunction || f.Left.Kind != ir.Negation ||
		f.Right.Kind != ir.Negation || f.Right.Left.Kind != ir.Quantified ||
		f.Right.Left.Left.Kind != ir.Negation {
		return false
	}
	all := f.Right.Left
	_, err := subst.FindTerm(all.Left.Left, f.Left.Left, all.Sym)
	return err == nil
}
