package ir

import (
	"fmt"
	"strings"

	"github.com/skolemize/go-fol/lang"
)

// Formula is a well-formed formula of a first order language. See the
// package documentation for the Kind/field layout.
type Formula struct {
	Kind FormulaKind
	// Sym is the relation symbol of a Relation formula or the bound
	// variable of a Quantified formula.
	Sym  string
	Args []*Term
	Left *Formula
	// Right is the second disjunct of a Disjunction.
	Right *Formula
	Lang  *lang.Language
}

// Eq builds the formula "= t1 t2".
func Eq(l *lang.Language, t1, t2 *Term) (*Formula, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil language", ErrConstruct)
	}
	if t1 == nil || t1.Lang != l || t2 == nil || t2.Lang != l {
		return nil, fmt.Errorf("%w: equality over terms of a different language", ErrConstruct)
	}
	return &Formula{Kind: Equality, Args: []*Term{t1, t2}, Lang: l}, nil
}

// Rel builds the formula "R t1 ... tn" for an n-ary relation symbol R.
func Rel(l *lang.Language, r string, args []*Term) (*Formula, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil language", ErrConstruct)
	}
	arity, ok := l.RelationArity(r)
	if !ok {
		return nil, fmt.Errorf("%w: not a relation symbol: %q", ErrConstruct, r)
	}
	if len(args) != arity {
		return nil, fmt.Errorf("%w: %d args given for %d-ary symbol %q",
			ErrConstruct, len(args), arity, r)
	}
	own := make([]*Term, len(args))
	for i, arg := range args {
		if arg == nil || arg.Lang != l {
			return nil, fmt.Errorf("%w: argument %d of %q is not a term of the language",
				ErrConstruct, i, r)
		}
		own[i] = arg
	}
	return &Formula{Kind: Relation, Sym: r, Args: own, Lang: l}, nil
}

// Not builds the formula "( !! P )".
func Not(p *Formula) (*Formula, error) {
	if p == nil || p.Lang == nil {
		return nil, fmt.Errorf("%w: negation of nil formula", ErrConstruct)
	}
	return &Formula{Kind: Negation, Left: p, Lang: p.Lang}, nil
}

// Or builds the formula "( P || Q )".
func Or(p, q *Formula) (*Formula, error) {
	if p == nil || p.Lang == nil || q == nil {
		return nil, fmt.Errorf("%w: disjunction of nil formula", ErrConstruct)
	}
	if q.Lang != p.Lang {
		return nil, fmt.Errorf("%w: disjunction over different languages", ErrConstruct)
	}
	return &Formula{Kind: Disjunction, Left: p, Right: q, Lang: p.Lang}, nil
}

// ForAll builds the formula "( AA v ) ( P )".
func ForAll(v string, p *Formula) (*Formula, error) {
	if p == nil || p.Lang == nil {
		return nil, fmt.Errorf("%w: quantification of nil formula", ErrConstruct)
	}
	if !lang.IsVariableSymbol(v) {
		return nil, fmt.Errorf("%w: not a variable symbol: %q", ErrConstruct, v)
	}
	return &Formula{Kind: Quantified, Sym: v, Left: p, Lang: p.Lang}, nil
}

// And builds the conjunction shorthand "( P && Q )" as its primitive
// composition "( !! ( ( !! P ) || ( !! Q ) ) )".
func And(p, q *Formula) (*Formula, error) {
	np, err := Not(p)
	if err != nil {
		return nil, err
	}
	nq, err := Not(q)
	if err != nil {
		return nil, err
	}
	or, err := Or(np, nq)
	if err != nil {
		return nil, err
	}
	return Not(or)
}

// Implies builds the implication shorthand "( P -> Q )" as
// "( ( !! P ) || Q )".
func Implies(p, q *Formula) (*Formula, error) {
	np, err := Not(p)
	if err != nil {
		return nil, err
	}
	return Or(np, q)
}

// Iff builds the equivalence shorthand "( P <-> Q )" as the conjunction
// of both implications.
func Iff(p, q *Formula) (*Formula, error) {
	pq, err := Implies(p, q)
	if err != nil {
		return nil, err
	}
	qp, err := Implies(q, p)
	if err != nil {
		return nil, err
	}
	return And(pq, qp)
}

// Exists builds the existential shorthand "( EE v ) ( P )" as
// "( !! ( AA v ) ( !! P ) )".
func Exists(v string, p *Formula) (*Formula, error) {
	np, err := Not(p)
	if err != nil {
		return nil, err
	}
	all, err := ForAll(v, np)
	if err != nil {
		return nil, err
	}
	return Not(all)
}

// String renders f as the space-delimited symbol sequence accepted by
// parse.Formula. Derived forms render as their primitive composition.
func (f *Formula) String() string {
	var sb strings.Builder
	f.render(&sb)
	return sb.String()
}

func (f *Formula) render(sb *strings.Builder) {
	switch f.Kind {
	case Equality:
		sb.WriteString("=")
		for _, arg := range f.Args {
			sb.WriteByte(' ')
			arg.render(sb)
		}
	case Relation:
		sb.WriteString(f.Sym)
		for _, arg := range f.Args {
			sb.WriteByte(' ')
			arg.render(sb)
		}
	case Negation:
		sb.WriteString("( !! ")
		f.Left.render(sb)
		sb.WriteString(" )")
	case Disjunction:
		sb.WriteString("( ")
		f.Left.render(sb)
		sb.WriteString(" || ")
		f.Right.render(sb)
		sb.WriteString(" )")
	case Quantified:
		sb.WriteString("( AA ")
		sb.WriteString(f.Sym)
		sb.WriteString(" ) ( ")
		f.Left.render(sb)
		sb.WriteString(" )")
	}
}

// Equal reports deep value equality: same kind, same symbols, same
// children in order, same vocabulary identity.
func (f *Formula) Equal(o *Formula) bool {
	if f == o {
		return true
	}
	if f == nil || o == nil {
		return false
	}
	if f.Kind != o.Kind || f.Sym != o.Sym || f.Lang != o.Lang || len(f.Args) != len(o.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	if (f.Left == nil) != (o.Left == nil) || (f.Right == nil) != (o.Right == nil) {
		return false
	}
	if f.Left != nil && !f.Left.Equal(o.Left) {
		return false
	}
	if f.Right != nil && !f.Right.Equal(o.Right) {
		return false
	}
	return true
}

// FreeVariables returns the set of variables with a free occurrence in
// f. Quantification removes its bound variable from the body's set.
func (f *Formula) FreeVariables() map[string]bool {
	switch f.Kind {
	case Equality, Relation:
		vs := map[string]bool{}
		for _, arg := range f.Args {
			arg.addVariableSymbols(vs)
		}
		return vs
	case Negation:
		return f.Left.FreeVariables()
	case Disjunction:
		vs := f.Left.FreeVariables()
		for v := range f.Right.FreeVariables() {
			vs[v] = true
		}
		return vs
	case Quantified:
		vs := f.Left.FreeVariables()
		delete(vs, f.Sym)
		return vs
	}
	return nil
}

// VariableFreeIn reports whether v has a free occurrence in f.
func (f *Formula) VariableFreeIn(v string) bool {
	return f.FreeVariables()[v]
}

// IsSentence reports whether f has no free variables.
func (f *Formula) IsSentence() bool {
	return len(f.FreeVariables()) == 0
}
