// Package ir provides the syntax trees of first order logic: terms and
// formulas over an externally supplied vocabulary.
//
// # Overview
//
// Given a language L (see package lang), a term of L is a variable, a
// constant symbol of L, or an n-ary function symbol of L applied to n
// terms. A formula of L is built from term equality, relation
// application, negation, disjunction and universal quantification.
// Conjunction, implication, equivalence and existential quantification
// are derived: their builders return the equivalent composition of the
// five primitive shapes, so code that matches on the primitives also
// covers every derived form.
//
// # Tagged unions
//
// Term and Formula are closed tagged unions: a single struct whose Kind
// field selects which of the remaining fields are meaningful. Every
// operation switches exhaustively on Kind.
//
//	Kind          Sym                 Args            Left  Right
//	Variable      variable symbol     -               -     -
//	Constant      constant symbol     -               -     -
//	FuncApp       function symbol     arity terms     -     -
//
//	Equality      -                   2 terms         -     -
//	Relation      relation symbol     arity terms     -     -
//	Negation      -                   -               P     -
//	Disjunction   -                   -               P     Q
//	Quantified    bound variable      -               P     -
//
// # Construction
//
// Trees are built through the validating constructors (Var, Const,
// Func, Eq, Rel, Not, Or, ForAll and the derived And, Implies, Iff,
// Exists), by package parse, or by package subst. Constructors check
// the structural invariants: argument counts match declared arities,
// all children belong to the same vocabulary, and variable names match
// the variable-symbol pattern. Violations are ErrConstruct errors;
// nothing is silently coerced.
//
// Trees are immutable once built. The vocabulary is referenced, never
// owned, and must outlive every tree built against it; vocabulary
// identity is pointer identity.
//
// # Rendering
//
// String renders the space-delimited symbol sequence that package parse
// accepts, so parse(t.String()) reproduces t for every constructible
// tree. Derived forms render as their primitive composition.
package ir
