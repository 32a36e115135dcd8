// Package subst is the substitution calculus over the trees of package
// ir: capture-blind replacement (Apply), the textbook capture-avoidance
// test (OK), and witness recovery (FindTerm), a restricted
// single-variable form of anti-unification.
//
// # Apply
//
// Apply(f, x, t) returns a formula equal to f with every free
// occurrence of variable x replaced by term t. Inputs are never
// mutated; the result may share unmodified immutable subtrees with its
// inputs. A quantifier over x shadows x: nothing under it is replaced.
//
// # OK
//
// OK(f, x, t) reports whether Apply(f, x, t) is capture free, that is,
// whether no free variable of t would fall under a quantifier at the
// position of a formerly free x. The quantifier case short-circuits on
// vacuity: when x is not free in the body, any t is substitutable.
//
// # FindTerm
//
// FindTerm(pattern, result, x) inverts Apply: given that result is
// claimed to equal Apply(pattern, x, s) for some unknown term s, it
// recovers s. The outcome is three-way and explicit:
//
//   - a constrained Witness carrying the unique s,
//   - an unconstrained Witness when x is not free at any compared
//     position (every term satisfies the claim), or
//   - ErrUnsatisfiable when the trees are structurally incompatible or
//     two occurrences of x would demand different witnesses.
//
// Axiom-schema recognizers use FindTerm to validate instantiations
// without searching the term universe; they treat ErrUnsatisfiable as
// "not an instance".
package subst
