// Package infer checks instances of the inference rules of a first
// order proof system: propositional consequence and the universal and
// existential quantifier rules.
//
// Propositional consequence reduces to SAT. A formula is first
// flattened to its propositional skeleton: equality, relation and
// quantified subformulas become atoms keyed by their rendering, while
// negation and disjunction become gates of a gini logic circuit. The
// premise set entails the conclusion iff the implication over the
// skeletons is a tautology, i.e. its negation is unsatisfiable.
package infer
