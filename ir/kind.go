package ir

// TermKind selects the shape of a Term.
type TermKind int

const (
	Variable TermKind = iota
	Constant
	FuncApp
)

func (k TermKind) String() string {
	switch k {
	case Variable:
		return "Variable"
	case Constant:
		return "Constant"
	case FuncApp:
		return "FuncApp"
	}
	return "<unknown term kind>"
}

// FormulaKind selects the shape of a Formula.
type FormulaKind int

const (
	Equality FormulaKind = iota
	Relation
	Negation
	Disjunction
	Quantified
)

func (k FormulaKind) String() string {
	switch k {
	case Equality:
		return "Equality"
	case Relation:
		return "Relation"
	case Negation:
		return "Negation"
	case Disjunction:
		return "Disjunction"
	case Quantified:
		return "Quantified"
	}
	return "<unknown formula kind>"
}

// TermKinds returns all term kinds, in rendering rank order.
func TermKinds() []TermKind {
	return []TermKind{Variable, Constant, FuncApp}
}

// FormulaKinds returns all formula kinds, in rendering rank order.
func FormulaKinds() []FormulaKind {
	return []FormulaKind{Equality, Relation, Negation, Disjunction, Quantified}
}
