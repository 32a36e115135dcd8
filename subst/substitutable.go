package subst

import "github.com/skolemize/go-fol/ir"

// OK reports whether Apply(f, x, t) is capture free: no free variable
// of t falls under a quantifier at the position of a formerly free x.
func OK(f *ir.Formula, x string, t *ir.Term) (bool, error) {
	if err := checkArgs(f.Lang, x, t); err != nil {
		return false, err
	}
	return ok(f, x, t), nil
}

func ok(f *ir.Formula, x string, t *ir.Term) bool {
	switch f.Kind {
	case ir.Equality, ir.Relation:
		return true
	case ir.Negation:
		return ok(f.Left, x, t)
	case ir.Disjunction:
		return ok(f.Left, x, t) && ok(f.Right, x, t)
	case ir.Quantified:
		// Vacuous first: if x is not free in the body no
		// replacement happens below this binder.
		if !f.Left.VariableFreeIn(x) {
			return true
		}
		return !t.VariableSymbols()[f.Sym] && ok(f.Left, x, t)
	}
	return false
}
