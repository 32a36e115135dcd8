package encode

import (
	"io"
	"strings"

	"github.com/skolemize/go-fol/ir"
)

type EncState struct {
	color func(SymbolClass, string) string
}

type EncodeOption func(*EncState)

// WithColors renders each symbol through the given color scheme.
func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.color = c.Color }
}

// EncodeTerm writes the symbol sequence of t to w.
func EncodeTerm(t *ir.Term, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	return es.write(w, es.termSyms(t, nil))
}

// EncodeFormula writes the symbol sequence of f to w.
func EncodeFormula(f *ir.Formula, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	return es.write(w, es.formulaSyms(f, nil))
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		color: func(_ SymbolClass, s string) string { return s },
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

type sym struct {
	class SymbolClass
	text  string
}

func (es *EncState) write(w io.Writer, syms []sym) error {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = es.color(s.class, s.text)
	}
	_, err := io.WriteString(w, strings.Join(parts, " "))
	return err
}

func (es *EncState) termSyms(t *ir.Term, syms []sym) []sym {
	switch t.Kind {
	case ir.Variable:
		return append(syms, sym{VariableSym, t.Sym})
	case ir.Constant:
		return append(syms, sym{ConstantSym, t.Sym})
	case ir.FuncApp:
		syms = append(syms, sym{FunctionSym, t.Sym})
		for _, arg := range t.Args {
			syms = es.termSyms(arg, syms)
		}
	}
	return syms
}

func (es *EncState) formulaSyms(f *ir.Formula, syms []sym) []sym {
	switch f.Kind {
	case ir.Equality:
		syms = append(syms, sym{LogicalSym, "="})
		for _, arg := range f.Args {
			syms = es.termSyms(arg, syms)
		}
	case ir.Relation:
		syms = append(syms, sym{RelationSym, f.Sym})
		for _, arg := range f.Args {
			syms = es.termSyms(arg, syms)
		}
	case ir.Negation:
		syms = append(syms, sym{ParenSym, "("}, sym{LogicalSym, "!!"})
		syms = es.formulaSyms(f.Left, syms)
		syms = append(syms, sym{ParenSym, ")"})
	case ir.Disjunction:
		syms = append(syms, sym{ParenSym, "("})
		syms = es.formulaSyms(f.Left, syms)
		syms = append(syms, sym{LogicalSym, "||"})
		syms = es.formulaSyms(f.Right, syms)
		syms = append(syms, sym{ParenSym, ")"})
	case ir.Quantified:
		syms = append(syms,
			sym{ParenSym, "("}, sym{LogicalSym, "AA"}, sym{VariableSym, f.Sym},
			sym{ParenSym, ")"}, sym{ParenSym, "("})
		syms = es.formulaSyms(f.Left, syms)
		syms = append(syms, sym{ParenSym, ")"})
	}
	return syms
}
