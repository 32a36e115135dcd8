package encode

import (
	"strings"
	"testing"

	"github.com/skolemize/go-fol/ir"
	"github.com/skolemize/go-fol/lang"
)

var testLang = lang.MustNew([]string{"a"},
	map[string]int{"f1": 1}, map[string]int{"r2": 2})

func TestEncodeMatchesString(t *testing.T) {
	v1 := ir.Must(ir.Var(testLang, "v1"))
	a := ir.Must(ir.Const(testLang, "a"))
	f1 := ir.Must(ir.Func(testLang, "f1", []*ir.Term{v1}))

	var sb strings.Builder
	if err := EncodeTerm(f1, &sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != f1.String() {
		t.Errorf("EncodeTerm = %q, want %q", sb.String(), f1)
	}

	f := ir.Must(ir.Exists("v1", ir.Must(ir.Or(
		ir.Must(ir.Eq(testLang, f1, a)),
		ir.Must(ir.Rel(testLang, "r2", []*ir.Term{v1, a})),
	))))
	sb.Reset()
	if err := EncodeFormula(f, &sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != f.String() {
		t.Errorf("EncodeFormula = %q, want %q", sb.String(), f)
	}
}

func TestEncodeColorsCoverAllClasses(t *testing.T) {
	c := NewColors()
	for _, class := range []SymbolClass{
		LogicalSym, ParenSym, VariableSym, ConstantSym, FunctionSym, RelationSym,
	} {
		if got := c.Color(class, "x"); !strings.Contains(got, "x") {
			t.Errorf("Color(%d) lost the symbol text: %q", class, got)
		}
	}
}
