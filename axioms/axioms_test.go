package axioms

import (
	"errors"
	"testing"

	"github.com/skolemize/go-fol/ir"
	"github.com/skolemize/go-fol/lang"
	"github.com/skolemize/go-fol/parse"
)

var testLang = lang.MustNew([]string{"a", "b", "c"},
	map[string]int{"f1": 1, "f3": 3}, map[string]int{"r2": 2})

func formula(t *testing.T, s string) *ir.Formula {
	t.Helper()
	f, err := parse.Formula(testLang, s)
	if err != nil {
		t.Fatalf("parse.Formula(%q): %v", s, err)
	}
	return f
}

func TestReflexivity(t *testing.T) {
	f, err := Reflexivity(testLang, "v2")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.String(), "= v2 v2"; got != want {
		t.Errorf("Reflexivity = %q, want %q", got, want)
	}
	if !IsReflexivity(f) {
		t.Error("builder output not recognized")
	}
	// Constants are not variables.
	if IsReflexivity(formula(t, "= a a")) {
		t.Error("= a a recognized as reflexivity")
	}
	if IsReflexivity(formula(t, "= v1 v2")) {
		t.Error("= v1 v2 recognized as reflexivity")
	}
	if _, err := Reflexivity(testLang, "a"); !errors.Is(err, ir.ErrConstruct) {
		t.Errorf("Reflexivity(a) error = %v, want ErrConstruct", err)
	}
}

func TestFunctionSubstitution(t *testing.T) {
	f, err := FunctionSubstitution(testLang, []Pair{{"v1", "v2"}}, "f1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.String(), "( ( !! = v1 v2 ) || = f1 v1 f1 v2 )"; got != want {
		t.Errorf("FunctionSubstitution = %q, want %q", got, want)
	}
	if !IsFunctionSubstitution(f) {
		t.Error("unary builder output not recognized")
	}

	f3, err := FunctionSubstitution(testLang,
		[]Pair{{"v11", "v12"}, {"v21", "v22"}, {"v31", "v32"}}, "f3")
	if err != nil {
		t.Fatal(err)
	}
	want := "( ( !! ( !! ( ( !! ( !! ( ( !! = v11 v12 ) || ( !! = v21 v22 ) ) ) ) || ( !! = v31 v32 ) ) ) ) || = f3 v11 v21 v31 f3 v12 v22 v32 )"
	if got := f3.String(); got != want {
		t.Errorf("ternary FunctionSubstitution = %q, want %q", got, want)
	}
	if !IsFunctionSubstitution(f3) {
		t.Error("ternary builder output not recognized")
	}

	rel, err := RelationSubstitution(testLang, []Pair{{"v11", "v12"}, {"v21", "v22"}}, "r2")
	if err != nil {
		t.Fatal(err)
	}
	if IsFunctionSubstitution(rel) {
		t.Error("relation substitution recognized as function substitution")
	}
	// Right-hand sides must line up with the pairs.
	if IsFunctionSubstitution(formula(t, "( = v1 v2 -> = f3 v1 v1 v1 f3 v2 v1 v1 )")) {
		t.Error("mismatched argument lists recognized")
	}
	if _, err := FunctionSubstitution(testLang, nil, "f1"); !errors.Is(err, ir.ErrConstruct) {
		t.Errorf("empty pairs error = %v, want ErrConstruct", err)
	}
	if _, err := FunctionSubstitution(testLang, []Pair{{"v1", "v2"}}, "f3"); !errors.Is(err, ir.ErrConstruct) {
		t.Errorf("arity mismatch error = %v, want ErrConstruct", err)
	}
}

func TestRelationSubstitution(t *testing.T) {
	f, err := RelationSubstitution(testLang, []Pair{{"v11", "v12"}, {"v21", "v22"}}, "r2")
	if err != nil {
		t.Fatal(err)
	}
	want := "( ( !! ( !! ( ( !! = v11 v12 ) || ( !! = v21 v22 ) ) ) ) || ( ( !! r2 v11 v21 ) || r2 v12 v22 ) )"
	if got := f.String(); got != want {
		t.Errorf("RelationSubstitution = %q, want %q", got, want)
	}
	if !IsRelationSubstitution(f) {
		t.Error("builder output not recognized")
	}
	fs, err := FunctionSubstitution(testLang,
		[]Pair{{"v11", "v12"}, {"v21", "v22"}, {"v31", "v32"}}, "f3")
	if err != nil {
		t.Fatal(err)
	}
	if IsRelationSubstitution(fs) {
		t.Error("function substitution recognized as relation substitution")
	}
	if IsRelationSubstitution(formula(t,
		"( ( = v11 v12 && = v21 v22 ) -> ( r2 v11 v12 -> r2 v21 v22 ) )")) {
		t.Error("crossed argument lists recognized")
	}
}

func TestUniversalInstantiation(t *testing.T) {
	p := formula(t, "r2 a v4")
	tm, err := parse.Term(testLang, "f1 a")
	if err != nil {
		t.Fatal(err)
	}
	f, err := UniversalInstantiation(testLang, p, "v4", tm)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.String(), "( ( !! ( AA v4 ) ( r2 a v4 ) ) || r2 a f1 a )"; got != want {
		t.Errorf("UniversalInstantiation = %q, want %q", got, want)
	}
	if !IsUniversalInstantiation(f) {
		t.Error("builder output not recognized")
	}
	// No witness: v1 cannot map to both v1 and f1 v1.
	if IsUniversalInstantiation(formula(t, "( ( AA v1 ) ( = v1 v1 ) -> = v1 f1 v1 )")) {
		t.Error("inconsistent instantiation recognized")
	}

	// Capture makes the builder refuse.
	open := formula(t, "( EE v1 ) ( = v1 v2 )")
	captured, err := parse.Term(testLang, "f1 v1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := UniversalInstantiation(testLang, open, "v2", captured); !errors.Is(err, ir.ErrConstruct) {
		t.Errorf("capturing instantiation error = %v, want ErrConstruct", err)
	}
}

func TestExistentialGeneralization(t *testing.T) {
	p := formula(t, "= f1 a f3 a v4 f1 a")
	tm, err := parse.Term(testLang, "a")
	if err != nil {
		t.Fatal(err)
	}
	f, err := ExistentialGeneralization(testLang, p, "v4", tm)
	if err != nil {
		t.Fatal(err)
	}
	want := "( ( !! = f1 a f3 a a f1 a ) || ( !! ( AA v4 ) ( ( !! = f1 a f3 a v4 f1 a ) ) ) )"
	if got := f.String(); got != want {
		t.Errorf("ExistentialGeneralization = %q, want %q", got, want)
	}
	if !IsExistentialGeneralization(f) {
		t.Error("builder output not recognized")
	}

	ui, err := UniversalInstantiation(testLang, formula(t, "r2 a v4"), "v4", tm)
	if err != nil {
		t.Fatal(err)
	}
	if IsExistentialGeneralization(ui) {
		t.Error("universal instantiation recognized as existential generalization")
	}
	if IsUniversalInstantiation(f) {
		t.Error("existential generalization recognized as universal instantiation")
	}
	if IsExistentialGeneralization(formula(t, "( = f1 a v1 -> ( EE v1 ) ( = v2 v1 ) )")) {
		t.Error("mismatched instance recognized")
	}
}
