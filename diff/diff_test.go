package diff

import (
	"strings"
	"testing"

	"github.com/skolemize/go-fol/lang"
	"github.com/skolemize/go-fol/parse"
)

var testLang = lang.MustNew([]string{"a", "b"},
	map[string]int{"f1": 1}, map[string]int{"r2": 2})

func TestSymbolsEqual(t *testing.T) {
	syms := []string{"=", "v1", "a"}
	edits := Symbols(syms, syms)
	if len(edits) != 1 || edits[0].Op != Equal {
		t.Fatalf("edits = %v, want one equal run", edits)
	}
	if got := strings.Join(edits[0].Syms, " "); got != "= v1 a" {
		t.Errorf("run = %q", got)
	}
}

func TestSymbolsChange(t *testing.T) {
	from := []string{"=", "v1", "a"}
	to := []string{"=", "v1", "f1", "b"}
	edits := Symbols(from, to)
	var dels, inss, eqs []string
	for _, e := range edits {
		switch e.Op {
		case Delete:
			dels = append(dels, e.Syms...)
		case Insert:
			inss = append(inss, e.Syms...)
		case Equal:
			eqs = append(eqs, e.Syms...)
		}
	}
	if got := strings.Join(eqs, " "); got != "= v1" {
		t.Errorf("equal symbols = %q, want %q", got, "= v1")
	}
	if got := strings.Join(dels, " "); got != "a" {
		t.Errorf("deleted symbols = %q, want %q", got, "a")
	}
	if got := strings.Join(inss, " "); got != "f1 b" {
		t.Errorf("inserted symbols = %q, want %q", got, "f1 b")
	}
}

func TestFormulas(t *testing.T) {
	from, err := parse.Formula(testLang, "( r2 a b || = v1 a )")
	if err != nil {
		t.Fatal(err)
	}
	to, err := parse.Formula(testLang, "( r2 a b || = v1 b )")
	if err != nil {
		t.Fatal(err)
	}
	edits := Formulas(from, to)
	var from2, to2 []string
	for _, e := range edits {
		if e.Op != Insert {
			from2 = append(from2, e.Syms...)
		}
		if e.Op != Delete {
			to2 = append(to2, e.Syms...)
		}
	}
	if got := strings.Join(from2, " "); got != from.String() {
		t.Errorf("delete+equal runs = %q, want %q", got, from)
	}
	if got := strings.Join(to2, " "); got != to.String() {
		t.Errorf("insert+equal runs = %q, want %q", got, to)
	}
}

func TestRenderPlain(t *testing.T) {
	edits := []Edit{
		{Op: Equal, Syms: []string{"=", "v1"}},
		{Op: Delete, Syms: []string{"a"}},
		{Op: Insert, Syms: []string{"b"}},
	}
	if got, want := Render(edits, false), "= v1 -[ a ] +[ b ]"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderColoredKeepsSymbols(t *testing.T) {
	edits := []Edit{
		{Op: Delete, Syms: []string{"a"}},
		{Op: Insert, Syms: []string{"b"}},
	}
	got := Render(edits, true)
	if !strings.Contains(got, "a") || !strings.Contains(got, "b") {
		t.Errorf("colored render %q lost symbols", got)
	}
}
