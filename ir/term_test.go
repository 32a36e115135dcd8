package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/skolemize/go-fol/lang"
)

var (
	lang1 = lang.MustNew([]string{"a", "b", "c"},
		map[string]int{"f1": 1, "f3": 3}, map[string]int{"r2": 2})
	lang2 = lang.MustNew([]string{"a", "y", "z"},
		map[string]int{"f1": 1, "f2": 1}, map[string]int{"r2": 2, "r3": 3})
)

func TestVar(t *testing.T) {
	v, err := Var(lang1, "v5")
	if err != nil {
		t.Fatalf("Var: %v", err)
	}
	if v.Kind != Variable || v.Sym != "v5" || v.Lang != lang1 {
		t.Errorf("Var built %+v", v)
	}
	for _, bad := range []string{"blah", "a", "f1", "r2", "v0"} {
		if _, err := Var(lang1, bad); !errors.Is(err, ErrConstruct) {
			t.Errorf("Var(%q) error = %v, want ErrConstruct", bad, err)
		}
	}
}

func TestConst(t *testing.T) {
	c, err := Const(lang1, "a")
	if err != nil {
		t.Fatalf("Const: %v", err)
	}
	if c.Kind != Constant || c.Sym != "a" {
		t.Errorf("Const built %+v", c)
	}
	for _, bad := range []string{"blah", "v1", "f1", "r2"} {
		if _, err := Const(lang1, bad); !errors.Is(err, ErrConstruct) {
			t.Errorf("Const(%q) error = %v, want ErrConstruct", bad, err)
		}
	}
}

func TestFunc(t *testing.T) {
	v1 := Must(Var(lang1, "v1"))
	a := Must(Const(lang1, "a"))
	ft, err := Func(lang1, "f3", []*Term{v1, a, v1})
	if err != nil {
		t.Fatalf("Func: %v", err)
	}
	if got, want := ft.String(), "f3 v1 a v1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if _, err := Func(lang1, "r2", []*Term{v1, a}); !errors.Is(err, ErrConstruct) {
		t.Errorf("Func with relation symbol: error = %v, want ErrConstruct", err)
	}
	if _, err := Func(lang1, "f3", []*Term{v1, a}); !errors.Is(err, ErrConstruct) {
		t.Errorf("Func arity mismatch: error = %v, want ErrConstruct", err)
	}
	other := Must(Var(lang2, "v1"))
	if _, err := Func(lang1, "f1", []*Term{other}); !errors.Is(err, ErrConstruct) {
		t.Errorf("Func cross-language: error = %v, want ErrConstruct", err)
	}
}

func TestTermEqual(t *testing.T) {
	v5a := Must(Var(lang1, "v5"))
	v5b := Must(Var(lang1, "v5"))
	if !v5a.Equal(v5a) || !v5a.Equal(v5b) {
		t.Error("equal variables compare unequal")
	}
	if v5a.Equal(Must(Var(lang1, "v6"))) {
		t.Error("distinct variables compare equal")
	}
	// Same symbol, different vocabulary instance.
	if v5a.Equal(Must(Var(lang2, "v5"))) {
		t.Error("terms of different languages compare equal")
	}

	f := Must(Func(lang1, "f1", []*Term{v5a}))
	g := Must(Func(lang1, "f1", []*Term{v5b}))
	if !f.Equal(g) {
		t.Error("equal applications compare unequal")
	}
	h := Must(Func(lang1, "f1", []*Term{Must(Const(lang1, "a"))}))
	if f.Equal(h) {
		t.Error("applications with different args compare equal")
	}
}

func TestTermVariableSymbols(t *testing.T) {
	tests := []struct {
		name string
		term *Term
		want map[string]bool
	}{
		{"variable", Must(Var(lang1, "v5")), map[string]bool{"v5": true}},
		{"constant", Must(Const(lang1, "a")), map[string]bool{}},
		{
			"application",
			Must(Func(lang1, "f3", []*Term{
				Must(Var(lang1, "v1")),
				Must(Const(lang1, "b")),
				Must(Func(lang1, "f1", []*Term{Must(Var(lang1, "v2"))})),
			})),
			map[string]bool{"v1": true, "v2": true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.term.VariableSymbols()); diff != "" {
				t.Errorf("VariableSymbols() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
