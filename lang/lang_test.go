package lang

import (
	"errors"
	"testing"
)

func TestIsVariableSymbol(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"v1", true},
		{"v23", true},
		{"v907", true},
		{"v0", false},
		{"v01", false},
		{"v", false},
		{"v-1", false},
		{"x1", false},
		{"", false},
		{"v1 ", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := IsVariableSymbol(tt.s); got != tt.want {
				t.Errorf("IsVariableSymbol(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestIsLogicalSymbol(t *testing.T) {
	for _, s := range []string{"(", ")", "||", "!!", "AA", "=", "&&", "->", "<->", "EE"} {
		if !IsLogicalSymbol(s) {
			t.Errorf("IsLogicalSymbol(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"v1", "f1", "", "|"} {
		if IsLogicalSymbol(s) {
			t.Errorf("IsLogicalSymbol(%q) = true, want false", s)
		}
	}
}

func TestVariableIndex(t *testing.T) {
	n, err := VariableIndex("v23")
	if err != nil || n != 23 {
		t.Errorf("VariableIndex(v23) = %d, %v, want 23, nil", n, err)
	}
	if _, err := VariableIndex("w23"); !errors.Is(err, ErrVocab) {
		t.Errorf("VariableIndex(w23) error = %v, want ErrVocab", err)
	}
}

func TestNew(t *testing.T) {
	l, err := New([]string{"a", "b", "c"}, map[string]int{"f1": 1, "f3": 3}, map[string]int{"r2": 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !l.IsConstantSymbol("a") || l.IsConstantSymbol("f1") || l.IsConstantSymbol("v1") {
		t.Error("IsConstantSymbol misclassifies")
	}
	if n, ok := l.FunctionArity("f3"); !ok || n != 3 {
		t.Errorf("FunctionArity(f3) = %d, %v", n, ok)
	}
	if _, ok := l.FunctionArity("r2"); ok {
		t.Error("FunctionArity(r2) should be absent")
	}
	if n, ok := l.RelationArity("r2"); !ok || n != 2 {
		t.Errorf("RelationArity(r2) = %d, %v", n, ok)
	}
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name      string
		constants []string
		functions map[string]int
		relations map[string]int
	}{
		{"variable constant", []string{"v1"}, nil, nil},
		{"logical constant", []string{"||"}, nil, nil},
		{"shorthand constant", []string{"EE"}, nil, nil},
		{"whitespace", []string{"a b"}, nil, nil},
		{"empty symbol", []string{""}, nil, nil},
		{"zero arity", nil, map[string]int{"f": 0}, nil},
		{"negative arity", nil, nil, map[string]int{"r": -1}},
		{"constant function overlap", []string{"a"}, map[string]int{"a": 1}, nil},
		{"function relation overlap", nil, map[string]int{"g": 1}, map[string]int{"g": 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.constants, tt.functions, tt.relations); !errors.Is(err, ErrVocab) {
				t.Errorf("New error = %v, want ErrVocab", err)
			}
		})
	}
}

func TestFromYAML(t *testing.T) {
	l, err := FromYAML([]byte("constants: [a, b]\nfunctions: {f1: 1}\nrelations: {r2: 2}\n"))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if !l.IsConstantSymbol("b") {
		t.Error("constant b missing")
	}
	if n, _ := l.RelationArity("r2"); n != 2 {
		t.Errorf("relation arity = %d, want 2", n)
	}
	if _, err := FromYAML([]byte("constants: [v7]")); !errors.Is(err, ErrVocab) {
		t.Errorf("FromYAML error = %v, want ErrVocab", err)
	}
}
