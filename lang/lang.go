package lang

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// The primitive logical symbols common to all first order languages. To
// keep the symbol set ASCII, "||" stands for the disjunction symbol
// (U+2228), "!!" for negation (U+00AC) and "AA" for universal
// quantification (U+2200).
var primitiveSymbols = map[string]bool{
	"(":  true,
	")":  true,
	"||": true,
	"!!": true,
	"AA": true,
	"=":  true,
}

// Shorthand logical symbols accepted by the parser and desugared to the
// primitives: "&&" conjunction, "->" implication, "<->" equivalence,
// "EE" existential quantification.
var shorthandSymbols = map[string]bool{
	"&&":  true,
	"->":  true,
	"<->": true,
	"EE":  true,
}

var varSymbolRE = regexp.MustCompile(`^v[1-9][0-9]*$`)

// IsVariableSymbol reports whether s is a variable symbol: the letter
// 'v' followed by a positive integer with no leading zero.
func IsVariableSymbol(s string) bool {
	return varSymbolRE.MatchString(s)
}

// IsLogicalSymbol reports whether s is a primitive or shorthand logical
// symbol.
func IsLogicalSymbol(s string) bool {
	return primitiveSymbols[s] || shorthandSymbols[s]
}

// VariableIndex returns n for a variable symbol "vn".
func VariableIndex(v string) (int, error) {
	if !IsVariableSymbol(v) {
		return 0, fmt.Errorf("%w: not a variable symbol: %q", ErrVocab, v)
	}
	return strconv.Atoi(v[1:])
}

// IsValidNonLogicalSymbol reports whether s can serve as a constant,
// function, or relation symbol: non-empty, whitespace free, and not
// colliding with any logical or variable symbol.
func IsValidNonLogicalSymbol(s string) bool {
	if s == "" || IsLogicalSymbol(s) || IsVariableSymbol(s) {
		return false
	}
	return strings.IndexFunc(s, isSpace) < 0
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Language is the vocabulary of a first order language: its constant
// symbols and its function and relation symbols with their arities.
// A Language is immutable after construction and safe to share across
// goroutines. Trees reference their Language; it must outlive them.
type Language struct {
	constants map[string]bool
	functions map[string]int
	relations map[string]int
}

// New builds a Language from the given constant symbols and the
// symbol-to-arity maps of function and relation symbols. The three
// symbol sets must be pairwise disjoint, every symbol must be a valid
// non-logical symbol, and every arity must be positive.
func New(constants []string, functions, relations map[string]int) (*Language, error) {
	l := &Language{
		constants: make(map[string]bool, len(constants)),
		functions: make(map[string]int, len(functions)),
		relations: make(map[string]int, len(relations)),
	}
	for _, c := range constants {
		if !IsValidNonLogicalSymbol(c) {
			return nil, fmt.Errorf("%w: invalid constant symbol %q", ErrVocab, c)
		}
		l.constants[c] = true
	}
	for f, n := range functions {
		if !IsValidNonLogicalSymbol(f) {
			return nil, fmt.Errorf("%w: invalid function symbol %q", ErrVocab, f)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: function symbol %q has arity %d", ErrVocab, f, n)
		}
		if l.constants[f] {
			return nil, fmt.Errorf("%w: symbol %q is both constant and function", ErrVocab, f)
		}
		l.functions[f] = n
	}
	for r, n := range relations {
		if !IsValidNonLogicalSymbol(r) {
			return nil, fmt.Errorf("%w: invalid relation symbol %q", ErrVocab, r)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: relation symbol %q has arity %d", ErrVocab, r, n)
		}
		if l.constants[r] {
			return nil, fmt.Errorf("%w: symbol %q is both constant and relation", ErrVocab, r)
		}
		if _, ok := l.functions[r]; ok {
			return nil, fmt.Errorf("%w: symbol %q is both function and relation", ErrVocab, r)
		}
		l.relations[r] = n
	}
	return l, nil
}

// MustNew is New panicking on error, for fixed vocabularies in tests
// and examples.
func MustNew(constants []string, functions, relations map[string]int) *Language {
	l, err := New(constants, functions, relations)
	if err != nil {
		panic(err)
	}
	return l
}

// IsConstantSymbol reports whether s is a constant symbol of l.
func (l *Language) IsConstantSymbol(s string) bool {
	return l.constants[s]
}

// FunctionArity returns the arity of function symbol s, or false if s
// is not a function symbol of l.
func (l *Language) FunctionArity(s string) (int, bool) {
	n, ok := l.functions[s]
	return n, ok
}

// RelationArity returns the arity of relation symbol s, or false if s
// is not a relation symbol of l.
func (l *Language) RelationArity(s string) (int, bool) {
	n, ok := l.relations[s]
	return n, ok
}

func (l *Language) String() string {
	var sb strings.Builder
	sb.WriteString("constants:")
	for _, c := range sortedKeys(l.constants) {
		sb.WriteString(" ")
		sb.WriteString(c)
	}
	sb.WriteString("\nfunctions:")
	for _, f := range sortedKeys(l.functions) {
		fmt.Fprintf(&sb, " %s/%d", f, l.functions[f])
	}
	sb.WriteString("\nrelations:")
	for _, r := range sortedKeys(l.relations) {
		fmt.Fprintf(&sb, " %s/%d", r, l.relations[r])
	}
	return sb.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
