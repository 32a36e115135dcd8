package ir

import (
	"fmt"
	"strings"

	"github.com/skolemize/go-fol/lang"
)

// Term is a term of a first order language: a variable, a constant
// symbol, or an n-ary function symbol applied to n terms. See the
// package documentation for the Kind/field layout.
type Term struct {
	Kind TermKind
	Sym  string
	Args []*Term
	Lang *lang.Language
}

// Var builds the term consisting of the single variable symbol name.
func Var(l *lang.Language, name string) (*Term, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil language", ErrConstruct)
	}
	if !lang.IsVariableSymbol(name) {
		return nil, fmt.Errorf("%w: not a variable symbol: %q", ErrConstruct, name)
	}
	return &Term{Kind: Variable, Sym: name, Lang: l}, nil
}

// Const builds the term consisting of the single constant symbol name.
func Const(l *lang.Language, name string) (*Term, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil language", ErrConstruct)
	}
	if !l.IsConstantSymbol(name) {
		return nil, fmt.Errorf("%w: not a constant symbol: %q", ErrConstruct, name)
	}
	return &Term{Kind: Constant, Sym: name, Lang: l}, nil
}

// Func builds the application of function symbol f to args. The number
// of arguments must equal the declared arity of f and every argument
// must belong to l.
func Func(l *lang.Language, f string, args []*Term) (*Term, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil language", ErrConstruct)
	}
	arity, ok := l.FunctionArity(f)
	if !ok {
		return nil, fmt.Errorf("%w: not a function symbol: %q", ErrConstruct, f)
	}
	if len(args) != arity {
		return nil, fmt.Errorf("%w: %d args given for %d-ary symbol %q",
			ErrConstruct, len(args), arity, f)
	}
	own := make([]*Term, len(args))
	for i, arg := range args {
		if arg == nil || arg.Lang != l {
			return nil, fmt.Errorf("%w: argument %d of %q is not a term of the language",
				ErrConstruct, i, f)
		}
		own[i] = arg
	}
	return &Term{Kind: FuncApp, Sym: f, Args: own, Lang: l}, nil
}

// Must unwraps a constructor result, panicking on error. It is meant
// for fixed trees whose validity is known up front.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// String renders t as the space-delimited symbol sequence accepted by
// parse.Term.
func (t *Term) String() string {
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}

func (t *Term) render(sb *strings.Builder) {
	switch t.Kind {
	case Variable, Constant:
		sb.WriteString(t.Sym)
	case FuncApp:
		sb.WriteString(t.Sym)
		for _, arg := range t.Args {
			sb.WriteByte(' ')
			arg.render(sb)
		}
	}
}

// Equal reports deep value equality: same kind, same symbols, same
// children in order, same vocabulary identity.
func (t *Term) Equal(o *Term) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	if t.Kind != o.Kind || t.Sym != o.Sym || t.Lang != o.Lang || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// VariableSymbols returns the set of variable symbols occurring in t.
// Every variable occurrence in a term is free.
func (t *Term) VariableSymbols() map[string]bool {
	vs := map[string]bool{}
	t.addVariableSymbols(vs)
	return vs
}

func (t *Term) addVariableSymbols(vs map[string]bool) {
	switch t.Kind {
	case Variable:
		vs[t.Sym] = true
	case FuncApp:
		for _, arg := range t.Args {
			arg.addVariableSymbols(vs)
		}
	}
}
