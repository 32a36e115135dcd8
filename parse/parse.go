package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skolemize/go-fol/ir"
	"github.com/skolemize/go-fol/lang"
)

// Term parses a space-delimited symbol sequence as a term of l.
func Term(l *lang.Language, s string) (*ir.Term, error) {
	t, err := parseTerm(l, strings.Fields(s))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q as a term", ErrParse, s)
	}
	return t, nil
}

// Formula parses a space-delimited symbol sequence as a formula of l.
func Formula(l *lang.Language, s string) (*ir.Formula, error) {
	f, err := parseFormula(l, strings.Fields(s))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q as a formula", ErrParse, s)
	}
	return f, nil
}

// errNoParse marks a rejected parse attempt inside the segmentation
// search. Callers surface only the uniform ErrParse.
var errNoParse = errors.New("no parse")

func parseTerm(l *lang.Language, toks []string) (*ir.Term, error) {
	if len(toks) == 1 {
		if lang.IsVariableSymbol(toks[0]) {
			return ir.Var(l, toks[0])
		}
		if l.IsConstantSymbol(toks[0]) {
			return ir.Const(l, toks[0])
		}
		return nil, errNoParse
	}
	if len(toks) < 2 {
		return nil, errNoParse
	}
	arity, ok := l.FunctionArity(toks[0])
	if !ok || len(toks) < arity+1 {
		return nil, errNoParse
	}
	if arity == 1 {
		arg, err := parseTerm(l, toks[1:])
		if err != nil {
			return nil, err
		}
		return ir.Func(l, toks[0], []*ir.Term{arg})
	}
	for idx := range splits(2, len(toks), arity-1) {
		args, err := parseTermSlices(l, toks, idx)
		if err != nil {
			continue
		}
		return ir.Func(l, toks[0], args)
	}
	return nil, errNoParse
}

// parseTermSlices parses the argument spans cut out of toks by the
// split points idx: the first span starts after the applied symbol at
// index 1, the last runs to the end.
func parseTermSlices(l *lang.Language, toks []string, idx []int) ([]*ir.Term, error) {
	args := make([]*ir.Term, 0, len(idx)+1)
	start := 1
	for _, end := range idx {
		arg, err := parseTerm(l, toks[start:end])
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		start = end
	}
	arg, err := parseTerm(l, toks[start:])
	if err != nil {
		return nil, err
	}
	return append(args, arg), nil
}

func parseFormula(l *lang.Language, toks []string) (*ir.Formula, error) {
	if len(toks) < 2 {
		return nil, errNoParse
	}
	if toks[0] == "=" {
		// The 2-argument special form of the segmentation
		// search: a single split point at increasing position.
		for split := 2; split < len(toks); split++ {
			t1, err := parseTerm(l, toks[1:split])
			if err != nil {
				continue
			}
			t2, err := parseTerm(l, toks[split:])
			if err != nil {
				continue
			}
			return ir.Eq(l, t1, t2)
		}
		return nil, errNoParse
	}
	if arity, ok := l.RelationArity(toks[0]); ok && len(toks) >= arity+1 {
		if arity == 1 {
			arg, err := parseTerm(l, toks[1:])
			if err != nil {
				return nil, err
			}
			return ir.Rel(l, toks[0], []*ir.Term{arg})
		}
		for idx := range splits(2, len(toks), arity-1) {
			args, err := parseTermSlices(l, toks, idx)
			if err != nil {
				continue
			}
			return ir.Rel(l, toks[0], args)
		}
		return nil, errNoParse
	}

	if toks[0] != "(" || toks[len(toks)-1] != ")" {
		return nil, errNoParse
	}
	if toks[1] == "!!" {
		p, err := parseFormula(l, toks[2:len(toks)-1])
		if err != nil {
			return nil, err
		}
		return ir.Not(p)
	}
	if len(toks) >= 6 && (toks[1] == "AA" || toks[1] == "EE") &&
		lang.IsVariableSymbol(toks[2]) && toks[3] == ")" && toks[4] == "(" {
		p, err := parseFormula(l, toks[5:len(toks)-1])
		if err != nil {
			return nil, err
		}
		if toks[1] == "AA" {
			return ir.ForAll(toks[2], p)
		}
		return ir.Exists(toks[2], p)
	}

	ci, err := topLevelConnective(toks)
	if err != nil {
		return nil, err
	}
	p, err := parseFormula(l, toks[1:ci])
	if err != nil {
		return nil, err
	}
	q, err := parseFormula(l, toks[ci+1:len(toks)-1])
	if err != nil {
		return nil, err
	}
	switch toks[ci] {
	case "||":
		return ir.Or(p, q)
	case "&&":
		return ir.And(p, q)
	case "->":
		return ir.Implies(p, q)
	case "<->":
		return ir.Iff(p, q)
	}
	return nil, errNoParse
}

// topLevelConnective locates the binary connective of a formula shaped
// "( P C Q )": the first of "|| && -> <->" occurring at parenthesis
// depth exactly 1. The index must be strictly interior to the bracketed
// span so that both P and Q are non-empty.
func topLevelConnective(toks []string) (int, error) {
	depth := 0
	at := -1
scan:
	for i, tok := range toks {
		switch tok {
		case "(":
			depth++
		case ")":
			depth--
		case "||", "&&", "->", "<->":
			if depth == 1 {
				at = i
				break scan
			}
		}
	}
	if 1 < at && at < len(toks)-2 {
		return at, nil
	}
	return 0, errNoParse
}
