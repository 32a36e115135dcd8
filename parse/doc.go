// Package parse reconstructs first order terms and formulas from flat,
// space-delimited symbol sequences.
//
// # Usage
//
//	l := lang.MustNew([]string{"a"}, map[string]int{"f3": 3}, map[string]int{"r2": 2})
//	f, err := parse.Formula(l, "( AA v1 ) ( r2 v1 a )")
//	t, err := parse.Term(l, "f3 v1 a v2")
//
// The grammar has no argument delimiters, so an n-ary application is
// segmented by search: candidate split points are tried in increasing
// lexicographic order and the first segmentation whose slices all parse
// wins. The search is exponential in the worst case; that is inherent
// to the grammar, not a defect.
//
// All failures are ErrParse errors and no partial tree ever escapes.
//
// # Related Packages
//
//   - github.com/skolemize/go-fol/ir - the trees produced here
//   - github.com/skolemize/go-fol/lang - the vocabulary consulted for
//     symbol classification and arities
package parse
