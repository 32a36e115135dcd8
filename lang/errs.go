package lang

import "errors"

// ErrVocab reports an invalid vocabulary definition: a symbol that
// collides with a logical or variable symbol, contains whitespace, or
// carries a non-positive arity.
var ErrVocab = errors.New("invalid vocabulary")
