package ir

import "errors"

// ErrConstruct reports an attempt to build an invalid tree: a symbol
// not classified as expected, an argument list not matching the
// declared arity, a malformed variable name, or children from a
// different vocabulary.
var ErrConstruct = errors.New("invalid construction")
