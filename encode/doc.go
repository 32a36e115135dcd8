// Package encode writes terms and formulas as the space-delimited
// symbol sequences package parse accepts, with optional terminal colors
// keyed by symbol class.
//
//	encode.EncodeFormula(f, os.Stdout, encode.WithColors(encode.NewColors()))
//
// Without options the output equals the tree's String rendering.
package encode
