package parse

import "errors"

// ErrParse reports a token sequence that does not match the grammar,
// exhausted segmentation search included.
var ErrParse = errors.New("parse error")
