package subst

import "errors"

// ErrUnsatisfiable reports that no term can witness the claimed
// substitution: the pattern and result are structurally incompatible,
// or different occurrences of the variable demand different witnesses.
var ErrUnsatisfiable = errors.New("unsatisfiable substitution")
