package engine

import "errors"

// ErrMalformed reports an instruction that matched a rule's trigger
// but whose captured text could not be rendered into valid code, such
// as a dictionary pair without exactly one ":" separator. It is
// distinct from the Unrecognized marker: the instruction did match a
// template. Callers test for it with errors.Is.
var ErrMalformed = errors.New("malformed instruction")
