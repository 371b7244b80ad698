package mk

import "errors"

// ErrNoInput means the input pattern matched nothing, even after stepping
// up to the parent directory.
var ErrNoInput = errors.New("no mkfiles found")
