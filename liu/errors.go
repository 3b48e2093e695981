package liu

import "errors"

// ErrNoGraph is returned by Calculate when no graph has been attached via
// SetGraph (spec.md §7's "invalid-state"). Controllability reports
// ErrNotCalculated instead.
var ErrNoGraph = errors.New("liu: no graph attached")

// ErrNotCalculated is returned by accessors that require a completed
// Calculate call.
var ErrNotCalculated = errors.New("liu: calculate has not been run")

// ErrUnsupportedTargeted is returned by Calculate when the solver has been
// restricted to a target set. Targeted control is treated
// as experimental per spec.md's Open Questions and is not implemented; the
// only supported behavior is to surface this error (spec.md §7's
// "unsupported-operation").
var ErrUnsupportedTargeted = errors.New("liu: targeted control is not supported")
