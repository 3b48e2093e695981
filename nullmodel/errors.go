package nullmodel

import "errors"

// ErrNoGraph is returned by Run when the observed graph is nil.
var ErrNoGraph = errors.New("nullmodel: no graph supplied")

// ErrNeedRandSource is returned by Run when no random source was configured
// via WithRand. A source is always required: even the Erdős–Rényi and
// plain configuration-model ensembles depend on the generator's own RNG,
// and the shuffled configuration model additionally needs one to permute
// the degree sequences.
var ErrNeedRandSource = errors.New("nullmodel: random source required")

// ErrTrialFailed wraps any error raised by a single trial's graph
// generation or solver run. Per spec.md §5, a failed trial invalidates the
// whole significance run; there is no partial-success reporting.
var ErrTrialFailed = errors.New("nullmodel: trial failed")
