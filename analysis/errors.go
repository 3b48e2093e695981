package analysis

import "errors"

// ErrNoGraph is returned by Run and its per-mode methods when no graph has
// been attached to the orchestrator.
var ErrNoGraph = errors.New("analysis: no graph attached")

// ErrUnknownMode is returned by Run when given a Mode value other than the
// five defined constants.
var ErrUnknownMode = errors.New("analysis: unknown mode")

// ErrUnknownModelKind is returned by NewOrchestrator when given a ModelKind
// value other than LiuModel or SwitchboardModel.
var ErrUnknownModelKind = errors.New("analysis: unknown model kind")
