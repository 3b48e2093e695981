package sbd

import "errors"

// ErrNoGraph is returned by Calculate when no graph has been attached via
// SetGraph. Controllability reports ErrNotCalculated instead.
var ErrNoGraph = errors.New("sbd: no graph attached")

// ErrNotCalculated is returned by accessors that require a completed
// Calculate call.
var ErrNotCalculated = errors.New("sbd: calculate has not been run")

// ErrUnsupportedTargeted is returned by Calculate and ClassifyEdges: the SBD
// model does not support restricting control to a target vertex subset
// (spec.md §4.D, netctrl's checkParameters).
var ErrUnsupportedTargeted = errors.New("sbd: targeted control is not supported")

// ErrUnknownMeasure is returned by Controllability when the solver was
// constructed with a Measure value other than NodeMeasure or EdgeMeasure.
var ErrUnknownMeasure = errors.New("sbd: unknown controllability measure")
