// Package analysis implements the orchestrator described in spec.md §4.H:
// given a model selection (Liu or Switchboard), a mode selection, and a
// graph, it dispatches to one of five outputs — drivers, control paths,
// statistics, significance, or an annotated graph — following
// netctrl's ui/main.cpp (NetworkControllabilityApp::run and its
// runDriverNodes/runControlPaths/runStatistics/runSignificance/runGraph).
//
// analysis is the package that exposes Prometheus collectors and does
// most of the module's log/slog reporting; matching, controlpath, and sbd
// are silent, pure computation, and liu only logs its rare forced-driver
// fallback.
package analysis
