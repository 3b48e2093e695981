package analysis

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// EdgeClass unifies liu.EdgeClass and sbd.EdgeClass into the single
// four-valued vocabulary netctrl's edgeClassToString renders: a Liu
// problem never produces Distinguished, an SBD problem never produces
// Ordinary.
type EdgeClass int

const (
	EdgeRedundant EdgeClass = iota
	EdgeOrdinary
	EdgeCritical
	EdgeDistinguished
)

// String renders the class using netctrl's edgeClassToString vocabulary.
func (c EdgeClass) String() string {
	switch c {
	case EdgeRedundant:
		return "redundant"
	case EdgeOrdinary:
		return "ordinary"
	case EdgeCritical:
		return "critical"
	case EdgeDistinguished:
		return "distinguished"
	default:
		return "unknown"
	}
}

// DriverNode is one entry of a DriversResult: a vertex index plus, when the
// graph exposes one, its human-readable name.
type DriverNode struct {
	Index int
	Name  string
}

// DriversResult is the "drivers" mode's output (spec.md §6).
type DriversResult struct {
	Nodes []DriverNode
}

// String renders one driver per line, preferring the vertex name when
// available, matching netctrl's runDriverNodes.
func (r DriversResult) String() string {
	var b strings.Builder
	for _, n := range r.Nodes {
		if n.Name != "" {
			b.WriteString(n.Name)
		} else {
			fmt.Fprintf(&b, "%d", n.Index)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ControlPathsResult is the "control_paths" mode's output.
type ControlPathsResult struct {
	Paths []string
}

// String renders one path per line, matching netctrl's runControlPaths.
func (r ControlPathsResult) String() string {
	return strings.Join(r.Paths, "\n") + "\n"
}

// StatisticsResult is the "statistics" mode's output: raw counts plus
// their fractions, matching netctrl's runStatistics.
type StatisticsResult struct {
	VertexCount, EdgeCount int

	DriverCount int
	Distinguished, Redundant, Ordinary, Critical int
}

// String renders two space-separated rows: counts, then fractions, in the
// order "driver distinguished redundant ordinary critical", matching
// netctrl's runStatistics output.
func (r StatisticsResult) String() string {
	n, m := float64(r.VertexCount), float64(r.EdgeCount)
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d %d %d\n", r.DriverCount, r.Distinguished, r.Redundant, r.Ordinary, r.Critical)
	fmt.Fprintf(&b, "%g %g %g %g %g\n",
		float64(r.DriverCount)/n,
		float64(r.Distinguished)/m,
		float64(r.Redundant)/m,
		float64(r.Ordinary)/m,
		float64(r.Critical)/m,
	)
	return b.String()
}

// SignificanceResult is the "significance" mode's output: observed
// controllability plus the three null-model averages, matching netctrl's
// runSignificance ("Observed", "ER", "Configuration",
// "Configuration_no_joint").
type SignificanceResult struct {
	RunID uuid.UUID

	Observed              float64
	ErdosRenyi            float64
	Configuration         float64
	ConfigurationNoJoint  float64
}

// String renders four labelled rows, matching netctrl's tab-separated
// runSignificance output.
func (r SignificanceResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Observed\t%g\n", r.Observed)
	fmt.Fprintf(&b, "ER\t%g\n", r.ErdosRenyi)
	fmt.Fprintf(&b, "Configuration\t%g\n", r.Configuration)
	fmt.Fprintf(&b, "Configuration_no_joint\t%g\n", r.ConfigurationNoJoint)
	return b.String()
}
