// SPDX-License-Identifier: MIT
// Package: dtpcentrality/label
//
// voltage.go — the two-criterion VoltageAngleDifferenceLabel.

package label

import (
	"math"

	"github.com/egoa-go/dtpcentrality/graph"
)

// VoltageAngleDifferenceLabel carries the pair (Bnorm, MinCap): the
// running susceptance-norm sum and the minimum thermal limit seen
// along the path so far (§3 "Voltage-angle-difference label"). Its
// scalar Value is Bnorm*MinCap.
type VoltageAngleDifferenceLabel struct {
	base
	Bnorm  float64
	MinCap float64
}

// NewVoltageAngleDifferenceSourceLabel returns the zero-key label for
// vertex s: Bnorm=0, MinCap=+Inf, Visited={s}, no predecessor.
func NewVoltageAngleDifferenceSourceLabel(s int) *VoltageAngleDifferenceLabel {
	return &VoltageAngleDifferenceLabel{
		base:   newBase(s, NewVisitedSet(s)),
		Bnorm:  0,
		MinCap: math.Inf(1),
	}
}

// Value returns Bnorm*MinCap.
func (l *VoltageAngleDifferenceLabel) Value() float64 { return l.Bnorm * l.MinCap }

// Less orders labels lexicographically by Bnorm, tiebreaking on MinCap
// descending (larger capacity is "better", §4.2), then by vertex id.
func (l *VoltageAngleDifferenceLabel) Less(other Label) bool {
	o := other.(*VoltageAngleDifferenceLabel)
	if !approxEqual(l.Bnorm, o.Bnorm) {
		return l.Bnorm < o.Bnorm
	}
	if !approxEqual(l.MinCap, o.MinCap) {
		return l.MinCap > o.MinCap
	}

	return l.vertex < o.vertex
}

// Dominates implements the two-component Pareto comparison of §4.2/§4.4:
// lower Bnorm and higher MinCap are both "better".
func (l *VoltageAngleDifferenceLabel) Dominates(other Label, crit DominationCriterion) bool {
	if crit == DominationNone {
		return false
	}
	o := other.(*VoltageAngleDifferenceLabel)
	betterOrEqual := leq(l.Bnorm, o.Bnorm) && geq(l.MinCap, o.MinCap)
	if !betterOrEqual {
		return false
	}
	if crit == DominationWeak {
		return true
	}

	// DominationStrict: at least one component must be strictly better.
	return !approxEqual(l.Bnorm, o.Bnorm) || !approxEqual(l.MinCap, o.MinCap)
}

// Extend implements label + edge for the two-criterion label: new
// Bnorm = Bnorm + 1/|b(e)|, new MinCap = min(MinCap, cap(e)).
func (l *VoltageAngleDifferenceLabel) Extend(e *graph.Edge, c graph.Carrier) (Label, bool) {
	v := e.Other(l.vertex)
	visited, inserted := l.visited.Plus(v)
	if !inserted {
		return nil, false
	}

	b := math.Abs(e.Susceptance(c))
	next := &VoltageAngleDifferenceLabel{
		base:   newBase(v, visited),
		Bnorm:  l.Bnorm + 1/b,
		MinCap: math.Min(l.MinCap, e.Capacity),
	}

	return next, true
}
