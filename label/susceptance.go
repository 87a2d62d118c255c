// SPDX-License-Identifier: MIT
// Package: dtpcentrality/label
//
// susceptance.go — the single-criterion SusceptanceNormLabel.

package label

import (
	"math"

	"github.com/egoa-go/dtpcentrality/graph"
)

// SusceptanceNormLabel carries a single scalar key: the running sum of
// 1/|b(e)| along the path (§3 "Susceptance-norm label").
type SusceptanceNormLabel struct {
	base
	Bnorm float64
}

// NewSusceptanceNormSourceLabel returns the zero-key label for vertex s:
// Bnorm=0, Visited={s}, no predecessor.
func NewSusceptanceNormSourceLabel(s int) *SusceptanceNormLabel {
	return &SusceptanceNormLabel{base: newBase(s, NewVisitedSet(s)), Bnorm: 0}
}

// Value returns Bnorm, the scalar used for Pareto-optima selection.
func (l *SusceptanceNormLabel) Value() float64 { return l.Bnorm }

// Less orders labels lexicographically by Bnorm, then by vertex id so
// the order is total even when two labels tie exactly.
func (l *SusceptanceNormLabel) Less(other Label) bool {
	o := other.(*SusceptanceNormLabel)
	if !approxEqual(l.Bnorm, o.Bnorm) {
		return l.Bnorm < o.Bnorm
	}

	return l.vertex < o.vertex
}

// Dominates implements the one-component version of §4.4's criterion.
func (l *SusceptanceNormLabel) Dominates(other Label, crit DominationCriterion) bool {
	if crit == DominationNone {
		return false
	}
	o := other.(*SusceptanceNormLabel)
	if crit == DominationWeak {
		return leq(l.Bnorm, o.Bnorm)
	}

	// DominationStrict
	return l.Bnorm < o.Bnorm && !approxEqual(l.Bnorm, o.Bnorm)
}

// Extend implements label + edge (§4.2): new Bnorm = Bnorm + 1/|b(e)|,
// new vertex = e.Other(l.Vertex()), new Visited = Visited ∪ {new vertex}.
// Returns (nil, false) if the neighbour is already on this path.
func (l *SusceptanceNormLabel) Extend(e *graph.Edge, c graph.Carrier) (Label, bool) {
	v := e.Other(l.vertex)
	visited, inserted := l.visited.Plus(v)
	if !inserted {
		return nil, false
	}

	b := math.Abs(e.Susceptance(c))
	next := &SusceptanceNormLabel{
		base:  newBase(v, visited),
		Bnorm: l.Bnorm + 1/b,
	}

	return next, true
}
