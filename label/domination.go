// SPDX-License-Identifier: MIT
// Package: dtpcentrality/label
//
// domination.go — the DominationCriterion enum and the epsilon-aware
// real-number comparisons every label flavour's Dominates implements against.

package label

import "math"

// Epsilon is the tolerance used for real-number equality throughout
// this package, consistent with the project's one shared constant
// (§4.2: "equality between reals uses an epsilon tolerance consistent
// with the project's shared constant").
const Epsilon = 1e-9

// DominationCriterion selects which comparisons between two labels at
// the same vertex count as domination during a bucket merge (§4.4).
type DominationCriterion int

const (
	// DominationNone disables pruning: no label ever dominates another.
	DominationNone DominationCriterion = iota
	// DominationWeak treats component-wise <= (including exact ties) as domination.
	DominationWeak
	// DominationStrict requires component-wise <= with at least one strict inequality.
	DominationStrict
)

// String implements fmt.Stringer for DominationCriterion.
func (d DominationCriterion) String() string {
	switch d {
	case DominationNone:
		return "None"
	case DominationWeak:
		return "Weak"
	case DominationStrict:
		return "Strict"
	default:
		return "DominationCriterion(?)"
	}
}

// approxEqual reports whether a and b are equal within Epsilon.
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// leq reports a <= b within Epsilon tolerance.
func leq(a, b float64) bool {
	return a < b || approxEqual(a, b)
}

// geq reports a >= b within Epsilon tolerance.
func geq(a, b float64) bool {
	return a > b || approxEqual(a, b)
}
