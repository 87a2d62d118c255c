// Package label implements the Pareto-key label algebra the DTP engine
// relaxes edges over (§4.2).
//
// A Label is an immutable-after-construction record attached to a
// vertex, representing one partial path from a source. Two concrete
// flavours are provided:
//
//   - SusceptanceNormLabel carries a single scalar bnorm = Σ 1/|b(e)|.
//   - VoltageAngleDifferenceLabel carries the pair (bnorm, minCap) with
//     minCap = min_e cap(e) along the path; its scalar Value is
//     bnorm * minCap.
//
// Both satisfy the Label interface, so pqueue, bucket, and dtp are
// written once against Label and serve either flavour unchanged — the
// same "generic on its trait, not on a type parameter" shape the
// teacher's packages use throughout (no package in the retrieved
// katalvlaran/lvlath pack reaches for Go generics; this module follows
// that texture and expresses genericity through interfaces instead).
//
// DominationCriterion (None, Weak, Strict) is a small enum controlling
// which pairs of labels at the same vertex are considered comparable
// for pruning; it is supplied once per engine instance, not per call.
package label
