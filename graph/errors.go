// SPDX-License-Identifier: MIT
// Package: dtpcentrality/graph
//
// errors.go — sentinel errors for graph construction.
//
// Error policy: construction-time misuse (bad endpoints, non-positive
// thermal limit, zero susceptance) returns a sentinel error. Post-
// construction access by an invalid id is a programmer error and
// panics — see VertexAt/EdgeAt in types.go.

package graph

import "errors"

var (
	// ErrVertexNotFound indicates AddEdge referenced a vertex id outside [0, NumberOfVertices).
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrZeroSusceptance indicates an edge was given a zero susceptance value,
	// which would make 1/|b(e)| infinite.
	ErrZeroSusceptance = errors.New("graph: susceptance must be nonzero")

	// ErrNonPositiveCapacity indicates an edge was given a non-positive thermal limit.
	ErrNonPositiveCapacity = errors.New("graph: capacity must be positive")
)
