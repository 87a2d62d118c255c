// SPDX-License-Identifier: MIT
// Package: dtpcentrality/label
//
// types.go — the Label interface and the shared VisitedSet/base fields
// every concrete label flavour embeds.

package label

import "github.com/egoa-go/dtpcentrality/graph"

// None mirrors graph.None: the sentinel used for "no predecessor" on a
// source label's PrevVertex/PrevLabelIndex.
const None = graph.None

// VisitedSet is the set of vertex identifiers already on a label's
// path, used to reject cycles (§3, §9 "visited-vertex sets per
// label"). It is copy-on-write: Plus never mutates the receiver, so
// two labels can share history up to the point they diverge without
// aliasing each other's future.
type VisitedSet map[int]struct{}

// NewVisitedSet returns a VisitedSet containing exactly the given ids.
func NewVisitedSet(ids ...int) VisitedSet {
	s := make(VisitedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports whether v is a member.
func (s VisitedSet) Has(v int) bool {
	_, ok := s[v]

	return ok
}

// Plus returns a new VisitedSet equal to s with v added, and true — or,
// if v was already a member, the unmodified set and false so the
// caller can detect and discard the would-be cycle.
func (s VisitedSet) Plus(v int) (VisitedSet, bool) {
	if s.Has(v) {
		return s, false
	}
	next := make(VisitedSet, len(s)+1)
	for id := range s {
		next[id] = struct{}{}
	}
	next[v] = struct{}{}

	return next, true
}

// Label is the common shape both label flavours implement (§4.2). An
// engine instance is parameterised over exactly one concrete Label
// type for its entire lifetime; Less and Dominates may assume their
// argument shares the receiver's concrete type and will panic via a
// failed type assertion otherwise — a programmer error, not a runtime
// condition this package recovers from.
type Label interface {
	// Vertex is the endpoint this label is attached to.
	Vertex() int

	// PrevVertex, PrevLabelIndex form the back-pointer into another
	// vertex's processed label sequence, or None at the source.
	PrevVertex() int
	PrevLabelIndex() int
	// SetPrev assigns the back-pointer; called once by the engine
	// immediately after Extend produces this label.
	SetPrev(vertex, labelIndex int)

	// Visited is the set of vertices already on this label's path.
	Visited() VisitedSet

	// Index is this label's position in its vertex's processed
	// sequence once popped, or None while still unprocessed.
	Index() int
	SetIndex(i int)

	// Valid reports whether this label has been invalidated by a
	// dominating label while still sitting unprocessed in a bucket.
	Valid() bool
	SetValid(v bool)

	// Value is the scalar objective used to select Pareto-optima
	// within a bucket: bnorm for single-criterion, bnorm*minCap for
	// two-criterion.
	Value() float64

	// Less defines the strict total order used for priority-queueing:
	// lexicographic by bnorm, tiebreak by minCap descending (single
	// -criterion labels compare by bnorm alone, then by vertex id to
	// keep the order total).
	Less(other Label) bool

	// Dominates reports whether the receiver dominates other under crit.
	Dominates(other Label, crit DominationCriterion) bool

	// Extend relaxes this label across edge e (read under carrier c)
	// and returns the resulting label at e.Other(l.Vertex()) together
	// with true, or (nil, false) if doing so would revisit a vertex
	// already on this label's path (a cycle).
	Extend(e *graph.Edge, c graph.Carrier) (Label, bool)
}

// base holds the fields common to both label flavours. It is not
// itself a Label; each concrete type embeds it and adds its own Value,
// Less, Dominates and Extend.
type base struct {
	vertex         int
	prevVertex     int
	prevLabelIndex int
	visited        VisitedSet
	valid          bool
	index          int
}

func newBase(vertex int, visited VisitedSet) base {
	return base{
		vertex:         vertex,
		prevVertex:     None,
		prevLabelIndex: None,
		visited:        visited,
		valid:          true,
		index:          None,
	}
}

func (b *base) Vertex() int             { return b.vertex }
func (b *base) PrevVertex() int         { return b.prevVertex }
func (b *base) PrevLabelIndex() int     { return b.prevLabelIndex }
func (b *base) SetPrev(vertex, idx int) { b.prevVertex = vertex; b.prevLabelIndex = idx }
func (b *base) Visited() VisitedSet     { return b.visited }
func (b *base) Index() int              { return b.index }
func (b *base) SetIndex(i int)          { b.index = i }
func (b *base) Valid() bool             { return b.valid }
func (b *base) SetValid(v bool)         { b.valid = v }
