// SPDX-License-Identifier: MIT
// Package: dtpcentrality/pqueue
//
// mappingheap.go — a vertex-keyed min-heap with true decrease-key,
// used as the DTP engine's global frontier Q (§4.3, §4.5).

package pqueue

import (
	"container/heap"

	"github.com/egoa-go/dtpcentrality/label"
)

// mapEntry is one (vertex, key) pair tracked by MappingHeap, plus its
// current position in the internal array so Delete/ChangeKey can
// locate it in O(log n) instead of scanning.
type mapEntry struct {
	vertex int
	key    label.Label
	idx    int
}

type entryHeap []*mapEntry

func (h entryHeap) Len() int            { return len(h) }
func (h entryHeap) Less(i, j int) bool  { return h[i].key.Less(h[j].key) }
func (h entryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].idx = i; h[j].idx = j }
func (h *entryHeap) Push(x interface{}) {
	e := x.(*mapEntry)
	e.idx = len(*h)
	*h = append(*h, e)
}
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}

// MappingHeap maps each vertex that currently owns an unprocessed
// label to its best label, and supports O(log n) decrease-key.
//
// Complexity: Top O(1); Insert/ChangeKey/Delete/DeleteTop O(log n);
// HasKeyOf/KeyOf O(1).
type MappingHeap struct {
	h        entryHeap
	byVertex map[int]*mapEntry
}

// NewMappingHeap returns an empty, ready-to-use MappingHeap.
func NewMappingHeap() *MappingHeap {
	return &MappingHeap{byVertex: make(map[int]*mapEntry)}
}

// Len returns the number of vertices currently tracked.
func (m *MappingHeap) Len() int { return len(m.h) }

// Empty reports whether no vertex is currently tracked.
func (m *MappingHeap) Empty() bool { return len(m.h) == 0 }

// HasKeyOf reports whether vertex currently has an entry.
func (m *MappingHeap) HasKeyOf(vertex int) bool {
	_, ok := m.byVertex[vertex]

	return ok
}

// KeyOf returns the label currently stored for vertex.
//
// Precondition: HasKeyOf(vertex); violating it is a programmer error
// (nil map lookup panics on use, consistent with §4.3's failure model).
func (m *MappingHeap) KeyOf(vertex int) label.Label {
	return m.byVertex[vertex].key
}

// Insert adds a new (vertex, l) entry.
//
// Precondition: !HasKeyOf(vertex); inserting a vertex that already has
// an entry is a programmer error — callers should use ChangeKey
// instead, per §4.5's "insert if v has no entry; else decrease-key".
func (m *MappingHeap) Insert(vertex int, l label.Label) {
	e := &mapEntry{vertex: vertex, key: l}
	m.byVertex[vertex] = e
	heap.Push(&m.h, e)
}

// ChangeKey updates the label stored for vertex and restores the heap
// invariant. It is correct whether newLabel is smaller or larger than
// the current key (Fix re-sifts in either direction); the engine only
// ever calls it to decrease a key, per §4.5.
//
// Precondition: HasKeyOf(vertex).
func (m *MappingHeap) ChangeKey(vertex int, newLabel label.Label) {
	e := m.byVertex[vertex]
	e.key = newLabel
	heap.Fix(&m.h, e.idx)
}

// Delete removes vertex's entry, if present, and reports whether one was removed.
func (m *MappingHeap) Delete(vertex int) bool {
	e, ok := m.byVertex[vertex]
	if !ok {
		return false
	}
	heap.Remove(&m.h, e.idx)
	delete(m.byVertex, vertex)

	return true
}

// Top returns the vertex with the smallest key and its label, without removing it.
//
// Precondition: m.Len() > 0.
func (m *MappingHeap) Top() (vertex int, l label.Label) {
	top := m.h[0]

	return top.vertex, top.key
}

// DeleteTop removes and returns the vertex with the smallest key and its label.
//
// Precondition: m.Len() > 0.
func (m *MappingHeap) DeleteTop() (vertex int, l label.Label) {
	e := heap.Pop(&m.h).(*mapEntry)
	delete(m.byVertex, e.vertex)

	return e.vertex, e.key
}
