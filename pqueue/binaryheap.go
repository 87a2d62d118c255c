// SPDX-License-Identifier: MIT
// Package: dtpcentrality/pqueue
//
// binaryheap.go — a plain min-heap of label.Label, ordered by Label.Less.

package pqueue

import (
	"container/heap"

	"github.com/egoa-go/dtpcentrality/label"
)

// BinaryHeap is a min-heap over label.Label values. The zero value is
// not ready to use; construct with NewBinaryHeap.
//
// Complexity: Top is O(1); Push/Pop are O(log n); BuildFrom is O(n).
type BinaryHeap struct {
	items []label.Label
}

// NewBinaryHeap returns an empty, ready-to-use BinaryHeap.
func NewBinaryHeap() *BinaryHeap {
	return &BinaryHeap{}
}

// BuildFrom replaces the heap's contents with items and heapifies in
// O(n), the classic bottom-up build rather than n sequential pushes.
func (h *BinaryHeap) BuildFrom(items []label.Label) {
	h.items = items
	heap.Init(h)
}

// Len implements heap.Interface.
func (h *BinaryHeap) Len() int { return len(h.items) }

// Less implements heap.Interface via label.Label.Less.
func (h *BinaryHeap) Less(i, j int) bool { return h.items[i].Less(h.items[j]) }

// Swap implements heap.Interface.
func (h *BinaryHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push implements heap.Interface; x must be a label.Label. Use
// BinaryHeap.PushLabel for the type-safe public entry point.
func (h *BinaryHeap) Push(x interface{}) { h.items = append(h.items, x.(label.Label)) }

// Pop implements heap.Interface; returns interface{} holding a label.Label.
// Use BinaryHeap.PopLabel for the type-safe public entry point.
func (h *BinaryHeap) Pop() interface{} {
	n := len(h.items)
	item := h.items[n-1]
	h.items[n-1] = nil
	h.items = h.items[:n-1]

	return item
}

// PushLabel pushes l onto the heap.
//
// Complexity: O(log n).
func (h *BinaryHeap) PushLabel(l label.Label) {
	heap.Push(h, l)
}

// PopLabel removes and returns the smallest label.
//
// Precondition: h.Len() > 0; popping an empty heap is a programmer
// error and panics via the underlying slice index, matching §4.3's
// "popping an empty queue is a programmer error" failure semantics.
//
// Complexity: O(log n).
func (h *BinaryHeap) PopLabel() label.Label {
	return heap.Pop(h).(label.Label)
}

// Top returns the smallest label without removing it.
//
// Precondition: h.Len() > 0.
//
// Complexity: O(1).
func (h *BinaryHeap) Top() label.Label {
	return h.items[0]
}

// Empty reports whether the heap has no elements.
func (h *BinaryHeap) Empty() bool { return len(h.items) == 0 }

// ForAll visits every label currently in the heap in unspecified
// (internal array) order — callers needing sorted order should drain
// the heap via PopLabel instead.
func (h *BinaryHeap) ForAll(fn func(label.Label) bool) {
	for _, l := range h.items {
		if !fn(l) {
			return
		}
	}
}
