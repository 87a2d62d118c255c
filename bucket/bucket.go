// SPDX-License-Identifier: MIT
// Package: dtpcentrality/bucket
//
// bucket.go — the Bucket type: Merge, Top, Pop, Optima, and the
// lazy-invalidation bookkeeping that ties them together.

package bucket

import (
	"math"

	"github.com/egoa-go/dtpcentrality/label"
	"github.com/egoa-go/dtpcentrality/pqueue"
)

// Bucket is the per-vertex label container L(v) (§3, §4.4).
type Bucket struct {
	crit        label.DominationCriterion
	processed   []label.Label
	unprocessed *pqueue.BinaryHeap

	// validUnprocessedCount is the running count of unprocessed labels
	// whose Valid flag is still true.
	validUnprocessedCount int
}

// New returns an empty Bucket using the given domination criterion.
func New(crit label.DominationCriterion) *Bucket {
	return &Bucket{crit: crit, unprocessed: pqueue.NewBinaryHeap()}
}

// Merge applies newLabel to the bucket (§4.4): if any existing label
// (processed or unprocessed) dominates it under the bucket's
// criterion, newLabel is marked invalid and discarded, and Merge
// returns false. Otherwise every unprocessed label newLabel dominates
// is invalidated (processed labels are never mutated — they may still
// be referenced by another label's back-pointer), newLabel is pushed
// into the unprocessed queue, and Merge returns true.
func (b *Bucket) Merge(newLabel label.Label) bool {
	newLabel.SetValid(true)

	dominated := false
	for _, p := range b.processed {
		if p.Dominates(newLabel, b.crit) {
			newLabel.SetValid(false)
			dominated = true

			break
		}
		// Processed labels are never mutated by a merge: a newcomer that
		// dominates a processed label has no effect on it, since other
		// labels' back-pointers may already reference it (§4.4).
	}

	if !dominated {
		b.unprocessed.ForAll(func(existing label.Label) bool {
			if existing.Dominates(newLabel, b.crit) {
				newLabel.SetValid(false)
				dominated = true

				return false
			}
			if existing.Valid() && newLabel.Dominates(existing, b.crit) {
				existing.SetValid(false)
				b.validUnprocessedCount--
			}

			return true
		})
	}

	if !newLabel.Valid() {
		b.popInvalidTops()

		return false
	}

	b.unprocessed.PushLabel(newLabel)
	b.validUnprocessedCount++
	b.popInvalidTops()

	return true
}

// popInvalidTops drops invalidated labels sitting at the top of the
// unprocessed queue, restoring the invariant that the top is always
// valid or the queue is empty.
func (b *Bucket) popInvalidTops() {
	for !b.unprocessed.Empty() && !b.unprocessed.Top().Valid() {
		b.unprocessed.PopLabel()
	}
}

// Top returns the smallest valid unprocessed label without removing it.
//
// Precondition: !UnprocessedEmpty().
func (b *Bucket) Top() label.Label {
	return b.unprocessed.Top()
}

// UnprocessedEmpty reports whether the unprocessed queue is empty.
func (b *Bucket) UnprocessedEmpty() bool {
	return b.unprocessed.Empty()
}

// Pop removes the top unprocessed label, appends it to the processed
// sequence at its final index, and returns that index.
//
// Precondition: !UnprocessedEmpty().
func (b *Bucket) Pop() int {
	l := b.unprocessed.PopLabel()
	b.validUnprocessedCount--

	idx := len(b.processed)
	l.SetIndex(idx)
	b.processed = append(b.processed, l)
	b.popInvalidTops()

	return idx
}

// ProcessedAt returns the processed label at the given index.
//
// Precondition: 0 <= index < NumberOfProcessed(); out-of-range access
// is a programmer error and panics via the underlying slice index.
func (b *Bucket) ProcessedAt(index int) label.Label {
	return b.processed[index]
}

// NumberOfProcessed returns the number of finalised (processed) labels.
func (b *Bucket) NumberOfProcessed() int {
	return len(b.processed)
}

// Size returns the total number of valid labels the bucket currently
// holds — processed plus valid unprocessed — used by the engine's
// NumberOfLabels statistic.
func (b *Bucket) Size() int {
	return len(b.processed) + b.validUnprocessedCount
}

// Optima returns every valid label (processed or unprocessed) whose
// Value() equals the bucket's minimum Value(), within label.Epsilon
// tolerance. Returns nil if the bucket holds no valid label.
func (b *Bucket) Optima() []label.Label {
	var all []label.Label
	all = append(all, b.processed...)
	b.unprocessed.ForAll(func(l label.Label) bool {
		if l.Valid() {
			all = append(all, l)
		}

		return true
	})
	if len(all) == 0 {
		return nil
	}

	min := all[0].Value()
	for _, l := range all[1:] {
		if l.Value() < min {
			min = l.Value()
		}
	}

	optima := make([]label.Label, 0, len(all))
	for _, l := range all {
		if math.Abs(l.Value()-min) <= label.Epsilon {
			optima = append(optima, l)
		}
	}

	return optima
}
