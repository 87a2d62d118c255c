package bucket_test

import (
	"testing"

	"github.com/egoa-go/dtpcentrality/bucket"
	"github.com/egoa-go/dtpcentrality/label"
	"github.com/stretchr/testify/require"
)

func vLabel(v int, bnorm float64) *label.SusceptanceNormLabel {
	l := label.NewSusceptanceNormSourceLabel(v)
	l.Bnorm = bnorm

	return l
}

func TestMergeAcceptsFirstLabel(t *testing.T) {
	b := bucket.New(label.DominationStrict)
	l := vLabel(1, 2.0)
	require.True(t, b.Merge(l))
	require.False(t, b.UnprocessedEmpty())
	require.Equal(t, l, b.Top())
}

func TestMergeStrictDominanceRejectsWorse(t *testing.T) {
	b := bucket.New(label.DominationStrict)
	require.True(t, b.Merge(vLabel(1, 1.0)))

	worse := vLabel(1, 2.0)
	require.False(t, b.Merge(worse))
	require.False(t, worse.Valid())
	require.Equal(t, 1.0, b.Top().(*label.SusceptanceNormLabel).Bnorm)
}

func TestMergeInvalidatesDominatedUnprocessed(t *testing.T) {
	b := bucket.New(label.DominationStrict)
	worse := vLabel(1, 2.0)
	require.True(t, b.Merge(worse))

	better := vLabel(1, 1.0)
	require.True(t, b.Merge(better))
	require.False(t, worse.Valid())

	// The invalidated label is lazily dropped; only "better" remains on top.
	require.Equal(t, better, b.Top())
}

func TestPopMovesLabelToProcessed(t *testing.T) {
	b := bucket.New(label.DominationStrict)
	l := vLabel(1, 1.0)
	b.Merge(l)

	idx := b.Pop()
	require.Equal(t, 0, idx)
	require.Equal(t, 1, b.NumberOfProcessed())
	require.Equal(t, l, b.ProcessedAt(0))
	require.Equal(t, 0, l.Index())
	require.True(t, b.UnprocessedEmpty())
}

func TestOptimaAcrossProcessedAndUnprocessed(t *testing.T) {
	b := bucket.New(label.DominationNone) // no pruning: keep everything
	a := vLabel(1, 1.0)
	c := vLabel(1, 1.0)
	d := vLabel(1, 5.0)
	b.Merge(a)
	b.Pop() // a is now processed
	b.Merge(c)
	b.Merge(d)

	optima := b.Optima()
	require.Len(t, optima, 2) // a (processed) and c (unprocessed), both value 1.0
}

func TestDominationNoneKeepsEverything(t *testing.T) {
	b := bucket.New(label.DominationNone)
	require.True(t, b.Merge(vLabel(1, 5.0)))
	require.True(t, b.Merge(vLabel(1, 1.0)))
	require.Equal(t, 2, b.Size())
}
