package bucket_test

import (
	"fmt"

	"github.com/egoa-go/dtpcentrality/bucket"
	"github.com/egoa-go/dtpcentrality/label"
)

// Example demonstrates a worse label losing to a better one under
// strict domination, with the worse label left invalid in the queue
// until it is lazily dropped.
func Example() {
	b := bucket.New(label.DominationStrict)

	worse := label.NewSusceptanceNormSourceLabel(1)
	worse.Bnorm = 2.0
	b.Merge(worse)

	better := label.NewSusceptanceNormSourceLabel(1)
	better.Bnorm = 1.0
	accepted := b.Merge(better)

	fmt.Println(accepted, worse.Valid(), b.Top().(*label.SusceptanceNormLabel).Bnorm)
	// Output: true false 1
}
