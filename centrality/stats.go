// SPDX-License-Identifier: MIT
// Package: dtpcentrality/centrality
//
// stats.go — StatsCollection: one dtp.StatsRow per source, plus a
// reduced total and a CSV writer.

package centrality

import (
	"fmt"
	"io"

	"github.com/egoa-go/dtpcentrality/dtp"
)

// StatsCollection holds one StatsRow per source vertex the driver ran,
// in source order.
type StatsCollection struct {
	Rows []dtp.StatsRow
}

// Total reduces every row into one, summing the edge/label counters
// and elapsed time via dtp.StatsRow.Add. The identifying fields of the
// returned row are left zero-valued; callers that want a labelled
// total should set NameOfProblem/Name themselves.
func (c StatsCollection) Total() dtp.StatsRow {
	var total dtp.StatsRow
	for _, r := range c.Rows {
		total.Add(r)
	}

	return total
}

// WriteCSV writes the header followed by one line per row.
func (c StatsCollection) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, dtp.StatsRow{}.Header()); err != nil {
		return err
	}
	for _, r := range c.Rows {
		if _, err := fmt.Fprintln(w, r.Fields()); err != nil {
			return err
		}
	}

	return nil
}
