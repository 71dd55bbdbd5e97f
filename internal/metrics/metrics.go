// Package metrics provides application-level counters using stdlib expvar.
// Counters are exported on /debug/vars by any binary that serves expvar.
package metrics

import "expvar"

// Filter counters.
var (
	FilterTotal  = expvar.NewInt("specfilter_filter_total")
	ItemsTested  = expvar.NewInt("specfilter_items_tested_total")
	ItemsMatched = expvar.NewInt("specfilter_items_matched_total")
)

// Inc increments the given counter by 1.
func Inc(counter *expvar.Int) { counter.Add(1) }

// RecordFilter records one filter pass over tested items yielding matched results.
func RecordFilter(tested, matched int) {
	Inc(FilterTotal)
	ItemsTested.Add(int64(tested))
	ItemsMatched.Add(int64(matched))
}
