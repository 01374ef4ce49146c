package monitor

import (
	"sync/atomic"
)

// QueryStats counts index lookups. Safe for concurrent use.
type QueryStats struct {
	Lookups     uint64
	Hits        uint64
	FilterSkips uint64
}

func NewQueryStats() *QueryStats {
	return &QueryStats{}
}

func (qs *QueryStats) RecordLookup() {
	atomic.AddUint64(&qs.Lookups, 1)
}

func (qs *QueryStats) RecordHit() {
	atomic.AddUint64(&qs.Hits, 1)
}

// RecordFilterSkip counts a lookup answered negatively by a filter
// without touching the underlying index.
func (qs *QueryStats) RecordFilterSkip() {
	atomic.AddUint64(&qs.FilterSkips, 1)
}

// HitRatio returns hits over lookups, 0 when nothing was looked up.
func (qs *QueryStats) HitRatio() float64 {
	lookups := atomic.LoadUint64(&qs.Lookups)
	if lookups == 0 {
		return 0.0
	}
	return float64(atomic.LoadUint64(&qs.Hits)) / float64(lookups)
}

// FilterSkipRatio returns filter-answered lookups over all lookups.
func (qs *QueryStats) FilterSkipRatio() float64 {
	lookups := atomic.LoadUint64(&qs.Lookups)
	if lookups == 0 {
		return 0.0
	}
	return float64(atomic.LoadUint64(&qs.FilterSkips)) / float64(lookups)
}
