package core

import (
	"testing"

	"indexkit/pkg/index"
	"indexkit/pkg/monitor"
)

func TestBloomNeverFalseNegative(t *testing.T) {
	records := samplePairs()
	stats := monitor.NewQueryStats()
	b := NewBloom[pair, int64](
		NewSorted(records, pairKey, index.Ordered[int64]()),
		keysOf(records), int64Bytes, 0.01, stats)

	for _, r := range records {
		if got := b.Find(r.A); len(got) != 1 {
			t.Errorf("Find(%d) = %d matches, want 1", r.A, len(got))
		}
	}
	if stats.Hits != uint64(len(records)) {
		t.Errorf("hits = %d, want %d", stats.Hits, len(records))
	}
}

func TestBloomSkipsAbsentKeys(t *testing.T) {
	records := samplePairs()
	stats := monitor.NewQueryStats()
	b := NewBloom[pair, int64](
		NewSorted(records, pairKey, index.Ordered[int64]()),
		keysOf(records), int64Bytes, 0.001, stats)

	const absent = 100
	for k := int64(1000); k < 1000+absent; k++ {
		if got := b.Find(k); len(got) != 0 {
			t.Errorf("Find(%d) = %v, want empty", k, got)
		}
	}
	if stats.Lookups != absent {
		t.Errorf("lookups = %d, want %d", stats.Lookups, absent)
	}
	// The filter may pass the odd false positive, but it cannot wave
	// through every absent key.
	if stats.FilterSkips == 0 {
		t.Error("no absent-key lookup was answered by the filter")
	}
	if stats.Hits != 0 {
		t.Errorf("hits = %d, want 0", stats.Hits)
	}
}

func TestBloomRangePassesThrough(t *testing.T) {
	records := samplePairs()
	b := NewBloom[pair, int64](
		NewSorted(records, pairKey, index.Ordered[int64]()),
		keysOf(records), int64Bytes, 0.01, nil)

	if got := b.FindRange(1, 10); len(got) != 3 {
		t.Errorf("FindRange(1, 10) = %d matches, want 3", len(got))
	}
	if got := b.FindRange(10, 1); len(got) != 0 {
		t.Errorf("FindRange(10, 1) = %d matches, want 0", len(got))
	}
}
