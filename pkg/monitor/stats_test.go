package monitor

import (
	"sync"
	"testing"
)

func TestRatios(t *testing.T) {
	qs := NewQueryStats()
	if qs.HitRatio() != 0.0 {
		t.Errorf("HitRatio on fresh stats = %f, want 0", qs.HitRatio())
	}
	if qs.FilterSkipRatio() != 0.0 {
		t.Errorf("FilterSkipRatio on fresh stats = %f, want 0", qs.FilterSkipRatio())
	}

	for i := 0; i < 10; i++ {
		qs.RecordLookup()
	}
	for i := 0; i < 4; i++ {
		qs.RecordHit()
	}
	qs.RecordFilterSkip()

	if got := qs.HitRatio(); got != 0.4 {
		t.Errorf("HitRatio = %f, want 0.4", got)
	}
	if got := qs.FilterSkipRatio(); got != 0.1 {
		t.Errorf("FilterSkipRatio = %f, want 0.1", got)
	}
}

func TestConcurrentRecording(t *testing.T) {
	qs := NewQueryStats()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				qs.RecordLookup()
				qs.RecordHit()
			}
		}()
	}
	wg.Wait()
	if qs.Lookups != 8000 || qs.Hits != 8000 {
		t.Errorf("counters = %d/%d, want 8000/8000", qs.Lookups, qs.Hits)
	}
}
