package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"indexkit/pkg/index"
)

func TestDestructuredFindRangeReturnsKeys(t *testing.T) {
	d := NewDestructured(samplePairs(), pairKey, pairFields, index.Ordered[int64]())

	entries := d.FindRange(1, 10)
	if len(entries) != 3 {
		t.Fatalf("FindRange(1, 10) returned %d entries, want 3", len(entries))
	}
	got := make(map[int64]int64, len(entries))
	for _, e := range entries {
		got[e.Key] = *e.Fields
	}
	want := map[int64]int64{1: 56, 2: 23, 10: 34}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entry key/fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDestructuredRoundTripPreservesKeys(t *testing.T) {
	records := samplePairs()
	d := NewDestructured(records, pairKey, pairFields, index.Ordered[int64]())

	rebuilt := Rebuild(d, buildPair)
	if len(rebuilt) != len(records) {
		t.Fatalf("Rebuild returned %d records, want %d", len(rebuilt), len(records))
	}
	// Re-extracting the key of a rebuilt record must yield the key it
	// was built from.
	i := 0
	d.Each(func(key int64, fields *int64) bool {
		if got := pairKey(rebuilt[i]); got != key {
			t.Errorf("rebuilt[%d]: key = %d, want %d", i, got, key)
		}
		if got := pairFields(rebuilt[i]); got != *fields {
			t.Errorf("rebuilt[%d]: fields = %d, want %d", i, got, *fields)
		}
		i++
		return true
	})
}

func TestDestructuredEachStopsEarly(t *testing.T) {
	d := NewDestructured(samplePairs(), pairKey, pairFields, index.Ordered[int64]())

	seen := 0
	d.Each(func(int64, *int64) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("Each visited %d pairs after early stop, want 2", seen)
	}
}

func TestDestructuredDoesNotRetainRecords(t *testing.T) {
	records := samplePairs()
	d := NewDestructured(records, pairKey, pairFields, index.Ordered[int64]())

	// Clobber the source; the index must answer from its own pairs.
	for i := range records {
		records[i] = pair{A: -1, B: -1}
	}
	fields := d.Find(1)
	if len(fields) != 1 || *fields[0] != 56 {
		t.Errorf("Find(1) after source clobber = %v, want fields 56", fields)
	}
}
