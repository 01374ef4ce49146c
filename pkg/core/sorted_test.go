package core

import (
	"math/rand"
	"sort"
	"testing"

	"indexkit/pkg/index"
)

func TestSortedResultsAliasSource(t *testing.T) {
	records := samplePairs()
	ix := NewSorted(records, pairKey, index.Ordered[int64]())

	got := ix.Find(2)
	if len(got) != 1 {
		t.Fatalf("Find(2) = %d matches, want 1", len(got))
	}
	if got[0] != &records[2] {
		t.Error("Find(2) did not return a reference into the source slice")
	}
}

func TestOwnedResultsIndependentOfSource(t *testing.T) {
	records := samplePairs()
	ix := NewOwned(records, pairKey, index.Ordered[int64]())

	// Clobber the source after the build; an owned index keeps copies.
	for i := range records {
		records[i] = pair{A: -1, B: -1}
	}
	got := ix.Find(1)
	if len(got) != 1 || got[0].B != 56 {
		t.Errorf("Find(1) after source clobber = %v, want {1 56}", got)
	}

	// Mutating a result must not leak back into the index.
	got[0].B = 999
	again := ix.Find(1)
	if len(again) != 1 || again[0].B != 56 {
		t.Errorf("Find(1) after result mutation = %v, want {1 56}", again)
	}
}

func TestSortedAgainstLinearRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	records := make([]pair, 500)
	for i := range records {
		records[i] = pair{A: rng.Int63n(100), B: int64(i)}
	}
	cmpKeys := index.Ordered[int64]()
	sorted := NewSorted(records, pairKey, cmpKeys)
	linear := NewLinear(records, pairKey, cmpKeys)

	for trial := 0; trial < 200; trial++ {
		start := rng.Int63n(120) - 10
		end := start + rng.Int63n(40)
		got := keysOfRefs(sorted.FindRange(start, end))
		want := keysOfRefs(linear.FindRange(start, end))
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		if len(got) != len(want) {
			t.Fatalf("FindRange(%d, %d): sorted %d matches, linear %d", start, end, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("FindRange(%d, %d): key sets differ at %d: %d vs %d", start, end, i, got[i], want[i])
			}
		}
	}
}

func keysOfRefs(refs []*pair) []int64 {
	out := make([]int64, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.A)
	}
	return out
}
