// Package core provides reference index implementations used to
// exercise the contracts in pkg/index. None of them is mandated by the
// contracts; downstream index implementations are free to use any
// algorithm that honors the same query behavior.
package core

import (
	"sort"

	"indexkit/pkg/index"
)

// SortedIndex answers point and range queries with binary search over
// record positions sorted by key. Keys are extracted once at build
// time. Results happen to come back in key order; callers must not rely
// on that, the contract leaves ordering unspecified.
type SortedIndex[R, K any] struct {
	records []R
	keys    []K   // keys[i] is the key of records[i]
	order   []int // positions into records, sorted by key
	cmp     index.Compare[K]
}

// NewSorted builds a SortedIndex over records. The slice is retained;
// query results alias its elements.
func NewSorted[R, K any](records []R, key index.KeyFunc[R, K], cmp index.Compare[K]) *SortedIndex[R, K] {
	s := &SortedIndex[R, K]{
		records: records,
		keys:    make([]K, len(records)),
		order:   make([]int, len(records)),
		cmp:     cmp,
	}
	for i, r := range records {
		s.keys[i] = key(r)
		s.order[i] = i
	}
	sort.SliceStable(s.order, func(i, j int) bool {
		return cmp(s.keys[s.order[i]], s.keys[s.order[j]]) < 0
	})
	return s
}

// keyAt returns the key at sorted rank i.
func (s *SortedIndex[R, K]) keyAt(i int) K {
	return s.keys[s.order[i]]
}

// lowerBound returns the first sorted rank whose key is >= k.
func (s *SortedIndex[R, K]) lowerBound(k K) int {
	return sort.Search(len(s.order), func(i int) bool {
		return s.cmp(s.keyAt(i), k) >= 0
	})
}

// upperBound returns the first sorted rank whose key is > k.
func (s *SortedIndex[R, K]) upperBound(k K) int {
	return sort.Search(len(s.order), func(i int) bool {
		return s.cmp(s.keyAt(i), k) > 0
	})
}

func (s *SortedIndex[R, K]) collect(lo, hi int) []*R {
	if lo >= hi {
		return nil
	}
	out := make([]*R, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, &s.records[s.order[i]])
	}
	return out
}

// Find returns every record whose key equals key.
func (s *SortedIndex[R, K]) Find(key K) []*R {
	return s.collect(s.lowerBound(key), s.upperBound(key))
}

// FindRange returns every record with key in [start, end], both bounds
// inclusive. start after end yields no matches.
func (s *SortedIndex[R, K]) FindRange(start, end K) []*R {
	if s.cmp(start, end) > 0 {
		return nil
	}
	return s.collect(s.lowerBound(start), s.upperBound(end))
}

var _ index.Indexed[struct{}, int] = (*SortedIndex[struct{}, int])(nil)

// OwnedIndex is a SortedIndex that copies the source records at build
// time and answers with owned copies, independent of the original
// collection.
type OwnedIndex[R, K any] struct {
	inner *SortedIndex[R, K]
}

// NewOwned builds an OwnedIndex over a private copy of records.
func NewOwned[R, K any](records []R, key index.KeyFunc[R, K], cmp index.Compare[K]) *OwnedIndex[R, K] {
	own := make([]R, len(records))
	copy(own, records)
	return &OwnedIndex[R, K]{inner: NewSorted(own, key, cmp)}
}

func values[R any](refs []*R) []R {
	if len(refs) == 0 {
		return nil
	}
	out := make([]R, len(refs))
	for i, r := range refs {
		out[i] = *r
	}
	return out
}

func (o *OwnedIndex[R, K]) Find(key K) []R {
	return values(o.inner.Find(key))
}

func (o *OwnedIndex[R, K]) FindRange(start, end K) []R {
	return values(o.inner.FindRange(start, end))
}

var _ index.IndexedOwned[struct{}, int] = (*OwnedIndex[struct{}, int])(nil)
