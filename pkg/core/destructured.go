package core

import (
	"sort"

	"indexkit/pkg/index"
)

// DestructuredIndex stores (key, fields) pairs extracted from the
// source records instead of the records themselves, so the original
// collection can be freed after the build. Pairs are kept sorted by key
// and queried by binary search.
type DestructuredIndex[K, F any] struct {
	keys   []K // parallel slices, sorted by key
	fields []F
	cmp    index.Compare[K]
}

// NewDestructured extracts key and fields from every record and builds
// the index over the pairs. The records slice is not retained.
func NewDestructured[R, K, F any](records []R, key index.KeyFunc[R, K], fields index.FieldsFunc[R, F], cmp index.Compare[K]) *DestructuredIndex[K, F] {
	d := &DestructuredIndex[K, F]{
		keys:   make([]K, len(records)),
		fields: make([]F, len(records)),
		cmp:    cmp,
	}
	order := make([]int, len(records))
	for i, r := range records {
		d.keys[i] = key(r)
		d.fields[i] = fields(r)
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return cmp(d.keys[order[i]], d.keys[order[j]]) < 0
	})
	sortedKeys := make([]K, len(order))
	sortedFields := make([]F, len(order))
	for rank, pos := range order {
		sortedKeys[rank] = d.keys[pos]
		sortedFields[rank] = d.fields[pos]
	}
	d.keys = sortedKeys
	d.fields = sortedFields
	return d
}

// Len returns the number of stored pairs.
func (d *DestructuredIndex[K, F]) Len() int {
	return len(d.keys)
}

func (d *DestructuredIndex[K, F]) lowerBound(k K) int {
	return sort.Search(len(d.keys), func(i int) bool {
		return d.cmp(d.keys[i], k) >= 0
	})
}

func (d *DestructuredIndex[K, F]) upperBound(k K) int {
	return sort.Search(len(d.keys), func(i int) bool {
		return d.cmp(d.keys[i], k) > 0
	})
}

func (d *DestructuredIndex[K, F]) Find(key K) []*F {
	lo, hi := d.lowerBound(key), d.upperBound(key)
	if lo >= hi {
		return nil
	}
	out := make([]*F, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, &d.fields[i])
	}
	return out
}

func (d *DestructuredIndex[K, F]) FindRange(start, end K) []index.Entry[K, F] {
	if d.cmp(start, end) > 0 {
		return nil
	}
	lo, hi := d.lowerBound(start), d.upperBound(end)
	if lo >= hi {
		return nil
	}
	out := make([]index.Entry[K, F], 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, index.Entry[K, F]{Key: d.keys[i], Fields: &d.fields[i]})
	}
	return out
}

// Each calls fn for every stored pair in key order until fn returns
// false.
func (d *DestructuredIndex[K, F]) Each(fn func(key K, fields *F) bool) {
	for i := range d.keys {
		if !fn(d.keys[i], &d.fields[i]) {
			return
		}
	}
}

// Rebuild materializes full records from the pairs stored in d using
// the caller's build function. The result is independent of the index.
func Rebuild[K, F, R any](d *DestructuredIndex[K, F], build index.BuildFunc[K, F, R]) []R {
	out := make([]R, 0, d.Len())
	d.Each(func(key K, fields *F) bool {
		out = append(out, build(key, *fields))
		return true
	})
	return out
}

var _ index.IndexedDestructured[int, struct{}] = (*DestructuredIndex[int, struct{}])(nil)
