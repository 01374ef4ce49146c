package core

import "indexkit/pkg/index"

// HashIndex answers point lookups with a single map probe. Range
// queries have no hash-friendly path and fall back to walking the
// distinct keys, so a SortedIndex is the better fit for range-heavy
// workloads.
type HashIndex[R any, K comparable] struct {
	records []R
	byKey   map[K][]int // record positions per key
	keys    []K         // distinct keys, insertion order
	cmp     index.Compare[K]
}

// NewHash builds a HashIndex over records. The slice is retained; query
// results alias its elements.
func NewHash[R any, K comparable](records []R, key index.KeyFunc[R, K], cmp index.Compare[K]) *HashIndex[R, K] {
	h := &HashIndex[R, K]{
		records: records,
		byKey:   make(map[K][]int, len(records)),
		cmp:     cmp,
	}
	for i, r := range records {
		k := key(r)
		if _, seen := h.byKey[k]; !seen {
			h.keys = append(h.keys, k)
		}
		h.byKey[k] = append(h.byKey[k], i)
	}
	return h
}

func (h *HashIndex[R, K]) refs(positions []int) []*R {
	if len(positions) == 0 {
		return nil
	}
	out := make([]*R, len(positions))
	for i, pos := range positions {
		out[i] = &h.records[pos]
	}
	return out
}

func (h *HashIndex[R, K]) Find(key K) []*R {
	return h.refs(h.byKey[key])
}

func (h *HashIndex[R, K]) FindRange(start, end K) []*R {
	if h.cmp(start, end) > 0 {
		return nil
	}
	var out []*R
	for _, k := range h.keys {
		if h.cmp(k, start) >= 0 && h.cmp(k, end) <= 0 {
			out = append(out, h.refs(h.byKey[k])...)
		}
	}
	return out
}

var _ index.Indexed[struct{}, int] = (*HashIndex[struct{}, int])(nil)
