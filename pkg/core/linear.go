package core

import "indexkit/pkg/index"

// LinearIndex is the scan baseline: no build-time work, every query
// walks the whole record slice. It exists as the simplest conforming
// implementer and as the reference point for benchmarks.
type LinearIndex[R, K any] struct {
	records []R
	key     index.KeyFunc[R, K]
	cmp     index.Compare[K]
}

// NewLinear builds a LinearIndex over records. The slice is retained;
// query results alias its elements.
func NewLinear[R, K any](records []R, key index.KeyFunc[R, K], cmp index.Compare[K]) *LinearIndex[R, K] {
	return &LinearIndex[R, K]{records: records, key: key, cmp: cmp}
}

func (l *LinearIndex[R, K]) Find(key K) []*R {
	var out []*R
	for i := range l.records {
		if l.cmp(l.key(l.records[i]), key) == 0 {
			out = append(out, &l.records[i])
		}
	}
	return out
}

func (l *LinearIndex[R, K]) FindRange(start, end K) []*R {
	if l.cmp(start, end) > 0 {
		return nil
	}
	var out []*R
	for i := range l.records {
		k := l.key(l.records[i])
		if l.cmp(k, start) >= 0 && l.cmp(k, end) <= 0 {
			out = append(out, &l.records[i])
		}
	}
	return out
}

var _ index.Indexed[struct{}, int] = (*LinearIndex[struct{}, int])(nil)
