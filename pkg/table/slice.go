// Package table provides Table implementations and record sources for
// feeding indices.
package table

import "indexkit/pkg/index"

// SliceTable is an in-memory Table over a record slice. The slice is
// retained, not copied.
type SliceTable[R any] struct {
	records []R
}

func NewSlice[R any](records []R) *SliceTable[R] {
	return &SliceTable[R]{records: records}
}

func (t *SliceTable[R]) Len() int {
	return len(t.records)
}

func (t *SliceTable[R]) Each(fn func(R) bool) {
	for _, r := range t.records {
		if !fn(r) {
			return
		}
	}
}

// Records returns the backing slice, for building indices over it.
func (t *SliceTable[R]) Records() []R {
	return t.records
}

var _ index.Table[struct{}] = (*SliceTable[struct{}])(nil)
