package core

import (
	"github.com/google/btree"

	"indexkit/pkg/index"
)

// btreeItem carries one record copy keyed for tree ordering. seq breaks
// ties between duplicate keys so every record keeps its own node.
type btreeItem[R, K any] struct {
	key K
	seq int
	rec R
}

// BTreeIndex stores owned record copies in a B-tree and answers with
// further copies, independent of the source collection.
type BTreeIndex[R, K any] struct {
	tree *btree.BTreeG[btreeItem[R, K]]
	cmp  index.Compare[K]
}

// NewBTree builds a BTreeIndex over records with the given tree degree.
// Degrees below 2 fall back to 2, the minimum btree accepts.
func NewBTree[R, K any](records []R, key index.KeyFunc[R, K], cmp index.Compare[K], degree int) *BTreeIndex[R, K] {
	if degree < 2 {
		degree = 2
	}
	less := func(a, b btreeItem[R, K]) bool {
		if c := cmp(a.key, b.key); c != 0 {
			return c < 0
		}
		return a.seq < b.seq
	}
	b := &BTreeIndex[R, K]{
		tree: btree.NewG(degree, less),
		cmp:  cmp,
	}
	for i, r := range records {
		b.tree.ReplaceOrInsert(btreeItem[R, K]{key: key(r), seq: i + 1, rec: r})
	}
	return b
}

// Len returns the number of indexed records.
func (b *BTreeIndex[R, K]) Len() int {
	return b.tree.Len()
}

// ascend collects record copies for every key in [start, end], walking
// from the first item with key >= start until the key passes end.
func (b *BTreeIndex[R, K]) ascend(start, end K) []R {
	var out []R
	// seq 0 sorts before any stored duplicate of the same key.
	pivot := btreeItem[R, K]{key: start}
	b.tree.AscendGreaterOrEqual(pivot, func(item btreeItem[R, K]) bool {
		if b.cmp(item.key, end) > 0 {
			return false
		}
		out = append(out, item.rec)
		return true
	})
	return out
}

func (b *BTreeIndex[R, K]) Find(key K) []R {
	return b.ascend(key, key)
}

func (b *BTreeIndex[R, K]) FindRange(start, end K) []R {
	if b.cmp(start, end) > 0 {
		return nil
	}
	return b.ascend(start, end)
}

var _ index.IndexedOwned[struct{}, int] = (*BTreeIndex[struct{}, int])(nil)
