package core

import (
	"github.com/bits-and-blooms/bloom/v3"

	"indexkit/pkg/index"
	"indexkit/pkg/monitor"
)

// KeyBytesFunc serializes a key for bloom-filter membership. Equal keys
// must serialize to equal bytes.
type KeyBytesFunc[K any] func(k K) []byte

// BloomIndex wraps any Indexed with a bloom-filter gate on point
// lookups: keys that cannot be present are answered empty without
// touching the inner index. Range queries pass straight through, the
// filter has nothing to say about them.
type BloomIndex[R, K any] struct {
	inner    index.Indexed[R, K]
	filter   *bloom.BloomFilter
	keyBytes KeyBytesFunc[K]
	stats    *monitor.QueryStats
}

// NewBloom builds the filter from keys, the exact key set the inner
// index was built over. fp is the target false-positive rate. stats may
// be nil.
func NewBloom[R, K any](inner index.Indexed[R, K], keys []K, keyBytes KeyBytesFunc[K], fp float64, stats *monitor.QueryStats) *BloomIndex[R, K] {
	n := uint(len(keys))
	if n == 0 {
		n = 1
	}
	filter := bloom.NewWithEstimates(n, fp)
	for _, k := range keys {
		filter.Add(keyBytes(k))
	}
	if stats == nil {
		stats = monitor.NewQueryStats()
	}
	return &BloomIndex[R, K]{
		inner:    inner,
		filter:   filter,
		keyBytes: keyBytes,
		stats:    stats,
	}
}

// Stats exposes the lookup counters.
func (b *BloomIndex[R, K]) Stats() *monitor.QueryStats {
	return b.stats
}

func (b *BloomIndex[R, K]) Find(key K) []*R {
	b.stats.RecordLookup()
	if !b.filter.Test(b.keyBytes(key)) {
		b.stats.RecordFilterSkip()
		return nil
	}
	out := b.inner.Find(key)
	if len(out) > 0 {
		b.stats.RecordHit()
	}
	return out
}

func (b *BloomIndex[R, K]) FindRange(start, end K) []*R {
	return b.inner.FindRange(start, end)
}

var _ index.Indexed[struct{}, int] = (*BloomIndex[struct{}, int])(nil)
