// Package index defines the capability contracts shared by all indexkit
// indices.
//
// indexkit provides database engine bricks that can be combined and
// applied on arbitrary in-memory data structures. Unlike a traditional
// database it assumes no physical structure for tables or records: the
// caller supplies extractor functions, and the concrete indices built on
// top of them stay agnostic of the underlying data layout.
//
// This package contains only the contracts. Concrete indices (sorted,
// hash, btree, ...) live in their own packages and are bound solely to
// honor the input/output behavior declared here.
package index

import "cmp"

// KeyFunc extracts the key from a record.
//
// An extractor must be pure and deterministic: calling it repeatedly on
// an unmodified record returns equal keys, and the call never mutates
// the record. Indices rely on this stability for sorting and
// binary-searchable range queries.
//
// A record type can be indexed under several key types (or several keys
// of the same type) by supplying one KeyFunc per key. For example:
//
//	type Pair struct{ A int64; B int64 }
//
//	byInt := func(p Pair) int64 { return p.A }
//	byString := func(p Pair) string { return strconv.FormatInt(p.A, 10) }
type KeyFunc[R, K any] func(r R) K

// FieldsFunc extracts the non-key residual fields from a record.
//
// It is used by destructuring indices, which store keys and fields
// separately so the original records can be freed. Same purity and
// determinism requirements as KeyFunc.
type FieldsFunc[R, F any] func(r R) F

// BuildFunc reconstructs a record from a key and a fields value. It is
// the structural inverse of the KeyFunc/FieldsFunc pair and lets a
// destructuring index materialize full records on demand without
// retaining the originals.
//
// The contract does not promise that build(key(r), fields(r))
// reproduces r exactly; implementers only owe key stability through the
// round trip: re-extracting the key of a rebuilt record yields the key
// it was built from.
type BuildFunc[K, F, R any] func(key K, fields F) R

// Compare orders keys: negative when a sorts before b, zero when equal,
// positive when a sorts after b. Ordering semantics belong entirely to
// the caller; the contracts define none of their own.
type Compare[K any] func(a, b K) int

// Ordered returns the natural Compare for any ordered key type.
func Ordered[K cmp.Ordered]() Compare[K] {
	return cmp.Compare[K]
}

// Indexed is the query contract of indices that retain the source
// records and answer with references into them.
//
// Both operations are total: no match is an empty result, never an
// error. The order of returned matches is unspecified.
type Indexed[R, K any] interface {
	// Find returns every record whose extracted key equals key.
	Find(key K) []*R

	// FindRange returns every record whose key falls in [start, end].
	// Both bounds are inclusive. A range with start after end (per the
	// index ordering) is empty.
	FindRange(start, end K) []*R
}

// IndexedOwned is the query contract of indices that answer with owned
// copies, independent of any retained source collection. Operation
// semantics match Indexed.
type IndexedOwned[R, K any] interface {
	Find(key K) []R
	FindRange(start, end K) []R
}

// Entry is a single range-query match from a destructuring index: the
// matched key together with its stored fields.
type Entry[K, F any] struct {
	Key    K
	Fields *F
}

// IndexedDestructured is the query contract of indices that retain
// (key, fields) pairs instead of whole records. Point lookups answer
// with the stored fields; range lookups additionally return the matched
// key alongside each fields value. Bounds and totality match Indexed.
type IndexedDestructured[K, F any] interface {
	Find(key K) []*F
	FindRange(start, end K) []Entry[K, F]
}

// Table is an abstract container of records. No structure is imposed
// beyond sized iteration; ownership and mutation stay with the caller.
type Table[R any] interface {
	Len() int

	// Each calls fn for every record until fn returns false.
	Each(fn func(R) bool)
}
