// Package bloom implements a chunked double-hashing Bloom filter: a
// probabilistic set with no false negatives and a bounded false-positive
// rate, sized analytically from a capacity and a target error rate.
package bloom

import (
	"math"

	"github.com/pkg/errors"

	"github.com/filterlabs/bloom/filter"
)

// BloomFilter is a fixed-size probabilistic set. The structural
// parameters (bit size, hash count, chunk size, achieved error rate) and
// the hash pair are fixed at construction; only the bit contents change,
// and they only ever grow until Reset.
//
// A BloomFilter is not internally synchronized. Sharing one across
// goroutines requires external mutual exclusion.
type BloomFilter struct {
	params filter.Params
	bits   filter.BitStore
	pair   *filter.HashPair
}

// NewBloomFilter sizes and allocates a filter that holds capacity items
// at roughly the target false-positive rate. The achieved rate can
// differ slightly from the target because the bit size is rounded up to
// a multiple of the hash count.
func NewBloomFilter(capacity int, targetFpRate float64, pair *filter.HashPair) (*BloomFilter, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(filter.ErrInvalidCapacity, "capacity %d", capacity)
	}
	if !(targetFpRate > 0 && targetFpRate < 1) {
		return nil, errors.Wrapf(filter.ErrInvalidTargetErrorRate, "rate %v", targetFpRate)
	}

	params := filter.OptimalParams(capacity, targetFpRate)
	return &BloomFilter{
		params: params,
		bits:   filter.NewBitStore(params.M),
		pair:   pair,
	}, nil
}

// Insert adds data to the set.
func (bf *BloomFilter) Insert(data []byte) {
	for _, pos := range bf.indices(data) {
		bf.bits.Set(pos)
	}
}

// InsertMany adds every item to the set. Equivalent to calling Insert in
// a loop, but the bit masks are accumulated in a scratch store and
// applied to the filter with a single word-wise OR pass. The OR is
// commutative, so item order does not matter.
func (bf *BloomFilter) InsertMany(items [][]byte) {
	pending := filter.NewBitStore(bf.params.M)
	for _, item := range items {
		for _, pos := range bf.indices(item) {
			pending.Set(pos)
		}
	}
	bf.bits.Union(pending)
}

// MightContain reports whether data may have been inserted. A false
// result is definitive; a true result may be a false positive with
// probability FalsePositiveRate. Items inserted since the last Reset are
// always reported true.
func (bf *BloomFilter) MightContain(data []byte) bool {
	for _, pos := range bf.indices(data) {
		if !bf.bits.Get(pos) {
			return false
		}
	}
	return true
}

// Reset discards every insertion, leaving a structurally identical
// filter with all bits clear.
func (bf *BloomFilter) Reset() {
	bf.bits.Clear()
}

// EstimateCardinality estimates the number of distinct items inserted
// since the last Reset, from the fraction of set bits:
//
// n ~= -(m/k) * log(1 - X/m)
//
// where X is the popcount. An empty filter estimates 0 exactly.
func (bf *BloomFilter) EstimateCardinality() uint64 {
	x := bf.bits.PopCount()
	m := bf.params.M
	if x == m {
		// Every bit set; the estimator diverges. Unreachable for a
		// filter operated anywhere near its sizing.
		return math.MaxUint64
	}
	est := -(float64(m) / float64(bf.params.K)) * math.Log(1-float64(x)/float64(m))
	return uint64(math.Round(est))
}

// FillRatio returns the fraction of bits currently set.
func (bf *BloomFilter) FillRatio() float64 {
	return float64(bf.bits.PopCount()) / float64(bf.params.M)
}

// BitSize returns the total number of addressable bit positions.
func (bf *BloomFilter) BitSize() uint64 {
	return bf.params.M
}

// HashFnCount returns the number of bit positions touched per operation.
func (bf *BloomFilter) HashFnCount() uint64 {
	return bf.params.K
}

// ChunkSize returns the width of the sub-range owned by each hash slot.
func (bf *BloomFilter) ChunkSize() uint64 {
	return bf.params.S
}

// FalsePositiveRate returns the achieved (not target) false-positive
// probability at capacity.
func (bf *BloomFilter) FalsePositiveRate() float64 {
	return bf.params.FpRate
}

func (bf *BloomFilter) indices(data []byte) []uint64 {
	return filter.ChunkedDoubleHash(bf.pair, data, bf.params.S, bf.params.K)
}
