package filter

import (
	"github.com/dgryski/go-metro"
	"github.com/zeebo/xxh3"
	"github.com/zhenjl/cityhash"
)

// Hasher is the capability a filter needs from the caller: a total,
// deterministic function from an item to a signed 64-bit digest. The
// filter assumes, but cannot enforce, that the two hashers of a pair are
// independent and reasonably uniform.
//
// Implementations should be pointer-shaped so that pairing can tell two
// instances apart by identity (see NewHashPair).
type Hasher interface {
	Digest(data []byte) int64
}

// MetroHasher digests with metrohash-64 under a fixed seed.
type MetroHasher struct {
	seed uint64
}

func NewMetroHasher(seed uint64) *MetroHasher {
	return &MetroHasher{seed: seed}
}

func (h *MetroHasher) Digest(data []byte) int64 {
	return int64(metro.Hash64(data, h.seed))
}

// XXH3Hasher digests with seeded xxh3-64.
type XXH3Hasher struct {
	seed uint64
}

func NewXXH3Hasher(seed uint64) *XXH3Hasher {
	return &XXH3Hasher{seed: seed}
}

func (h *XXH3Hasher) Digest(data []byte) int64 {
	return int64(xxh3.HashSeed(data, h.seed))
}

// CityHasher digests with cityhash-64.
type CityHasher struct{}

func NewCityHasher() *CityHasher {
	return &CityHasher{}
}

func (h *CityHasher) Digest(data []byte) int64 {
	return int64(cityhash.CityHash64(data, uint32(len(data))))
}

// PolyHasher is a dependency-free polynomial rolling hash:
//
// h(x) = x[0]*p^0 + x[1]*p^1 + ... + x[n-1]*p^(n-1)
//
// over wrapping int64 arithmetic. p should be a small prime roughly the
// size of the input alphabet.
type PolyHasher struct {
	p int64
}

func NewPolyHasher(p int64) *PolyHasher {
	return &PolyHasher{p: p}
}

func (h *PolyHasher) Digest(data []byte) int64 {
	var sum, pow int64 = 0, 1
	for _, b := range data {
		sum += int64(b) * pow
		pow *= h.p
	}
	return sum
}
