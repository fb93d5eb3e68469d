package filter

import "math/bits"

const wordBits = 64

// BitStore is a packed bit vector over 64-bit words. Positions are
// 0-based; the caller guarantees pos < the bit capacity it was created
// with (the index generator only ever produces in-range positions).
type BitStore []uint64

// NewBitStore returns an all-zero store addressing at least bitCap bits,
// rounded up to whole words.
func NewBitStore(bitCap uint64) BitStore {
	return make(BitStore, (bitCap+wordBits-1)/wordBits)
}

// Set sets the bit at pos. Setting an already-set bit is a no-op.
func (bs BitStore) Set(pos uint64) {
	bs[pos/wordBits] |= 1 << (pos % wordBits)
}

// Get reports whether the bit at pos is set.
func (bs BitStore) Get(pos uint64) bool {
	return bs[pos/wordBits]>>(pos%wordBits)&1 == 1
}

// PopCount returns the total number of set bits.
func (bs BitStore) PopCount() uint64 {
	var n uint64
	for _, w := range bs {
		n += uint64(bits.OnesCount64(w))
	}
	return n
}

// Union ORs other into bs word by word. The stores must be the same
// length.
func (bs BitStore) Union(other BitStore) {
	for i, w := range other {
		bs[i] |= w
	}
}

// Clear zeroes every bit.
func (bs BitStore) Clear() {
	clear(bs)
}
