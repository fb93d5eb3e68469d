package filter

// ChunkedDoubleHash derives k bit positions for data from the pair's two
// base digests (Kirsch-Mitzenmacher double hashing). Position i is
// confined to the chunk [i*s, (i+1)*s), so the k positions of a single
// item are always pairwise distinct and plain double hashing's
// self-collisions cannot occur.
func ChunkedDoubleHash(pair *HashPair, data []byte, s, k uint64) []uint64 {
	r1, r2 := pair.Digests(data)
	d1, d2 := normalize(r1), normalize(r2)

	idx := make([]uint64, k)
	for i := uint64(0); i < k; i++ {
		idx[i] = i*s + (d1+i*d2)%s
	}
	return idx
}

// normalize maps a signed digest onto the non-negative range. Negative
// digests become abs(2*d): doubling before negating keeps the sign bit's
// information and sidesteps the one value plain abs cannot represent,
// the minimum int64.
func normalize(d int64) uint64 {
	if d >= 0 {
		return uint64(d)
	}
	return uint64(-(2 * d))
}
