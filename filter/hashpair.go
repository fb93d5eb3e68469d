package filter

import "github.com/pkg/errors"

// HashPair is the two base hashers a filter derives all of its bit
// positions from. Immutable once paired; a filter holds it by reference.
type HashPair struct {
	h1, h2 Hasher
}

// NewHashPair pairs two hashers, rejecting the degenerate case of the
// same hasher twice.
//
// Equality is interface identity: two distinct instances are a valid
// pair even if they happen to compute identical digests. Hashers are
// expected to be pointer-shaped (every implementation in this package
// is), which makes the comparison reference equality.
func NewHashPair(h1, h2 Hasher) (*HashPair, error) {
	if h1 == h2 {
		return nil, errors.Wrap(ErrEqualHashFunctions, "pairing")
	}
	return &HashPair{h1: h1, h2: h2}, nil
}

// Digests applies both hashers to data.
func (p *HashPair) Digests(data []byte) (int64, int64) {
	return p.h1.Digest(data), p.h2.Digest(data)
}
