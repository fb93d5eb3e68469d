package filter

import "math"

// Params holds the structural parameters of a filter. They are computed
// once by OptimalParams and never change for the life of a filter.
type Params struct {
	M      uint64  // size of bit-array
	K      uint64  // number of hash-functions
	S      uint64  // chunk size, M/K bits per hash-function slot
	FpRate float64 // achieved false-positive rate for the final M and K
}

// OptimalParams sizes a filter for the given capacity and target
// false-positive rate.
//
// m = ceil(-n * log(p) / log(2)^2)
// k = round((m / n) * log(2)), floored at 1
//
// m is then rounded up to the next multiple of k so the bit range divides
// into k equal chunks, and the achieved rate is recomputed for the final
// m and k:
//
// fp = (1 - e^(-k*n/m))^k
//
// Everything is closed form; the caller (NewBloomFilter) validates
// capacity >= 1 and 0 < rate < 1 before calling.
func OptimalParams(capacity int, targetFpRate float64) Params {
	n := float64(capacity)
	raw := uint64(math.Ceil(-n * math.Log(targetFpRate) / (math.Ln2 * math.Ln2)))
	k := uint64(math.Round(float64(raw) / n * math.Ln2))
	if k < 1 {
		k = 1
	}

	m := raw
	if rem := m % k; rem != 0 {
		m += k - rem
	}

	fp := math.Pow(1-math.Exp(-float64(k)*n/float64(m)), float64(k))
	return Params{
		M:      m,
		K:      k,
		S:      m / k,
		FpRate: fp,
	}
}
