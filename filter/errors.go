package filter

import "errors"

var (
	ErrEqualHashFunctions     = errors.New("hash pair must be two distinct hash functions")
	ErrInvalidCapacity        = errors.New("capacity must be at least 1")
	ErrInvalidTargetErrorRate = errors.New("target error rate must be inside (0,1)")
)
