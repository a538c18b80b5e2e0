// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer kinds the helpers accept.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// split reports whether v is negative and, if not, its unsigned magnitude.
func split[T Integer](v T) (negative bool, magnitude uint64) {
	if v < 0 {
		return true, 0
	}
	return false, uint64(v)
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	negative, magnitude := split(v)
	if negative || magnitude > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(magnitude), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	negative, magnitude := split(v)
	if negative {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return magnitude, nil
}

// Int64 converts integers to int64, rejecting unsigned values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	negative, magnitude := split(v)
	if negative {
		return int64(v), nil
	}
	if magnitude > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(magnitude), nil
}
