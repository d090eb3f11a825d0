package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AbsF is Abs for floating point values. NaN passes through unchanged.
func AbsF[T ~float32 | ~float64](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
