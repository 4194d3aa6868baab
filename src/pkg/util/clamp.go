package util

import "cmp"

// Clamp limits value to [lower, upper]; used for user supplied sizes like top N.
func Clamp[T cmp.Ordered](value, lower, upper T) T {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
