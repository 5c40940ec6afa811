package util

import (
	"golang.org/x/exp/constraints"
)

// Mod is the euclidean remainder, always in [0, m) for m > 0.
func Mod[A constraints.Integer](n A, m A) A {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// Clamp bounds n to the closed range [lo, hi].
func Clamp[A constraints.Integer](n A, lo A, hi A) A {
	return Max(lo, Min(n, hi))
}
