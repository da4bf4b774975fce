// Package fibonacci computes Fibonacci numbers recursively and iteratively.
package fibonacci

import (
	"errors"
	"fmt"
)

const (
	// MaxRecursive bounds n for the exponential-time recursive form.
	MaxRecursive = 35
	// MaxIterative is the largest n whose Fibonacci number fits in int64.
	MaxIterative = 92
)

// Methods accepted by Compute.
const (
	MethodRecursive = "recursive"
	MethodIterative = "iterative"
)

var (
	ErrUnknownMethod = errors.New("unknown method")
	ErrOutOfRange    = errors.New("n out of range")
)

// Recursive returns the nth Fibonacci number by textbook recursion.
// Non-positive n yields 0.
func Recursive(n int) int64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return Recursive(n-1) + Recursive(n-2)
}

// Iterative returns the same value as Recursive in linear time.
func Iterative(n int) int64 {
	if n <= 0 {
		return 0
	}

	var a, b int64 = 0, 1
	for i := 1; i < n; i++ {
		a, b = b, a+b
	}
	return b
}

// Compute runs the named method after checking n against its limit.
func Compute(method string, n int) (int64, error) {
	switch method {
	case MethodRecursive:
		if n > MaxRecursive {
			return 0, fmt.Errorf("%w: %d exceeds %d for %s", ErrOutOfRange, n, MaxRecursive, method)
		}
		return Recursive(n), nil
	case MethodIterative:
		if n > MaxIterative {
			return 0, fmt.Errorf("%w: %d exceeds %d for %s", ErrOutOfRange, n, MaxIterative, method)
		}
		return Iterative(n), nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownMethod, method)
	}
}
