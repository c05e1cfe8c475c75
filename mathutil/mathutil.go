// Package mathutil provides arithmetic helpers and basic statistics
// over numeric slices.
package mathutil

import (
	"cmp"
	"math"
)

// Number is the constraint shared by the arithmetic helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Signed is the constraint for helpers that need negation.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Add returns a + b.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a - b.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply returns a * b.
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns a / b. Division by zero is the caller's problem,
// with the usual Go semantics (panic for integers, Inf/NaN for floats).
func Divide[T Number](a, b T) T {
	return a / b
}

// Abs returns the absolute value of x.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Square returns x * x.
func Square[T Number](x T) T {
	return x * x
}

// Cube returns x * x * x.
func Cube[T Number](x T) T {
	return x * x * x
}

// Power returns base raised to exponent by repeated multiplication.
// Power(x, 0) and Power(x, 1) both return x.
func Power[T Number](base T, exponent uint) T {
	result := base
	for i := uint(1); i < exponent; i++ {
		result *= base
	}
	return result
}

// IsEven reports whether n is even.
func IsEven(n int64) bool {
	return n%2 == 0
}

// IsOdd reports whether n is odd.
func IsOdd(n int64) bool {
	return n%2 != 0
}

// Sum returns the sum of all elements, or the zero value for an
// empty slice.
func Sum[T Number](numbers []T) T {
	var total T
	for _, n := range numbers {
		total += n
	}
	return total
}

// Average returns the arithmetic mean, or 0 for an empty slice.
func Average(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	return Sum(numbers) / float64(len(numbers))
}

// MaxOf returns the largest element and true, or the zero value and
// false for an empty slice.
func MaxOf[T cmp.Ordered](numbers []T) (T, bool) {
	if len(numbers) == 0 {
		var zero T
		return zero, false
	}
	maxVal := numbers[0]
	for _, n := range numbers[1:] {
		if n > maxVal {
			maxVal = n
		}
	}
	return maxVal, true
}

// MinOf returns the smallest element and true, or the zero value and
// false for an empty slice.
func MinOf[T cmp.Ordered](numbers []T) (T, bool) {
	if len(numbers) == 0 {
		var zero T
		return zero, false
	}
	minVal := numbers[0]
	for _, n := range numbers[1:] {
		if n < minVal {
			minVal = n
		}
	}
	return minVal, true
}

// Variance returns the population variance of numbers.
// Slices with fewer than two elements have no spread and return 0.
func Variance(numbers []float64) float64 {
	if len(numbers) < 2 {
		return 0
	}
	mean := Average(numbers)
	var sq float64
	for _, n := range numbers {
		d := n - mean
		sq += d * d
	}
	return sq / float64(len(numbers))
}

// SampleVariance returns the sample variance (Bessel's correction,
// n-1 denominator), or 0 for fewer than two elements.
func SampleVariance(numbers []float64) float64 {
	if len(numbers) < 2 {
		return 0
	}
	mean := Average(numbers)
	var sq float64
	for _, n := range numbers {
		d := n - mean
		sq += d * d
	}
	return sq / float64(len(numbers)-1)
}

// StdDev returns the population standard deviation, or 0 for fewer
// than two elements.
func StdDev(numbers []float64) float64 {
	return math.Sqrt(Variance(numbers))
}

// SampleStdDev returns the sample standard deviation, or 0 for fewer
// than two elements.
func SampleStdDev(numbers []float64) float64 {
	return math.Sqrt(SampleVariance(numbers))
}
