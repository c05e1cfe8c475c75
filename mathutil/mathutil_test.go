package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 5, Add(2, 3))
	assert.Equal(t, 4.0, Add(1.5, 2.5))
	assert.Equal(t, 2, Subtract(5, 3))
	assert.Equal(t, -2, Subtract(3, 5))
	assert.Equal(t, 12, Multiply(3, 4))
	assert.Equal(t, 10.0, Multiply(2.5, 4.0))
	assert.Equal(t, 5, Divide(10, 2))
	assert.Equal(t, 3, Divide(7, 2)) // integer division truncates
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int64(5), Abs(int64(5)))
	assert.Equal(t, int64(5), Abs(int64(-5)))
	assert.Equal(t, int64(0), Abs(int64(0)))
	assert.Equal(t, 5.5, Abs(-5.5))
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, 5, Max(5, 3))
	assert.Equal(t, 5, Max(3, 5))
	assert.Equal(t, 3, Min(5, 3))
	assert.Equal(t, 3, Min(3, 5))
}

func TestPowers(t *testing.T) {
	assert.Equal(t, 25, Square(5))
	assert.Equal(t, 27, Cube(3))
	assert.Equal(t, 8, Power(2, 3))
	assert.Equal(t, 9, Power(3, 2))
	assert.Equal(t, 2, Power(2, 1))
	assert.Equal(t, 2, Power(2, 0)) // documented: exponents 0 and 1 both return base
}

func TestParity(t *testing.T) {
	assert.True(t, IsEven(4))
	assert.True(t, IsEven(0))
	assert.False(t, IsEven(3))
	assert.True(t, IsOdd(3))
	assert.True(t, IsOdd(1))
	assert.False(t, IsOdd(4))
	assert.True(t, IsOdd(-3))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 15, Sum([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, Sum([]int(nil)))
	assert.Equal(t, 1.5, Sum([]float64{0.5, 1.0}))
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 3.0, Average([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 0.0, Average(nil))
}

func TestMaxOfMinOf(t *testing.T) {
	v, ok := MaxOf([]int{1, 5, 3, 9, 2})
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	v, ok = MinOf([]int{1, 5, 3, 9, 2})
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = MaxOf([]int{})
	assert.False(t, ok)
	_, ok = MinOf([]int(nil))
	assert.False(t, ok)
}

func TestVariance(t *testing.T) {
	nums := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 2.0, Variance(nums), 0.0001)
	assert.InDelta(t, 2.5, SampleVariance(nums), 0.0001)

	assert.Equal(t, 0.0, Variance(nil))
	assert.Equal(t, 0.0, Variance([]float64{5}))
	assert.Equal(t, 0.0, SampleVariance(nil))
	assert.Equal(t, 0.0, SampleVariance([]float64{5}))
}

func TestStdDev(t *testing.T) {
	nums := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 1.4142, StdDev(nums), 0.0001)
	assert.InDelta(t, 1.5811, SampleStdDev(nums), 0.0001)

	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{5}))
	assert.Equal(t, 0.0, SampleStdDev(nil))
	assert.Equal(t, 0.0, SampleStdDev([]float64{5}))
}

func TestStdDevMatchesVariance(t *testing.T) {
	nums := []float64{2.5, 7.1, 0.3, 4.4, 9.9, 1.2}
	assert.InDelta(t, math.Sqrt(Variance(nums)), StdDev(nums), 1e-12)
}
