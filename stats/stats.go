// Package stats provides the descriptive statistics the fit strategies are
// built on: arithmetic mean, population standard deviation and Pearson
// correlation over float64 series.
//
// All functions are pure and reject short input with errs.ErrNeedMoreValues
// before touching any value. None of them ever returns NaN: a computation
// that would (zero variance on an axis) fails with errs.ErrAllZeros instead.
package stats

import (
	"fmt"
	"math"

	"github.com/arloliu/trend"
	"github.com/arloliu/trend/errs"
)

// Mean returns the arithmetic mean of values.
//
// Requires at least one value; an empty slice fails with
// errs.ErrNeedMoreValues.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: need at least 1 value, got 0", errs.ErrNeedMoreValues)
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values)), nil
}

// StdDev returns the population standard deviation of values: the square
// root of the mean squared deviation from the mean.
//
// The minimum-size check is Mean's, so a single value yields 0 and only an
// empty slice fails.
func StdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}

	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(values))), nil
}

// Correlation returns the Pearson correlation coefficient of the points.
//
// Each axis is standardized independently ((value-mean)/stddev); the result
// is the mean of the elementwise products of the standardized series.
// Requires at least two points.
//
// A zero-variance axis (all x equal or all y equal, including the all-zero
// case) would make the standardization divide by zero and the sum come out
// NaN; that case fails with errs.ErrAllZeros rather than leaking NaN.
func Correlation(points []trend.Point) (float64, error) {
	if len(points) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 points, got %d", errs.ErrNeedMoreValues, len(points))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	meanX, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	stddevX, err := StdDev(xs)
	if err != nil {
		return 0, err
	}
	meanY, err := Mean(ys)
	if err != nil {
		return 0, err
	}
	stddevY, err := StdDev(ys)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for i := range points {
		sum += ((xs[i] - meanX) / stddevX) * ((ys[i] - meanY) / stddevY)
	}

	result := sum / float64(len(points))
	if math.IsNaN(result) {
		return 0, fmt.Errorf("%w: at least one axis has zero variance", errs.ErrAllZeros)
	}

	return result, nil
}
