package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/trend"
	"github.com/arloliu/trend/errs"
)

func TestRobust_CollinearPoints(t *testing.T) {
	points := []trend.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}}

	fit, err := Robust(points)
	require.NoError(t, err)

	line := fit.Line()
	require.InDelta(t, 1, line.Slope, 0.001)
	require.InDelta(t, 0, line.Intercept, 0.001)

	// Every pairwise slope agrees, so the interval collapses onto the fit.
	lower, upper := fit.ConfidenceInterval()
	require.Equal(t, line, lower)
	require.Equal(t, line, upper)
}

func TestRobust_ToleratesOutlier(t *testing.T) {
	// Same outlier dataset that drags the least-squares slope to -1: the
	// median of pairwise slopes shrugs it off.
	points := []trend.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}, {X: 5, Y: -5}}

	fit, err := Robust(points)
	require.NoError(t, err)

	line := fit.Line()
	require.InDelta(t, 1, line.Slope, 0.001)
	require.InDelta(t, 0, line.Intercept, 0.001)
}

func TestRobust_ConfidenceInterval(t *testing.T) {
	// Pins the percentile rule end to end. Sorted pairwise slopes (each
	// unordered pair appears twice): [-9 -9 -4 -4 -7/3 -7/3 -1.5 -1.5 1 ...],
	// twenty in total. The 2.5th percentile index 0.5 averages positions -1
	// and 0 (both clamp to the first element, -9); the 97.5th index 19.5
	// averages positions 18 and 19 (both 1).
	points := []trend.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}, {X: 5, Y: -5}}

	fit, err := Robust(points)
	require.NoError(t, err)

	lower, upper := fit.ConfidenceInterval()
	require.Equal(t, trend.Line{Slope: -9, Intercept: 10}, lower)
	require.Equal(t, trend.Line{Slope: 1, Intercept: 0}, upper)
}

func TestRobust_NeedMoreValues(t *testing.T) {
	_, err := Robust(nil)
	require.ErrorIs(t, err, errs.ErrNeedMoreValues)

	_, err = Robust([]trend.Point{})
	require.ErrorIs(t, err, errs.ErrNeedMoreValues)

	_, err = Robust([]trend.Point{{X: 1, Y: 1}})
	require.ErrorIs(t, err, errs.ErrNeedMoreValues)
}

func TestRobust_VerticalData(t *testing.T) {
	// Every pair shares one x coordinate: no pair has a defined slope.
	points := []trend.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}

	_, err := Robust(points)
	require.ErrorIs(t, err, errs.ErrAllZeros)
}

func TestRobust_FiltersNonFinitePoints(t *testing.T) {
	// The NaN point contributes neither slopes nor intercepts; the clean
	// pair still fits.
	points := []trend.Point{{X: 1, Y: math.NaN()}, {X: 2, Y: 2}, {X: 3, Y: 3}}

	fit, err := Robust(points)
	require.NoError(t, err)

	line := fit.Line()
	require.Equal(t, 1.0, line.Slope)
	require.Equal(t, 0.0, line.Intercept)
	require.False(t, math.IsNaN(line.Slope))
	require.False(t, math.IsNaN(line.Intercept))
}

func TestRobust_MixedSlopes(t *testing.T) {
	// Two distinct slopes, verifying the duplicated ordered-pair multiset
	// feeds the median: points (0,0), (1,1), (2,4) give slopes 1, 2, 3
	// twice each; the median of [1 1 2 2 3 3] is position 2, value 2.
	points := []trend.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}}

	fit, err := Robust(points)
	require.NoError(t, err)
	require.Equal(t, 2.0, fit.Line().Slope)
}

func TestRobust_Idempotent(t *testing.T) {
	points := []trend.Point{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 6}}

	first, err := Robust(points)
	require.NoError(t, err)
	second, err := Robust(points)
	require.NoError(t, err)

	require.Equal(t, first.Line(), second.Line())
	firstLower, firstUpper := first.ConfidenceInterval()
	secondLower, secondUpper := second.ConfidenceInterval()
	require.Equal(t, firstLower, secondLower)
	require.Equal(t, firstUpper, secondUpper)
}
