package linear

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/trend"
	"github.com/arloliu/trend/errs"
)

// Robust fits a line through the points with the Theil–Sen estimator.
//
// The slope is the median of the slopes of every ordered pair of distinct
// points; pairs sharing the same x have no defined slope and are excluded
// before sorting, as are non-finite slopes from non-finite input. Given a
// slope, one intercept candidate per point (y - slope*x) is ranked and the
// intercept is read at the same quantile as the slope, so each bound's slope
// and intercept together describe one coherent line.
//
// Three such lines are produced: the median (the primary line) and the
// 2.5th/97.5th percentile lines bounding the 95% confidence interval,
// available through ConfidenceInterval.
//
// Requires at least two points (errs.ErrNeedMoreValues). If no usable slope
// exists, for example when every point shares one x coordinate, the fit
// fails with errs.ErrAllZeros.
//
// Enumerating pairwise slopes costs O(n²) time and space; that is the price
// of tolerating up to ~29.3% corrupted points.
func Robust(points []trend.Point) (RobustTrend, error) {
	if len(points) < 2 {
		return RobustTrend{}, fmt.Errorf("%w: need at least 2 points, got %d", errs.ErrNeedMoreValues, len(points))
	}

	slopes := make([]float64, 0, len(points)*(len(points)-1))
	for i, p := range points {
		for j, q := range points {
			if i == j || p.X == q.X {
				continue
			}
			s := (q.Y - p.Y) / (q.X - p.X)
			if math.IsNaN(s) || math.IsInf(s, 0) {
				continue
			}
			slopes = append(slopes, s)
		}
	}
	sort.Float64s(slopes)

	median, okMedian := lineAt(0.5, slopes, points)
	upper, okUpper := lineAt(0.975, slopes, points)
	lower, okLower := lineAt(0.025, slopes, points)
	if !okMedian || !okUpper || !okLower {
		return RobustTrend{}, fmt.Errorf("%w: no usable pairwise slopes", errs.ErrAllZeros)
	}

	return RobustTrend{line: median, lower: lower, upper: upper}, nil
}

// lineAt builds the line at the given quantile: the slope from the ranked
// slope multiset and the intercept from the per-point intercept candidates
// for that slope, both read at the same quantile.
func lineAt(quantile float64, slopes []float64, points []trend.Point) (trend.Line, bool) {
	slope, ok := percentile(quantile, slopes)
	if !ok {
		return trend.Line{}, false
	}

	intercepts := make([]float64, 0, len(points))
	for _, p := range points {
		b := p.Y - slope*p.X
		if math.IsNaN(b) || math.IsInf(b, 0) {
			continue
		}
		intercepts = append(intercepts, b)
	}
	sort.Float64s(intercepts)

	intercept, ok := percentile(quantile, intercepts)
	if !ok {
		return trend.Line{}, false
	}

	return trend.Line{Slope: slope, Intercept: intercept}, true
}
